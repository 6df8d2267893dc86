package repository

import (
	"context"
	"errors"
	"fmt"

	"bistro-api/models"
	"bistro-api/store"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// SaveOrder inserts a new order together with its first history entry.
func (r *OrderRepository) SaveOrder(ctx context.Context, order *models.Order, actor, note string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("insert order %s: %w", order.ID, err)
		}
		history := models.OrderStatusHistory{
			OrderID:  order.ID,
			ToStatus: order.Status,
			Actor:    actor,
			Note:     note,
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("insert order history %s: %w", order.ID, err)
		}
		return nil
	})
}

// RecordOrderStatus persists a status change and appends it to the audit trail.
func (r *OrderRepository) RecordOrderStatus(ctx context.Context, id string, from, to models.OrderStatus, actor, note string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).Where("id = ? AND status = ?", id, from).Update("status", to)
		if res.Error != nil {
			return fmt.Errorf("update order %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return fmt.Errorf("update order %s: %w", id, err)
			}
			if n == 0 {
				return fmt.Errorf("update order %s: %w", id, gorm.ErrRecordNotFound)
			}
			return fmt.Errorf("update order %s from %s: %w", id, from, store.ErrStatusConflict)
		}
		history := models.OrderStatusHistory{
			OrderID:    id,
			FromStatus: from,
			ToStatus:   to,
			Actor:      actor,
			Note:       note,
		}
		return tx.Create(&history).Error
	})
}

// ListOrders returns every order oldest first, which is container order.
func (r *OrderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Order("created_at asc").Order("rowid asc").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) OrderHistory(ctx context.Context, id string) ([]models.OrderStatusHistory, error) {
	var history []models.OrderStatusHistory
	err := r.db.WithContext(ctx).Where("order_id = ?", id).Order("id asc").Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("order history %s: %w", id, err)
	}
	return history, nil
}

// GetOrder reads one order as persisted, for resyncing a stale container.
func (r *OrderRepository) GetOrder(ctx context.Context, id string) (models.Order, error) {
	var out models.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, fmt.Errorf("order %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	return out, nil
}
