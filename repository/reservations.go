package repository

import (
	"context"
	"errors"
	"fmt"

	"bistro-api/models"
	"bistro-api/store"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) SaveReservation(ctx context.Context, res *models.Reservation, actor, note string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return fmt.Errorf("insert reservation %s: %w", res.ID, err)
		}
		history := models.ReservationStatusHistory{
			ReservationID: res.ID,
			ToStatus:      res.Status,
			Actor:         actor,
			Note:          note,
		}
		return tx.Create(&history).Error
	})
}

func (r *ReservationRepository) RecordReservationStatus(ctx context.Context, id string, from, to models.ReservationStatus, actor, note string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Reservation{}).Where("id = ? AND status = ?", id, from).Update("status", to)
		if res.Error != nil {
			return fmt.Errorf("update reservation %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&models.Reservation{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return fmt.Errorf("update reservation %s: %w", id, err)
			}
			if n == 0 {
				return fmt.Errorf("update reservation %s: %w", id, gorm.ErrRecordNotFound)
			}
			return fmt.Errorf("update reservation %s from %s: %w", id, from, store.ErrStatusConflict)
		}
		history := models.ReservationStatusHistory{
			ReservationID: id,
			FromStatus:    from,
			ToStatus:      to,
			Actor:         actor,
			Note:          note,
		}
		return tx.Create(&history).Error
	})
}

func (r *ReservationRepository) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var out []models.Reservation
	err := r.db.WithContext(ctx).Order("created_at asc").Order("rowid asc").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return out, nil
}

func (r *ReservationRepository) ReservationHistory(ctx context.Context, id string) ([]models.ReservationStatusHistory, error) {
	var history []models.ReservationStatusHistory
	err := r.db.WithContext(ctx).Where("reservation_id = ?", id).Order("id asc").Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("reservation history %s: %w", id, err)
	}
	return history, nil
}

// GetReservation reads one reservation as persisted, for resyncing a stale container.
func (r *ReservationRepository) GetReservation(ctx context.Context, id string) (models.Reservation, error) {
	var out models.Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Reservation{}, fmt.Errorf("reservation %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.Reservation{}, fmt.Errorf("get reservation %s: %w", id, err)
	}
	return out, nil
}
