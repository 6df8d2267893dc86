// Package session keeps each visitor's cart between requests. A cart is stored
// as one named JSON blob per session, the same shape a browser would keep in
// local storage.
package session

import (
	"encoding/json"
	"fmt"

	"bistro-api/models"
)

// KeyPrefix names the blob; the session id is appended.
const KeyPrefix = "cart-storage:"

type blob struct {
	State struct {
		Items []models.CartLine `json:"items"`
	} `json:"state"`
	Version int `json:"version"`
}

func key(sessionID string) string {
	return KeyPrefix + sessionID
}

func encode(lines []models.CartLine) ([]byte, error) {
	var b blob
	b.State.Items = lines
	if b.State.Items == nil {
		b.State.Items = []models.CartLine{}
	}
	return json.Marshal(b)
}

func decode(data []byte) ([]models.CartLine, error) {
	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode cart blob: %w", err)
	}
	return b.State.Items, nil
}
