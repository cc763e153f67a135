package service

import (
	"fmt"

	"gorm.io/gorm"
)

// withinDeleteWindow reports whether id is among the user's DeleteWindow most
// recent rows of model's table, ordered by (fecha, created_at, id) descending.
func withinDeleteWindow(tx *gorm.DB, model interface{}, userID, id uint) (bool, error) {
	var ids []uint
	if err := tx.Model(model).
		Where("user_id = ?", userID).
		Order("fecha DESC, created_at DESC, id DESC").
		Limit(DeleteWindow).
		Pluck("id", &ids).Error; err != nil {
		return false, fmt.Errorf("load delete window: %w", err)
	}
	for _, recent := range ids {
		if recent == id {
			return true, nil
		}
	}
	return false, nil
}
