package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerly/internal/errors"
)

// firstOwned fetches a record by ID scoped to its owner. A row that exists
// but belongs to a different user produces the same notFound error as a
// missing row, so the API never confirms the existence of foreign records.
// All entity lookups preceding a mutation go through this helper.
func firstOwned[T any](db *gorm.DB, id, userID string, notFound *apperrors.AppError) (*T, error) {
	var entity T
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entity, nil
}
