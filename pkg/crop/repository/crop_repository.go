package repository

import "agrismart/entities"

// CropRepository is append-only: records are created once and never updated
// or removed for the lifetime of the process.
type CropRepository interface {
	Create(rec *entities.CropRecord) error
	FindByID(id string) (*entities.CropRecord, error)
	ListRecentFirst() ([]entities.CropRecord, error)
}
