package repositoryImp

import (
	"agrismart/entities"
	"agrismart/pkg/crop/repository"

	"gorm.io/gorm"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(rec *entities.CropRecord) error { return r.db.Create(rec).Error }

func (r *cropRepo) FindByID(id string) (*entities.CropRecord, error) {
	var rec entities.CropRecord
	if err := r.db.Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *cropRepo) ListRecentFirst() ([]entities.CropRecord, error) {
	var recs []entities.CropRecord
	if err := r.db.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
