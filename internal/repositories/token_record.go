package repositories

import (
	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"

	"gorm.io/gorm"
)

// TokenRecordRepository stores the non-sensitive metadata kept per issued
// token.
type TokenRecordRepository interface {
	Create(record *models.TokenRecord) error
	GetByFingerprint(fingerprint string) ([]models.TokenRecord, error)
}

type tokenRecordRepository struct {
	db *gorm.DB
}

func NewTokenRecordRepository(db *gorm.DB) TokenRecordRepository {
	return &tokenRecordRepository{db: db}
}

func (r *tokenRecordRepository) Create(record *models.TokenRecord) error {
	return r.db.Create(record).Error
}

func (r *tokenRecordRepository) GetByFingerprint(fingerprint string) ([]models.TokenRecord, error) {
	var records []models.TokenRecord
	err := r.db.Where("fingerprint = ?", fingerprint).Order("created_at desc").Find(&records).Error
	return records, err
}
