package repositories

import (
	"errors"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"

	"gorm.io/gorm"
)

var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantRepository stores the API consumers allowed to redeem tokens.
type MerchantRepository interface {
	Create(merchant *models.Merchant) error
	GetByKeyID(keyID string) (*models.Merchant, error)
}

type merchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) MerchantRepository {
	return &merchantRepository{db: db}
}

func (r *merchantRepository) Create(merchant *models.Merchant) error {
	return r.db.Create(merchant).Error
}

func (r *merchantRepository) GetByKeyID(keyID string) (*models.Merchant, error) {
	var merchant models.Merchant
	err := r.db.Where("key_id = ?", keyID).First(&merchant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, err
	}
	return &merchant, nil
}
