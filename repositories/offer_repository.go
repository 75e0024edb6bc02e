package repositories

import (
	"errors"

	"logitrack-api/models"

	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(DB *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: DB}
}

func (r *OfferRepository) WithTx(tx *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: tx}
}

func (r *OfferRepository) GetByID(id int64) (*models.Offer, error) {
	var offer models.Offer
	if err := r.DB.First(&offer, id).Error; err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) FindByEnquiryID(enquiryID int64) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.DB.Where("enquiry_id = ?", enquiryID).
		Order("offer_type ASC, sequence_no ASC").Find(&offers).Error
	return offers, err
}

func (r *OfferRepository) CountByEnquiryAndType(enquiryID int64, offerType models.OfferType) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Offer{}).
		Where("enquiry_id = ? AND offer_type = ?", enquiryID, offerType).
		Count(&count).Error
	return count, err
}

// DemoteLatest clears the latest flag on every offer of the given type.
func (r *OfferRepository) DemoteLatest(enquiryID int64, offerType models.OfferType) error {
	return r.DB.Model(&models.Offer{}).
		Where("enquiry_id = ? AND offer_type = ? AND is_latest = ?", enquiryID, offerType, true).
		Update("is_latest", false).Error
}

// HighestSequence returns the offer of the given type with the largest
// sequence number, or nil when none remain.
func (r *OfferRepository) HighestSequence(enquiryID int64, offerType models.OfferType) (*models.Offer, error) {
	var offer models.Offer
	err := r.DB.Where("enquiry_id = ? AND offer_type = ?", enquiryID, offerType).
		Order("sequence_no DESC").First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}
