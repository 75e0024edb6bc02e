package services

import (
	"errors"

	"logitrack-api/models"
	"logitrack-api/pkg/logger"
	"logitrack-api/repositories"

	"gorm.io/gorm"
)

type OfferService struct {
	db        *gorm.DB
	offers    *repositories.OfferRepository
	enquiries *repositories.EnquiryRepository
}

func NewOfferService(db *gorm.DB) *OfferService {
	return &OfferService{
		db:        db,
		offers:    repositories.NewOfferRepository(db),
		enquiries: repositories.NewEnquiryRepository(db),
	}
}

func (s *OfferService) GetOffersByEnquiry(enquiryID int64) ([]models.Offer, error) {
	if err := s.requireEnquiry(s.db, enquiryID); err != nil {
		return nil, err
	}
	return s.offers.FindByEnquiryID(enquiryID)
}

// CreateOffer appends a new offer round for the enquiry. The new offer
// becomes the latest of its type, previous rounds of the same type are
// demoted, and an enquiry still in New moves to Quoted.
func (s *OfferService) CreateOffer(enquiryID int64, offer *models.Offer) error {
	log := logger.Get()

	parsed, err := models.ParseOfferType(string(offer.OfferType))
	if err != nil {
		return ErrInvalidOfferType
	}
	offer.OfferType = parsed

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.requireEnquiry(tx, enquiryID); err != nil {
			return err
		}
		offers := s.offers.WithTx(tx)

		count, err := offers.CountByEnquiryAndType(enquiryID, offer.OfferType)
		if err != nil {
			return err
		}
		if err := offers.DemoteLatest(enquiryID, offer.OfferType); err != nil {
			return err
		}

		offer.ID = 0
		offer.EnquiryID = enquiryID
		offer.SequenceNo = int(count) + 1
		offer.IsLatest = true
		if offer.SentDate == nil {
			today := models.Today()
			offer.SentDate = &today
		}

		if err := tx.Create(offer).Error; err != nil {
			return err
		}

		// First quote moves the enquiry out of New.
		if err := tx.Model(&models.Enquiry{}).
			Where("id = ? AND status = ?", enquiryID, models.StatusNew).
			Update("status", models.StatusQuoted).Error; err != nil {
			return err
		}

		log.Info().
			Int64("enquiryId", enquiryID).
			Str("offerType", string(offer.OfferType)).
			Int("sequenceNo", offer.SequenceNo).
			Msg("Offer created")
		return nil
	})
}

// UpdateOffer applies the draft's editable fields to an existing offer.
// Type, sequence and latest-flag bookkeeping are not editable here.
func (s *OfferService) UpdateOffer(offerID int64, draft *models.Offer) (*models.Offer, error) {
	existing, err := s.getOffer(offerID)
	if err != nil {
		return nil, err
	}

	if draft.SentDate != nil {
		existing.SentDate = draft.SentDate
	}
	existing.SentDateRawText = draft.SentDateRawText
	existing.Price = draft.Price
	existing.PriceText = draft.PriceText
	existing.IsRejectedPrice = draft.IsRejectedPrice

	if err := s.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteOffer removes an offer round. When the deleted offer was the
// latest of its type, the highest remaining sequence of that type is
// promoted back to latest.
func (s *OfferService) DeleteOffer(offerID int64) error {
	log := logger.Get()

	existing, err := s.getOffer(offerID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		offers := s.offers.WithTx(tx)

		if err := tx.Delete(&models.Offer{}, "id = ?", offerID).Error; err != nil {
			return err
		}

		if existing.IsLatest {
			highest, err := offers.HighestSequence(existing.EnquiryID, existing.OfferType)
			if err != nil {
				return err
			}
			if highest != nil {
				if err := tx.Model(&models.Offer{}).
					Where("id = ?", highest.ID).
					Update("is_latest", true).Error; err != nil {
					return err
				}
			}
		}

		log.Info().Int64("enquiryId", existing.EnquiryID).Int64("offerId", offerID).Msg("Offer deleted")
		return nil
	})
}

func (s *OfferService) getOffer(offerID int64) (*models.Offer, error) {
	offer, err := s.offers.GetByID(offerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return offer, nil
}

func (s *OfferService) requireEnquiry(db *gorm.DB, enquiryID int64) error {
	var count int64
	if err := db.Model(&models.Enquiry{}).Where("id = ?", enquiryID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}
