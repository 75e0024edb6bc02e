package models

import (
	"fmt"
	"strings"
	"time"

	"logitrack-api/idgen"

	"gorm.io/gorm"
)

type OfferType string

const (
	OfferTypeOcean OfferType = "OCEAN"
	OfferTypeAir   OfferType = "AIR"
	OfferTypeOther OfferType = "OTHER"
)

// ParseOfferType resolves a path/query value to a canonical offer type.
// Matching is case-insensitive.
func ParseOfferType(s string) (OfferType, error) {
	for _, t := range []OfferType{OfferTypeOcean, OfferTypeAir, OfferTypeOther} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown offer type: %s", s)
}

// Offer is a priced response sent for an enquiry. Offers of the same type
// are numbered sequentially and only the most recent one carries IsLatest.
type Offer struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	EnquiryID int64     `json:"enquiryId" gorm:"index;not null"`
	OfferType OfferType `json:"offerType" gorm:"size:10;not null"`

	SequenceNo int  `json:"sequenceNo" gorm:"not null;default:1"`
	IsLatest   bool `json:"isLatest" gorm:"not null;default:false"`

	SentDate        *Date    `json:"sentDate"`
	SentDateRawText string   `json:"sentDateRawText" gorm:"size:100"`
	Price           *float64 `json:"price"`
	PriceText       string   `json:"priceText" gorm:"type:text"`
	IsRejectedPrice bool     `json:"isRejectedPrice" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == 0 {
		o.ID = idgen.GenerateID()
	}
	return nil
}
