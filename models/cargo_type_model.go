package models

type CargoType struct {
	Code      string    `json:"code" gorm:"primaryKey;size:20"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	OfferType OfferType `json:"offerType" gorm:"size:10;not null"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
}

func (CargoType) TableName() string {
	return "dict_cargo_type"
}
