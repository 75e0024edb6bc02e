package models

// Product is the product dictionary. Abbr feeds the reference-number
// generator.
type Product struct {
	Code     string `json:"code" gorm:"primaryKey;size:30"`
	Name     string `json:"name" gorm:"size:100;not null"`
	Abbr     string `json:"abbr" gorm:"size:10;not null"`
	IsActive bool   `json:"isActive" gorm:"not null;default:true"`
}

func (Product) TableName() string {
	return "dict_product"
}
