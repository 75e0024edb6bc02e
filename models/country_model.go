package models

import "time"

type Country struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	CountryCode   string    `json:"countryCode" gorm:"size:2;uniqueIndex;not null"`
	CountryNameEn string    `json:"countryNameEn" gorm:"size:100;not null"`
	CountryNameCn string    `json:"countryNameCn" gorm:"size:100"`
	IsActive      bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
