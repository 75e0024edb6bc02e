package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type SalesOffice struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"size:50;uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	NameNorm    string    `json:"nameNorm" gorm:"size:120;uniqueIndex;not null"`
	CountryCode string    `json:"countryCode" gorm:"size:10"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	SortOrder   int       `json:"sortOrder" gorm:"not null;default:0"`
	Remark      string    `json:"remark" gorm:"size:255"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (o *SalesOffice) BeforeCreate(tx *gorm.DB) error {
	if o.NameNorm == "" && o.Name != "" {
		o.NameNorm = strings.ToUpper(strings.TrimSpace(o.Name))
	}
	return nil
}

type SalesPic struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:100;not null"`
	NameNorm      string    `json:"nameNorm" gorm:"size:120;not null"`
	CountryCode   string    `json:"countryCode" gorm:"size:10;not null"`
	SalesOfficeID int       `json:"salesOfficeId" gorm:"not null"`
	IsActive      bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *SalesPic) BeforeCreate(tx *gorm.DB) error {
	if p.NameNorm == "" && p.Name != "" {
		p.NameNorm = strings.ToUpper(strings.TrimSpace(p.Name))
	}
	return nil
}

type CnOffice struct {
	Code     string `json:"code" gorm:"primaryKey;size:50"`
	Name     string `json:"name" gorm:"size:100;not null"`
	IsActive bool   `json:"isActive" gorm:"not null;default:true"`
}
