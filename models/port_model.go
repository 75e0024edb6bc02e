package models

import "time"

type PortType string

const (
	PortTypeAir PortType = "AIR"
	PortTypeSea PortType = "SEA"
)

type Port struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	PortCode    string    `json:"portCode" gorm:"size:10;not null"`
	PortName    string    `json:"portName" gorm:"size:200;not null"`
	PortType    PortType  `json:"portType" gorm:"size:5;not null"`
	CountryCode string    `json:"countryCode" gorm:"size:2"`
	City        string    `json:"city" gorm:"size:100"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
