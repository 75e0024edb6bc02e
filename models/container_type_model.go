package models

import "time"

// ContainerType maps a container code to its TEU factor, e.g. a 20GP box
// counts as 1.0 TEU and a 40HQ as 2.0.
type ContainerType struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	ContainerCode string    `json:"containerCode" gorm:"size:20;uniqueIndex;not null"`
	ContainerName string    `json:"containerName" gorm:"size:50;not null"`
	TeuValue      float64   `json:"teuValue" gorm:"not null"`
	LengthFeet    int       `json:"lengthFeet"`
	IsSpecial     bool      `json:"isSpecial" gorm:"not null;default:false"`
	Description   string    `json:"description" gorm:"type:text"`
	IsActive      bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (ContainerType) TableName() string {
	return "container_types"
}
