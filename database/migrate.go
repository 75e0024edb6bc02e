// database/migrate.go
package database

import (
	"logitrack-api/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.Port{},
		&models.SalesOffice{},
		&models.SalesPic{},
		&models.CnOffice{},
		&models.ContainerType{},
		&models.CargoType{},
		&models.Product{},
		&models.Enquiry{},
		&models.EnquiryContainerLine{},
		&models.Offer{},
	)
}
