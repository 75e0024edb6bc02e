// database/seeder.go
package database

import (
	"errors"
	"log"

	"logitrack-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedCountries(db)
	SeedSalesOffices(db)
	SeedCnOffices(db)
	SeedContainerTypes(db)
	SeedCargoTypes(db)
	SeedProducts(db)
	SeedAdminUser(db)
}

func SeedCountries(db *gorm.DB) {
	countries := []models.Country{
		{CountryCode: "FR", CountryNameEn: "FRANCE", CountryNameCn: "法国", IsActive: true},
		{CountryCode: "UK", CountryNameEn: "UNITED KINGDOM", CountryNameCn: "英国", IsActive: true},
		{CountryCode: "DE", CountryNameEn: "GERMANY", CountryNameCn: "德国", IsActive: true},
		{CountryCode: "BE", CountryNameEn: "BELGIUM", CountryNameCn: "比利时", IsActive: true},
		{CountryCode: "NL", CountryNameEn: "NETHERLANDS", CountryNameCn: "荷兰", IsActive: true},
		{CountryCode: "CN", CountryNameEn: "CHINA", CountryNameCn: "中国", IsActive: true},
		{CountryCode: "SG", CountryNameEn: "SINGAPORE", CountryNameCn: "新加坡", IsActive: true},
	}

	for _, c := range countries {
		var existing models.Country
		if err := db.Where("country_code = ?", c.CountryCode).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&c)
			}
		}
	}
}

func SeedSalesOffices(db *gorm.DB) {
	offices := []models.SalesOffice{
		{Code: "FR-ZF", Name: "ZIEGLER FRANCE", CountryCode: "FR", IsActive: true},
		{Code: "UK-ZU", Name: "ZIEGLER UK", CountryCode: "UK", IsActive: true},
		{Code: "DE-ZD", Name: "ZIEGLER GERMANY", CountryCode: "DE", IsActive: true},
		{Code: "BE-ZB", Name: "ZIEGLER BELGIUM", CountryCode: "BE", IsActive: true},
		{Code: "NL-ZN", Name: "ZIEGLER NETHERLANDS", CountryCode: "NL", IsActive: true},
		{Code: "AG-AFS", Name: "AGENTS FORWARDING", CountryCode: "AGENTS", IsActive: true},
	}

	for _, o := range offices {
		var existing models.SalesOffice
		if err := db.Where("code = ?", o.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&o)
			}
		}
	}
}

func SeedCnOffices(db *gorm.DB) {
	offices := []models.CnOffice{
		{Code: "SHANGHAI", Name: "Shanghai", IsActive: true},
		{Code: "SHENZHEN", Name: "Shenzhen", IsActive: true},
		{Code: "NINGBO", Name: "Ningbo", IsActive: true},
		{Code: "HONG KONG", Name: "Hong Kong", IsActive: true},
		{Code: "TIANJIN", Name: "Tianjin", IsActive: true},
		{Code: "QINGDAO", Name: "Qingdao", IsActive: true},
		{Code: "XIAMEN", Name: "Xiamen", IsActive: true},
		{Code: "CN-MULTI", Name: "CN-Multi", IsActive: true},
	}

	for _, o := range offices {
		var existing models.CnOffice
		if err := db.Where("code = ?", o.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&o)
			}
		}
	}
}

func SeedContainerTypes(db *gorm.DB) {
	types := []models.ContainerType{
		{ContainerCode: "20GP", ContainerName: "20' General Purpose", TeuValue: 1.00, LengthFeet: 20, IsActive: true},
		{ContainerCode: "40GP", ContainerName: "40' General Purpose", TeuValue: 2.00, LengthFeet: 40, IsActive: true},
		{ContainerCode: "40HQ", ContainerName: "40' High Cube", TeuValue: 2.00, LengthFeet: 40, IsActive: true},
		{ContainerCode: "45HQ", ContainerName: "45' High Cube", TeuValue: 2.25, LengthFeet: 45, IsActive: true},
		{ContainerCode: "20RF", ContainerName: "20' Reefer", TeuValue: 1.00, LengthFeet: 20, IsSpecial: true, IsActive: true},
		{ContainerCode: "40RF", ContainerName: "40' Reefer", TeuValue: 2.00, LengthFeet: 40, IsSpecial: true, IsActive: true},
		{ContainerCode: "20OT", ContainerName: "20' Open Top", TeuValue: 1.00, LengthFeet: 20, IsSpecial: true, IsActive: true},
		{ContainerCode: "40OT", ContainerName: "40' Open Top", TeuValue: 2.00, LengthFeet: 40, IsSpecial: true, IsActive: true},
		{ContainerCode: "20FR", ContainerName: "20' Flat Rack", TeuValue: 1.00, LengthFeet: 20, IsSpecial: true, IsActive: true},
		{ContainerCode: "40FR", ContainerName: "40' Flat Rack", TeuValue: 2.00, LengthFeet: 40, IsSpecial: true, IsActive: true},
	}

	for _, t := range types {
		var existing models.ContainerType
		if err := db.Where("container_code = ?", t.ContainerCode).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&t)
			}
		}
	}
}

func SeedCargoTypes(db *gorm.DB) {
	types := []models.CargoType{
		{Code: "AIR", Name: "Air Freight", OfferType: models.OfferTypeAir, IsActive: true},
		{Code: "FCL", Name: "Full Container Load", OfferType: models.OfferTypeOcean, IsActive: true},
		{Code: "LCL", Name: "Less than Container Load", OfferType: models.OfferTypeOcean, IsActive: true},
		{Code: "RAIL", Name: "Rail Freight", OfferType: models.OfferTypeOther, IsActive: true},
		{Code: "SEA", Name: "Sea Freight", OfferType: models.OfferTypeOcean, IsActive: true},
	}

	for _, t := range types {
		var existing models.CargoType
		if err := db.Where("code = ?", t.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&t)
			}
		}
	}
}

func SeedProducts(db *gorm.DB) {
	products := []models.Product{
		{Code: "AIR", Name: "Air Freight", Abbr: "A", IsActive: true},
		{Code: "SEA", Name: "Sea Freight", Abbr: "S", IsActive: true},
		{Code: "SEA-AIR", Name: "Sea-Air Combined", Abbr: "SA", IsActive: true},
		{Code: "RAIL", Name: "Rail Freight", Abbr: "R", IsActive: true},
		{Code: "RAIL-SEA", Name: "Rail-Sea Combined", Abbr: "RS", IsActive: true},
	}

	for _, p := range products {
		var existing models.Product
		if err := db.Where("code = ?", p.Code).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&p)
			}
		}
	}
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Unexpected DB error while seeding admin: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Username: "admin",
		Email:    "admin@logitrack.local",
		Password: string(hashed),
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Failed to create admin user: %v", err)
	}
}
