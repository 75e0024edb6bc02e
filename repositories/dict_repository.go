package repositories

import (
	"logitrack-api/models"

	"gorm.io/gorm"
)

// DictRepository serves the read-only dictionary lookups. Every accessor
// filters to active rows unless noted otherwise; the tables are small and
// administered out of band.
type DictRepository struct {
	DB *gorm.DB
}

func NewDictRepository(DB *gorm.DB) *DictRepository {
	return &DictRepository{DB: DB}
}

func (r *DictRepository) ActiveCountries() ([]models.Country, error) {
	var countries []models.Country
	err := r.DB.Where("is_active = ?", true).
		Order("country_name_en ASC").Find(&countries).Error
	return countries, err
}

func (r *DictRepository) AllPorts() ([]models.Port, error) {
	var ports []models.Port
	err := r.DB.Find(&ports).Error
	return ports, err
}

func (r *DictRepository) ActivePortsByCountry(countryCode string) ([]models.Port, error) {
	var ports []models.Port
	err := r.DB.Where("country_code = ? AND is_active = ?", countryCode, true).
		Order("port_name ASC").Find(&ports).Error
	return ports, err
}

// SearchPorts matches the keyword as a substring of port name or code.
func (r *DictRepository) SearchPorts(keyword string) ([]models.Port, error) {
	var ports []models.Port
	kw := "%" + keyword + "%"
	err := r.DB.Where("port_name LIKE ? OR port_code LIKE ?", kw, kw).
		Find(&ports).Error
	return ports, err
}

func (r *DictRepository) PortExists(portCode string, portType models.PortType) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Port{}).
		Where("port_code = ? AND port_type = ?", portCode, portType).
		Count(&count).Error
	return count > 0, err
}

func (r *DictRepository) ActiveSalesPics() ([]models.SalesPic, error) {
	var pics []models.SalesPic
	err := r.DB.Where("is_active = ?", true).Find(&pics).Error
	return pics, err
}

func (r *DictRepository) ActiveSalesPicsByCountry(countryCode string) ([]models.SalesPic, error) {
	var pics []models.SalesPic
	err := r.DB.Where("country_code = ? AND is_active = ?", countryCode, true).
		Order("name ASC").Find(&pics).Error
	return pics, err
}

func (r *DictRepository) ActiveSalesOffices() ([]models.SalesOffice, error) {
	var offices []models.SalesOffice
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&offices).Error
	return offices, err
}

func (r *DictRepository) ActiveCnOffices() ([]models.CnOffice, error) {
	var offices []models.CnOffice
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&offices).Error
	return offices, err
}

func (r *DictRepository) ActiveContainerTypes() ([]models.ContainerType, error) {
	var types []models.ContainerType
	err := r.DB.Where("is_active = ?", true).
		Order("container_code ASC").Find(&types).Error
	return types, err
}

func (r *DictRepository) ContainerTypeByID(id int) (*models.ContainerType, error) {
	var containerType models.ContainerType
	if err := r.DB.First(&containerType, id).Error; err != nil {
		return nil, err
	}
	return &containerType, nil
}

func (r *DictRepository) ActiveCargoTypes() ([]models.CargoType, error) {
	var types []models.CargoType
	err := r.DB.Where("is_active = ?", true).Find(&types).Error
	return types, err
}

func (r *DictRepository) ActiveCargoTypesByOfferType(offerType models.OfferType) ([]models.CargoType, error) {
	var types []models.CargoType
	err := r.DB.Where("offer_type = ? AND is_active = ?", offerType, true).
		Find(&types).Error
	return types, err
}

func (r *DictRepository) ActiveProducts() ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *DictRepository) ProductByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := r.DB.Where("code = ?", code).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
