package repositories

import (
	"logitrack-api/models"

	"gorm.io/gorm"
)

type EnquiryRepository struct {
	DB *gorm.DB
}

func NewEnquiryRepository(DB *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{DB: DB}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *EnquiryRepository) WithTx(tx *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{DB: tx}
}

// Sortable columns for the list endpoint. Anything else falls back to id.
var enquirySortColumns = map[string]string{
	"id":               "id",
	"referenceNumber":  "reference_number",
	"issueDate":        "issue_date",
	"status":           "status",
	"quantityTeu":      "quantity_teu",
	"salesCountryCode": "sales_country_code",
	"bookingConfirmed": "booking_confirmed",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

func (r *EnquiryRepository) GetByID(id int64) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.DB.Preload("ContainerLines").Preload("Offers").First(&enquiry, id).Error
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *EnquiryRepository) GetByReferenceNumber(referenceNumber string) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.DB.Preload("ContainerLines").Preload("Offers").
		Where("reference_number = ?", referenceNumber).First(&enquiry).Error
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

func (r *EnquiryRepository) GetAll() ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.DB.Preload("ContainerLines").Preload("Offers").
		Order("id DESC").Find(&enquiries).Error
	return enquiries, err
}

func (r *EnquiryRepository) FindByStatus(status models.EnquiryStatus) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.DB.Preload("ContainerLines").Preload("Offers").
		Where("status = ?", status).Order("id DESC").Find(&enquiries).Error
	return enquiries, err
}

func (r *EnquiryRepository) CountByReferenceMonth(referenceMonth string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Enquiry{}).
		Where("reference_month = ?", referenceMonth).Count(&count).Error
	return count, err
}

func (r *EnquiryRepository) CountByStatus(status models.EnquiryStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Enquiry{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

// Search returns one page of enquiries plus the unpaged total. The keyword
// is matched as a substring against reference number, sales country code
// and commodity.
func (r *EnquiryRepository) Search(keyword string, page, size int, sortBy, sortOrder string) ([]models.Enquiry, int64, error) {
	query := r.DB.Model(&models.Enquiry{})

	if keyword != "" {
		kw := "%" + keyword + "%"
		query = query.Where(
			"reference_number LIKE ? OR sales_country_code LIKE ? OR commodity LIKE ?",
			kw, kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := enquirySortColumns[sortBy]
	if !ok {
		column = "id"
	}
	direction := "DESC"
	if sortOrder == "asc" || sortOrder == "ASC" {
		direction = "ASC"
	}

	var enquiries []models.Enquiry
	err := query.
		Preload("ContainerLines").Preload("Offers").
		Order(column + " " + direction).
		Limit(size).Offset(page * size).
		Find(&enquiries).Error
	return enquiries, total, err
}

// DeleteWithChildren removes an enquiry together with its container lines
// and offers. Run it on a transaction-bound repository.
func (r *EnquiryRepository) DeleteWithChildren(id int64) error {
	if err := r.DB.Where("enquiry_id = ?", id).Delete(&models.EnquiryContainerLine{}).Error; err != nil {
		return err
	}
	if err := r.DB.Where("enquiry_id = ?", id).Delete(&models.Offer{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(&models.Enquiry{}, id).Error
}

func (r *EnquiryRepository) DeleteContainerLines(enquiryID int64) error {
	return r.DB.Where("enquiry_id = ?", enquiryID).Delete(&models.EnquiryContainerLine{}).Error
}
