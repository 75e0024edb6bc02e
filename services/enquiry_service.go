package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"logitrack-api/models"
	"logitrack-api/pkg/logger"
	"logitrack-api/repositories"

	"gorm.io/gorm"
)

const (
	// Region prefix of every generated reference number.
	referenceRegionPrefix = "CN"
	// Reference month code is 2-digit year + 2-digit month.
	referenceMonthLayout = "0601"
	// Abbreviation used when the product code cannot be resolved.
	unknownProductAbbr = "X"
)

// SearchParams carries the paging/filter/sort arguments of the enquiry
// list endpoint. Page is 0-based.
type SearchParams struct {
	Page      int
	Size      int
	Keyword   string
	SortBy    string
	SortOrder string
}

type EnquiryService struct {
	db        *gorm.DB
	enquiries *repositories.EnquiryRepository
	dict      *repositories.DictRepository
}

func NewEnquiryService(db *gorm.DB) *EnquiryService {
	return &EnquiryService{
		db:        db,
		enquiries: repositories.NewEnquiryRepository(db),
		dict:      repositories.NewDictRepository(db),
	}
}

func (s *EnquiryService) GetAllEnquiries() ([]models.Enquiry, error) {
	return s.enquiries.GetAll()
}

func (s *EnquiryService) GetEnquiries(params SearchParams) ([]models.Enquiry, int64, error) {
	return s.enquiries.Search(params.Keyword, params.Page, params.Size, params.SortBy, params.SortOrder)
}

func (s *EnquiryService) GetEnquiryByID(id int64) (*models.Enquiry, error) {
	enquiry, err := s.enquiries.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return enquiry, nil
}

func (s *EnquiryService) GetEnquiryByReferenceNumber(referenceNumber string) (*models.Enquiry, error) {
	enquiry, err := s.enquiries.GetByReferenceNumber(referenceNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return enquiry, nil
}

// GetEnquiriesByStatus filters by the enumerated status. An unrecognised
// value is a validation error, not an empty result.
func (s *EnquiryService) GetEnquiriesByStatus(status string) ([]models.Enquiry, error) {
	parsed, err := models.ParseEnquiryStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}
	return s.enquiries.FindByStatus(parsed)
}

// CreateEnquiry assigns a fresh identity, runs the reference-number and
// TEU generator, and persists the enquiry together with its container
// lines and offers in one transaction.
func (s *EnquiryService) CreateEnquiry(enquiry *models.Enquiry) error {
	log := logger.Get()
	log.Info().Msg("Creating new enquiry record")

	// Always a new entity.
	enquiry.ID = 0

	return s.db.Transaction(func(tx *gorm.DB) error {
		enquiries := s.enquiries.WithTx(tx)
		dict := repositories.NewDictRepository(tx)

		if enquiry.IssueDate.IsZero() {
			enquiry.IssueDate = models.Today()
		}
		if enquiry.EnquiryReceivedDate.IsZero() {
			enquiry.EnquiryReceivedDate = enquiry.IssueDate
		}

		refMonth := enquiry.IssueDate.Format(referenceMonthLayout)
		enquiry.ReferenceMonth = refMonth

		// Monthly sequence = count of enquiries already in this reference
		// month + 1. Not serialized across concurrent creators; the unique
		// index on reference_number turns a collision into an error.
		count, err := enquiries.CountByReferenceMonth(refMonth)
		if err != nil {
			return err
		}
		enquiry.MonthlySequence = int(count) + 1

		enquiry.ProductAbbr = s.resolveProductAbbr(dict, enquiry.ProductCode)
		enquiry.ReferenceNumber = formatReferenceNumber(
			refMonth, enquiry.MonthlySequence, enquiry.ProductAbbr, enquiry.SerialNumber)

		if enquiry.Status == "" {
			enquiry.Status = models.StatusNew
		}
		if enquiry.BookingConfirmed == "" {
			enquiry.BookingConfirmed = models.BookingPending
		}

		enquiry.QuantityTeu = totalTeu(dict, enquiry.ContainerLines)

		if err := tx.Create(enquiry).Error; err != nil {
			log.Error().Err(err).Msg("Failed to create enquiry")
			return err
		}

		log.Info().Str("referenceNumber", enquiry.ReferenceNumber).Msg("Enquiry created")
		return nil
	})
}

// UpdateEnquiry replaces the enquiry's scalar fields and its full
// container-line collection with the draft's. Generated fields stay as
// stored; the TEU aggregate is recomputed from scratch.
func (s *EnquiryService) UpdateEnquiry(id int64, draft *models.Enquiry) (*models.Enquiry, error) {
	log := logger.Get()
	log.Info().Int64("id", id).Msg("Updating enquiry record")

	existing, err := s.GetEnquiryByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		enquiries := s.enquiries.WithTx(tx)
		dict := repositories.NewDictRepository(tx)

		draft.ID = id
		draft.ReferenceNumber = existing.ReferenceNumber
		draft.ReferenceMonth = existing.ReferenceMonth
		draft.MonthlySequence = existing.MonthlySequence
		draft.ProductAbbr = existing.ProductAbbr
		draft.CreatedAt = existing.CreatedAt
		draft.CreatedBy = existing.CreatedBy

		if draft.IssueDate.IsZero() {
			draft.IssueDate = existing.IssueDate
		}
		if draft.EnquiryReceivedDate.IsZero() {
			draft.EnquiryReceivedDate = existing.EnquiryReceivedDate
		}
		if draft.Status == "" {
			draft.Status = existing.Status
		}
		if draft.BookingConfirmed == "" {
			draft.BookingConfirmed = existing.BookingConfirmed
		}

		// Recomputed in full; the stored aggregate is never reused.
		draft.QuantityTeu = totalTeu(dict, draft.ContainerLines)

		lines := draft.ContainerLines
		draft.ContainerLines = nil
		draft.Offers = nil

		if err := tx.Omit("ContainerLines", "Offers").Save(draft).Error; err != nil {
			return err
		}

		if err := enquiries.DeleteContainerLines(id); err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].EnquiryID = id
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("Failed to update enquiry")
		return nil, err
	}

	return s.GetEnquiryByID(id)
}

// DeleteEnquiry removes the enquiry and cascades to its container lines
// and offers.
func (s *EnquiryService) DeleteEnquiry(id int64) error {
	log := logger.Get()
	log.Info().Int64("id", id).Msg("Deleting enquiry record")

	if _, err := s.GetEnquiryByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.enquiries.WithTx(tx).DeleteWithChildren(id)
	})
}

// CopyEnquiry clones an existing enquiry as a fresh draft: new reference
// number, today's issue date, status New, no offers.
func (s *EnquiryService) CopyEnquiry(id int64) (*models.Enquiry, error) {
	original, err := s.GetEnquiryByID(id)
	if err != nil {
		return nil, err
	}

	clone := *original
	clone.ID = 0
	clone.ReferenceNumber = ""
	clone.IssueDate = models.Today()
	clone.EnquiryReceivedDate = models.Today()
	clone.Status = models.StatusNew
	clone.BookingConfirmed = models.BookingPending
	clone.Offers = nil
	clone.CreatedAt = time.Time{}
	clone.UpdatedAt = time.Time{}
	clone.CreatedBy = ""
	clone.UpdatedBy = ""

	lines := make([]models.EnquiryContainerLine, len(original.ContainerLines))
	for i, line := range original.ContainerLines {
		lines[i] = models.EnquiryContainerLine{
			ContainerTypeID: line.ContainerTypeID,
			ContainerQty:    line.ContainerQty,
			RawText:         line.RawText,
		}
	}
	clone.ContainerLines = lines

	if err := s.CreateEnquiry(&clone); err != nil {
		return nil, err
	}
	return s.GetEnquiryByID(clone.ID)
}

func (s *EnquiryService) resolveProductAbbr(dict *repositories.DictRepository, productCode string) string {
	if productCode == "" {
		return unknownProductAbbr
	}
	product, err := dict.ProductByCode(productCode)
	if err != nil {
		return unknownProductAbbr
	}
	return product.Abbr
}

// totalTeu sums qty × teuValue over the container lines. Lines whose
// container type cannot be resolved contribute zero; bad reference data
// degrades the aggregate, it never fails the request.
func totalTeu(dict *repositories.DictRepository, lines []models.EnquiryContainerLine) float64 {
	var total float64
	for _, line := range lines {
		if line.ContainerTypeID == 0 {
			continue
		}
		containerType, err := dict.ContainerTypeByID(line.ContainerTypeID)
		if err != nil {
			continue
		}
		total += float64(line.ContainerQty) * containerType.TeuValue
	}
	return total
}

// formatReferenceNumber builds "CN" + YYMM + 3-digit sequence + "-" +
// product abbreviation, with the serial number appended only when set.
func formatReferenceNumber(refMonth string, sequence int, abbr string, serialNumber int) string {
	ref := fmt.Sprintf("%s%s%03d-%s", referenceRegionPrefix, refMonth, sequence, abbr)
	if serialNumber > 0 {
		ref += strconv.Itoa(serialNumber)
	}
	return ref
}
