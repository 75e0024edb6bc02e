package repositories

import (
	"testing"

	"logitrack-api/models"
	"logitrack-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEnquiry(t *testing.T, db *gorm.DB, refNumber, refMonth, issueDate string, status models.EnquiryStatus) *models.Enquiry {
	t.Helper()
	date, err := models.ParseDate(issueDate)
	require.NoError(t, err)

	enquiry := &models.Enquiry{
		ReferenceNumber:     refNumber,
		ReferenceMonth:      refMonth,
		MonthlySequence:     1,
		IssueDate:           date,
		EnquiryReceivedDate: date,
		Status:              status,
		BookingConfirmed:    models.BookingPending,
	}
	require.NoError(t, db.Create(enquiry).Error)
	return enquiry
}

func TestCountByReferenceMonth(t *testing.T) {
	db := utils.SetupTestDB(t)
	repo := NewEnquiryRepository(db)

	seedEnquiry(t, db, "CN2403001-X", "2403", "2024-03-10", models.StatusNew)
	seedEnquiry(t, db, "CN2403002-X", "2403", "2024-03-20", models.StatusNew)
	seedEnquiry(t, db, "CN2404001-X", "2404", "2024-04-01", models.StatusNew)

	count, err := repo.CountByReferenceMonth("2403")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByReferenceMonth("2405")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetByReferenceNumber(t *testing.T) {
	db := utils.SetupTestDB(t)
	repo := NewEnquiryRepository(db)

	seeded := seedEnquiry(t, db, "CN2403001-S", "2403", "2024-03-10", models.StatusNew)

	found, err := repo.GetByReferenceNumber("CN2403001-S")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	_, err = repo.GetByReferenceNumber("CN9999001-X")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchSortWhitelist(t *testing.T) {
	db := utils.SetupTestDB(t)
	repo := NewEnquiryRepository(db)

	seedEnquiry(t, db, "CN2403001-X", "2403", "2024-03-10", models.StatusNew)
	seedEnquiry(t, db, "CN2403002-X", "2403", "2024-03-05", models.StatusNew)

	byIssueDate, _, err := repo.Search("", 0, 10, "issueDate", "asc")
	require.NoError(t, err)
	require.Len(t, byIssueDate, 2)
	assert.Equal(t, "CN2403002-X", byIssueDate[0].ReferenceNumber)

	// unknown sort column falls back to id DESC
	fallback, _, err := repo.Search("", 0, 10, "evil; DROP TABLE enquiries", "")
	require.NoError(t, err)
	require.Len(t, fallback, 2)
	assert.True(t, fallback[0].ID > fallback[1].ID)
}

func TestSearchKeywordMatchesCommodity(t *testing.T) {
	db := utils.SetupTestDB(t)
	repo := NewEnquiryRepository(db)

	match := seedEnquiry(t, db, "CN2403001-X", "2403", "2024-03-10", models.StatusNew)
	match.Commodity = "solar panels"
	require.NoError(t, db.Save(match).Error)
	seedEnquiry(t, db, "CN2403002-X", "2403", "2024-03-11", models.StatusNew)

	found, total, err := repo.Search("solar", 0, 10, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, found, 1)
	assert.Equal(t, match.ID, found[0].ID)
}

func TestDeleteWithChildren(t *testing.T) {
	db := utils.SetupTestDB(t)
	repo := NewEnquiryRepository(db)

	enquiry := seedEnquiry(t, db, "CN2403001-X", "2403", "2024-03-10", models.StatusNew)
	require.NoError(t, db.Create(&models.EnquiryContainerLine{
		EnquiryID: enquiry.ID, ContainerTypeID: 1, ContainerQty: 2,
	}).Error)
	require.NoError(t, db.Create(&models.Offer{
		EnquiryID: enquiry.ID, OfferType: models.OfferTypeOcean, SequenceNo: 1, IsLatest: true,
	}).Error)

	require.NoError(t, repo.DeleteWithChildren(enquiry.ID))

	var lines, offers int64
	require.NoError(t, db.Model(&models.EnquiryContainerLine{}).Where("enquiry_id = ?", enquiry.ID).Count(&lines).Error)
	require.NoError(t, db.Model(&models.Offer{}).Where("enquiry_id = ?", enquiry.ID).Count(&offers).Error)
	assert.Zero(t, lines)
	assert.Zero(t, offers)
}
