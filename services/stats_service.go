package services

import (
	"time"

	"logitrack-api/models"

	"gorm.io/gorm"
)

// DashboardStats is the aggregate snapshot shown on the landing page.
type DashboardStats struct {
	TodayNew              int64            `json:"todayNew"`
	PendingQuote          int64            `json:"pendingQuote"`
	ThisMonthTotal        int64            `json:"thisMonthTotal"`
	QuoteRate             int              `json:"quoteRate"`
	ConfirmRate           int              `json:"confirmRate"`
	StatusDistribution    map[string]int64 `json:"statusDistribution"`
	CargoTypeDistribution map[string]int64 `json:"cargoTypeDistribution"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type bucketCount struct {
	Bucket string
	Total  int64
}

func (s *StatsService) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{
		StatusDistribution:    map[string]int64{},
		CargoTypeDistribution: map[string]int64{},
	}

	today := models.Today()
	refMonth := time.Now().Format(referenceMonthLayout)

	if err := s.db.Model(&models.Enquiry{}).
		Where("issue_date = ?", today).Count(&stats.TodayNew).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enquiry{}).
		Where("status = ?", models.StatusNew).Count(&stats.PendingQuote).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enquiry{}).
		Where("reference_month = ?", refMonth).Count(&stats.ThisMonthTotal).Error; err != nil {
		return nil, err
	}

	var total, quoted, confirmed int64
	if err := s.db.Model(&models.Enquiry{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enquiry{}).
		Where("status = ?", models.StatusQuoted).Count(&quoted).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enquiry{}).
		Where("booking_confirmed = ?", models.BookingYes).Count(&confirmed).Error; err != nil {
		return nil, err
	}
	if total > 0 {
		stats.QuoteRate = int(quoted * 100 / total)
		stats.ConfirmRate = int(confirmed * 100 / total)
	}

	var byStatus []bucketCount
	if err := s.db.Model(&models.Enquiry{}).
		Select("status as bucket, count(*) as total").
		Group("status").Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, b := range byStatus {
		stats.StatusDistribution[b.Bucket] = b.Total
	}

	var byCargoType []bucketCount
	if err := s.db.Model(&models.Enquiry{}).
		Where("cargo_type_code <> ''").
		Select("cargo_type_code as bucket, count(*) as total").
		Group("cargo_type_code").Scan(&byCargoType).Error; err != nil {
		return nil, err
	}
	for _, b := range byCargoType {
		stats.CargoTypeDistribution[b.Bucket] = b.Total
	}

	return stats, nil
}
