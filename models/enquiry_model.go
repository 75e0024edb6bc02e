package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"logitrack-api/idgen"

	"gorm.io/gorm"
)

type EnquiryStatus string

const (
	StatusNew       EnquiryStatus = "New"
	StatusQuoted    EnquiryStatus = "Quoted"
	StatusCancelled EnquiryStatus = "Cancelled"
)

// ParseEnquiryStatus resolves a path/query value to a canonical status.
// Matching is case-insensitive.
func ParseEnquiryStatus(s string) (EnquiryStatus, error) {
	for _, status := range []EnquiryStatus{StatusNew, StatusQuoted, StatusCancelled} {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown enquiry status: %s", s)
}

type BookingConfirmed string

const (
	BookingYes      BookingConfirmed = "Yes"
	BookingRejected BookingConfirmed = "Rejected"
	BookingPending  BookingConfirmed = "Pending"
	BookingInvalid  BookingConfirmed = "Invalid"
)

type CoreFlag string

const (
	CoreFlagCore    CoreFlag = "CORE"
	CoreFlagNonCore CoreFlag = "NON_CORE"
)

// Enquiry is the main enquiry table, one row per customer freight-rate
// request. Container lines and offers are owned children and live or die
// with their parent.
type Enquiry struct {
	ID              int64  `json:"id" gorm:"primaryKey;autoIncrement:false"`
	ReferenceNumber string `json:"referenceNumber" gorm:"size:50;uniqueIndex;not null"`

	EnquiryReceivedDate Date   `json:"enquiryReceivedDate" gorm:"not null"`
	IssueDate           Date   `json:"issueDate" gorm:"not null"`
	ReferenceMonth      string `json:"referenceMonth" gorm:"size:4;index;not null"`
	MonthlySequence     int    `json:"monthlySequence" gorm:"not null"`
	SerialNumber        int    `json:"serialNumber" gorm:"not null;default:0"`

	ProductCode string `json:"productCode" gorm:"size:30"`
	ProductAbbr string `json:"productAbbr" gorm:"size:10"`

	Status         EnquiryStatus `json:"status" gorm:"size:20;not null;default:New"`
	CnPricingAdmin string        `json:"cnPricingAdmin" gorm:"size:100"`

	SalesCountryCode string `json:"salesCountryCode" gorm:"size:10"`
	SalesOfficeID    int    `json:"salesOfficeId"`
	SalesPicID       *int   `json:"salesPicId"`

	AssignedCnOfficeCode string `json:"assignedCnOfficeCode" gorm:"size:50"`
	CargoTypeCode        string `json:"cargoTypeCode" gorm:"size:20"`

	VolumeCbm          *float64 `json:"volumeCbm"`
	VolumeRawText      string   `json:"volumeRawText" gorm:"size:100"`
	Quantity           *float64 `json:"quantity"`
	QuantityRawText    string   `json:"quantityRawText" gorm:"size:100"`
	QuantityUomCode    string   `json:"quantityUomCode" gorm:"size:20"`
	QuantityUomRawText string   `json:"quantityUomRawText" gorm:"size:200"`
	QuantityTeu        float64  `json:"quantityTeu"`
	QuantityTeuRawText string   `json:"quantityTeuRawText" gorm:"size:100"`

	Commodity           string `json:"commodity" gorm:"type:text"`
	HazSpecialEquipment string `json:"hazSpecialEquipment" gorm:"type:text"`

	PolID          int    `json:"polId"`
	PodID          int    `json:"podId"`
	PodCountryCode string `json:"podCountryCode" gorm:"size:2"`

	CoreFlag     CoreFlag `json:"coreFlag" gorm:"size:10"`
	CategoryCode string   `json:"categoryCode" gorm:"size:50"`

	CargoReadyDate        *Date  `json:"cargoReadyDate"`
	CargoReadyDateRawText string `json:"cargoReadyDateRawText" gorm:"size:100"`
	AdditionalRequirement string `json:"additionalRequirement" gorm:"type:text"`

	BookingConfirmed BookingConfirmed `json:"bookingConfirmed" gorm:"size:10;not null;default:Pending"`
	Remark           string           `json:"remark" gorm:"type:text"`
	RejectedReason   string           `json:"rejectedReason" gorm:"type:text"`
	ActualReason     string           `json:"actualReason" gorm:"type:text"`

	EnquiryOfferType OfferType `json:"enquiryOfferType" gorm:"size:10"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy" gorm:"size:100"`
	UpdatedBy string    `json:"updatedBy" gorm:"size:100"`

	Offers         []Offer                `json:"offers" gorm:"foreignKey:EnquiryID;constraint:OnDelete:CASCADE"`
	ContainerLines []EnquiryContainerLine `json:"containerLines" gorm:"foreignKey:EnquiryID;constraint:OnDelete:CASCADE"`
}

func (e *Enquiry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == 0 {
		e.ID = idgen.GenerateID()
	}
	return nil
}

// EnquiryContainerLine is one container-type/quantity row of an enquiry.
// Each line contributes qty × teuValue to the parent's TEU aggregate.
type EnquiryContainerLine struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	EnquiryID       int64     `json:"enquiryId" gorm:"index;not null"`
	ContainerTypeID int       `json:"containerTypeId" gorm:"not null"`
	ContainerQty    int       `json:"containerQty" gorm:"not null"`
	RawText         string    `json:"rawText" gorm:"size:200"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (l *EnquiryContainerLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == 0 {
		l.ID = idgen.GenerateID()
	}
	return nil
}

// UnmarshalJSON accepts `quantity` as a documented alias of `containerQty`
// for backward compatibility with older client payloads.
func (l *EnquiryContainerLine) UnmarshalJSON(data []byte) error {
	type containerLine EnquiryContainerLine
	aux := struct {
		*containerLine
		Quantity *int `json:"quantity"`
	}{containerLine: (*containerLine)(l)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if l.ContainerQty == 0 && aux.Quantity != nil {
		l.ContainerQty = *aux.Quantity
	}
	return nil
}
