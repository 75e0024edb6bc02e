package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses:
// not-found → 404, invalid enum values → 400, anything else → 500.
var (
	ErrEnquiryNotFound  = errors.New("enquiry record not found")
	ErrOfferNotFound    = errors.New("offer not found")
	ErrInvalidStatus    = errors.New("invalid enquiry status")
	ErrInvalidOfferType = errors.New("invalid offer type")
)
