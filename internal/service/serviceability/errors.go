package serviceability

import (
	"errors"

	"logistics/internal/service/pricing"
)

var (
	ErrInvalidPincode   = errors.New("invalid pincode")
	ErrInvalidPartnerID = errors.New("invalid courier partner id")

	ErrServiceabilityNotFound = errors.New("serviceability not found")
	ErrConflict               = errors.New("serviceability already exists")

	// один и тот же партнерский справочник, ошибка общая с расчетом цены
	ErrPartnerNotFound = pricing.ErrPartnerNotFound
)
