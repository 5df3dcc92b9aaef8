package pricing

import "errors"

var (
	ErrInvalidPartnerID = errors.New("invalid courier partner id")
	ErrPartnerNotFound  = errors.New("courier partner not found")
)
