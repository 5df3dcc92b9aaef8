package booking

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPartnerID      = errors.New("invalid courier partner id")
	ErrInvalidWeight         = errors.New("invalid weight")

	ErrRouteNotServiceable = errors.New("route is not serviceable")
)
