package shipment

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidAWBNumber      = errors.New("invalid awb number")

	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrTrackingNumberTaken = errors.New("tracking number already taken")
)
