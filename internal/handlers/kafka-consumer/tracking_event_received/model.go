package tracking_event_received

// trackingEvent сообщение перевозчика о смене статуса отправления.
type trackingEvent struct {
	EventID        string  `json:"event_id"`
	TrackingNumber string  `json:"tracking_number"`
	Status         string  `json:"status"`
	Location       *string `json:"location,omitempty"`
	Description    *string `json:"description,omitempty"`
	UpdatedBy      *string `json:"updated_by,omitempty"`
}
