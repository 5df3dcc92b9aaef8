package delivery_deadline

import (
	"time"
)

type DeliveryTimeFactory struct{}

func New() *DeliveryTimeFactory {
	return &DeliveryTimeFactory{}
}

// CalculateDeadline ожидаемая дата доставки: базовое время плюс срок в
// календарных днях. Отрицательный срок считается нулевым.
func (d *DeliveryTimeFactory) CalculateDeadline(estimatedDays int, baseTime time.Time) time.Time {
	if estimatedDays < 0 {
		estimatedDays = 0
	}
	return baseTime.AddDate(0, 0, estimatedDays)
}
