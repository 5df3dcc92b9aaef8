package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownValue = errors.New("unknown enum value")

type DeliveryType string

const (
	DeliveryStandard  DeliveryType = "STANDARD"
	DeliveryExpress   DeliveryType = "EXPRESS"
	DeliverySameDay   DeliveryType = "SAME_DAY"
	DeliveryOvernight DeliveryType = "OVERNIGHT"
)

func (t DeliveryType) String() string {
	return string(t)
}

func ParseDeliveryType(s string) (DeliveryType, error) {
	switch t := DeliveryType(normalize(s)); t {
	case DeliveryStandard, DeliveryExpress, DeliverySameDay, DeliveryOvernight:
		return t, nil
	default:
		return "", fmt.Errorf("delivery type %q: %w", s, ErrUnknownValue)
	}
}

// DeliveryTypeOrStandard единственное место где неизвестное значение
// не отклоняется: для оценки сроков оно считается STANDARD.
func DeliveryTypeOrStandard(s string) DeliveryType {
	t, err := ParseDeliveryType(s)
	if err != nil {
		return DeliveryStandard
	}
	return t
}

type PackageType string

const (
	PackageDocument    PackageType = "DOCUMENT"
	PackageParcel      PackageType = "PARCEL"
	PackageFragile     PackageType = "FRAGILE"
	PackageElectronics PackageType = "ELECTRONICS"
	PackageFood        PackageType = "FOOD"
	PackageLiquid      PackageType = "LIQUID"
	PackageHazardous   PackageType = "HAZARDOUS"
	PackageOthers      PackageType = "OTHERS"
)

func (t PackageType) String() string {
	return string(t)
}

func ParsePackageType(s string) (PackageType, error) {
	switch t := PackageType(normalize(s)); t {
	case PackageDocument, PackageParcel, PackageFragile, PackageElectronics,
		PackageFood, PackageLiquid, PackageHazardous, PackageOthers:
		return t, nil
	default:
		return "", fmt.Errorf("package type %q: %w", s, ErrUnknownValue)
	}
}

type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "PENDING"
	StatusPickedUp       ShipmentStatus = "PICKED_UP"
	StatusInTransit      ShipmentStatus = "IN_TRANSIT"
	StatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      ShipmentStatus = "DELIVERED"
	StatusCancelled      ShipmentStatus = "CANCELLED"
	StatusReturned       ShipmentStatus = "RETURNED"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

func ParseShipmentStatus(s string) (ShipmentStatus, error) {
	switch st := ShipmentStatus(normalize(s)); st {
	case StatusPending, StatusPickedUp, StatusInTransit, StatusOutForDelivery,
		StatusDelivered, StatusCancelled, StatusReturned:
		return st, nil
	default:
		return "", fmt.Errorf("shipment status %q: %w", s, ErrUnknownValue)
	}
}

type ShipmentType string

const (
	ShipmentDomestic      ShipmentType = "DOMESTIC"
	ShipmentInternational ShipmentType = "INTERNATIONAL"
	ShipmentExpress       ShipmentType = "EXPRESS"
)

const DefaultShipmentType = ShipmentDomestic

func (t ShipmentType) String() string {
	return string(t)
}

func ParseShipmentType(s string) (ShipmentType, error) {
	switch t := ShipmentType(normalize(s)); t {
	case ShipmentDomestic, ShipmentInternational, ShipmentExpress:
		return t, nil
	default:
		return "", fmt.Errorf("shipment type %q: %w", s, ErrUnknownValue)
	}
}

type Priority string

const (
	PriorityStandard  Priority = "STANDARD"
	PriorityExpress   Priority = "EXPRESS"
	PriorityOvernight Priority = "OVERNIGHT"
)

const DefaultPriority = PriorityStandard

func (p Priority) String() string {
	return string(p)
}

func ParsePriority(s string) (Priority, error) {
	switch p := Priority(normalize(s)); p {
	case PriorityStandard, PriorityExpress, PriorityOvernight:
		return p, nil
	default:
		return "", fmt.Errorf("priority %q: %w", s, ErrUnknownValue)
	}
}

type ServiceStatus string

const (
	Serviceable    ServiceStatus = "SERVICEABLE"
	NonServiceable ServiceStatus = "NON_SERVICEABLE"
	Partial        ServiceStatus = "PARTIAL"
)

func (s ServiceStatus) String() string {
	return string(s)
}

func ParseServiceStatus(s string) (ServiceStatus, error) {
	switch st := ServiceStatus(normalize(s)); st {
	case Serviceable, NonServiceable, Partial:
		return st, nil
	default:
		return "", fmt.Errorf("service status %q: %w", s, ErrUnknownValue)
	}
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
