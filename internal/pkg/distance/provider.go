package distance

import (
	"math"
	"strconv"
	"strings"
)

const (
	// FallbackKm расстояние, если пинкоды не разобрать
	FallbackKm = 100.0

	minKm        = 10.0
	kmPerStep    = 0.5
	regionDigits = 3
)

// PincodeProvider грубо оценивает расстояние по префиксу пинкода
// (первые три цифры задают регион сортировки). Никогда не возвращает ошибку.
type PincodeProvider struct{}

func New() *PincodeProvider {
	return &PincodeProvider{}
}

func (p *PincodeProvider) Distance(originPincode, destinationPincode string) float64 {
	origin, ok := regionOf(originPincode)
	if !ok {
		return FallbackKm
	}
	destination, ok := regionOf(destinationPincode)
	if !ok {
		return FallbackKm
	}

	return math.Max(minKm, math.Abs(float64(origin-destination))*kmPerStep)
}

func regionOf(pincode string) (int, bool) {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return 0, false
	}
	if len(pincode) > regionDigits {
		pincode = pincode[:regionDigits]
	}

	region, err := strconv.Atoi(pincode)
	if err != nil {
		return 0, false
	}
	return region, true
}
