package booking

import (
	"strings"

	"logistics/internal/entities"
)

func isValidAddress(a entities.Address) bool {
	for _, field := range []string{a.Name, a.Phone, a.Address, a.City, a.State, a.Pincode} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

func isValidWeight(weight float64) bool {
	return weight > 0
}
