package serviceability

import "strings"

func isValidPincode(pincode string) bool {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" || len(pincode) > 10 {
		return false
	}

	for _, char := range pincode {
		if (char < '0' || char > '9') && (char < 'A' || char > 'Z') && (char < 'a' || char > 'z') {
			return false
		}
	}
	return true
}
