// Package validators contains custom go-playground validator functions.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// NIFValidation validates a Portuguese tax identification number (NIF):
// nine digits, a valid leading digit and a mod-11 check digit.
func NIFValidation(fl validator.FieldLevel) bool {
	return IsValidNIF(fl.Field().String())
}

// IsValidNIF reports whether nif is a well formed Portuguese NIF.
func IsValidNIF(nif string) bool {
	if len(nif) != 9 {
		return false
	}
	for _, r := range nif {
		if r < '0' || r > '9' {
			return false
		}
	}

	switch nif[0] {
	case '1', '2', '3', '5', '6', '8', '9':
	default:
		return false
	}

	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(nif[i]-'0') * (9 - i)
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return check == int(nif[8]-'0')
}
