package config

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	sizeRe        = regexp.MustCompile(`^\d+(KB|MB|GB|TB|PB)$`)
	unitLiteralRe = regexp.MustCompile(`^[A-Za-z]+$`)
)

// validateSize validates the size format (e.g., "10MB", "1GB")
func validateSize(fl validator.FieldLevel) bool {
	return sizeRe.MatchString(strings.ToUpper(fl.Field().String()))
}

// validateUnitLiteral checks a unit literal the scanner can actually match
func validateUnitLiteral(fl validator.FieldLevel) bool {
	return unitLiteralRe.MatchString(fl.Field().String())
}
