package validator

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
)

// knownSkinTypes are the catalog categories the product matcher can
// target. "all" is the wildcard used by the concern mapping.
var knownSkinTypes = map[string]bool{
	"normal":      true,
	"oily":        true,
	"dry":         true,
	"combination": true,
	"sensitive":   true,
	"all":         true,
}

// registerCustomRules registers the domain validation tags. A rule
// that fails to register is a startup error, not a runtime one.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-skin-type", validateSkinType)
}

func validateSkinType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is the 'required' tag's problem
	}
	return IsKnownSkinType(value)
}

// IsKnownSkinType exposes the skin-type check to services.
func IsKnownSkinType(value string) bool {
	return knownSkinTypes[strings.ToLower(value)]
}
