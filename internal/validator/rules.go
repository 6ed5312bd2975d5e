package validator

import (
	"log"
	"regexp"

	"ekrafmate_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration failure is a startup bug, not a runtime condition.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-role': a role a user may self-register with
	mustRegister("is-user-role", validateUserRole)

	// 'alphanum_underscore': username charset
	mustRegister("alphanum_underscore", validateAlphanumUnderscore)
}

func validateUserRole(fl validator.FieldLevel) bool {
	role := models.UserRole(fl.Field().String())
	for _, valid := range models.ValidUserRoles {
		if role == valid {
			return true
		}
	}
	return false
}

func validateAlphanumUnderscore(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}
