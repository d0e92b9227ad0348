// Package validator registers the custom binding validators used by request models.
package validator

import (
	"regexp"

	"braik-api/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// slugRegex matches valid slugs: lowercase alphanumeric with hyphens, no leading/trailing/consecutive hyphens
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSlug validates that a string is a valid slug
func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// validateTeamRole accepts the four team roles.
func validateTeamRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

// Register adds the custom validators to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("slug", validateSlug); err != nil {
		return err
	}
	return v.RegisterValidation("team_role", validateTeamRole)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = Register(v)
	}
}
