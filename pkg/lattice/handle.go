package lattice

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// handlePattern admits lowercase-kebab ("order-items") and camelCase
// ("orderItems") identifiers. Uppercase-first, underscored, and empty strings
// are rejected.
var handlePattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*(-[a-z0-9]+)*$`)

// Handle is a short, pattern-constrained identifier for a resource. Handles
// are safe to interpolate into URL paths without additional escaping.
type Handle string

func (h Handle) String() string {
	return string(h)
}

// Validate implements validation.Validatable, so any schema that embeds a
// Handle field applies the same pattern check.
func (h Handle) Validate() error {
	return validation.Validate(string(h),
		validation.Required,
		validation.Match(handlePattern).Error("must be a lowercase-kebab or camelCase handle"),
	)
}
