package cardresolver

import (
	"errors"
	"fmt"
)

// ErrNoCardAvailable means every tier of the cascade was exhausted.
var ErrNoCardAvailable = errors.New("no suitable card found")

// CountryNotAllowedError is raised before any network call when the country
// is outside the allow-list.
type CountryNotAllowedError struct {
	CountryCode string
}

func (e *CountryNotAllowedError) Error() string {
	return fmt.Sprintf("country %s is not in the allowed country list", e.CountryCode)
}
