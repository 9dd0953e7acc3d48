package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// invalidParamsMessage names the offending fields without echoing their
// values back.
func invalidParamsMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		return fmt.Sprintf("Invalid parameters: %s", strings.Join(fields, ", "))
	}
	return "Invalid parameters."
}
