package entity

import (
	"strings"

	"garden_backend/internal/shared/apperror"
)

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Validationf("%s is required", field)
	}
	return nil
}
