package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation detecta SQLSTATE 23505 (unique_violation).
// Cubre *pq.Error y, por mensaje, los drivers que no lo exponen tipado.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "sqlstate 23505") || strings.Contains(low, "duplicate key")
}
