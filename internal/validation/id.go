package validation

import (
	"strconv"
	"strings"

	"github.com/tbourn/go-survey-backend/internal/apperr"
)

const (
	msgIDRequired = "ID é obrigatório"
	msgIDInvalid  = "ID deve ser um número inteiro positivo"
)

// ParseID validates a path identifier. Only plain decimal digits are
// accepted: signs, zero, fractions and non-numeric text are rejected.
func ParseID(raw string) (uint, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, apperr.Validation(Violation{Field: "id", Message: msgIDRequired})
	}
	if !isDigits(s) {
		return 0, apperr.Validation(Violation{Field: "id", Message: msgIDInvalid})
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, apperr.Validation(Violation{Field: "id", Message: msgIDInvalid})
	}
	return uint(n), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
