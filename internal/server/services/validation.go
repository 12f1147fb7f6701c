package services

import (
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/apperr"
)

const minPasswordLength = 6

type validator struct {
	fields []apperr.FieldError
}

func (v *validator) check(ok bool, param, msg string, value any) {
	if !ok {
		v.fields = append(v.fields, apperr.Field(param, msg, value))
	}
}

func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return apperr.Validation(v.fields...)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// isEmail accepts a bare address with a dotted domain; display-name forms
// and single-label hosts such as localhost are rejected.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	domain := s[strings.LastIndex(s, "@")+1:]
	return strings.Contains(strings.Trim(domain, "."), ".")
}
