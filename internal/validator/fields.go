package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SignInInput is checked before a sign-in request is sent.
type SignInInput struct {
	Email    string `json:"email" validate:"required,contains=@"`
	Password string `json:"password" validate:"required"`
}

// SignUpInput is checked before a sign-up request is sent.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// FieldErrors is a local validation failure, keyed by field name. It is
// never produced by the transport.
type FieldErrors struct {
	Fields map[string]string
	order  []string
}

func (e *FieldErrors) Error() string {
	msgs := make([]string, 0, len(e.order))
	for _, f := range e.order {
		msgs = append(msgs, e.Fields[f])
	}
	return strings.Join(msgs, "; ")
}

// Get returns the message for field, or "" when the field is valid.
func (e *FieldErrors) Get(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

func (e *FieldErrors) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = msg
}

var messages = map[string]string{
	"email.required":    "Email is required",
	"email.contains":    "Please enter a valid email address",
	"email.email":       "Please enter a valid email address",
	"password.required": "Password is required",
	"password.min":      "Password must be at least 8 characters",
	"name.required":     "Name is required",
	"color.hex_color":   "Color must be a hex value such as #FF5733",
	"currency.iso4217":  "Currency must be an ISO 4217 code",
}

func message(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

// Struct validates s and returns *FieldErrors on failure.
func Struct(s any) error {
	return toFieldErrors(validate.Struct(s), "")
}

// Currency checks an ISO 4217 code.
func Currency(code string) error {
	return toFieldErrors(validate.Var(code, "iso4217"), "currency")
}

// Color checks an optional hex color; nil is valid.
func Color(color *string) error {
	if color == nil {
		return nil
	}
	return toFieldErrors(validate.Var(*color, "hex_color"), "color")
}

func toFieldErrors(err error, field string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &FieldErrors{}
	for _, fe := range verrs {
		name := fe.Field()
		if field != "" {
			name = field
		}
		out.add(name, message(name, fe.Tag()))
	}
	return out
}
