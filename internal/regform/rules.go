package regform

import (
	"regexp"
	"unicode/utf8"
)

// Field identifies one input of the registration form.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields lists every form field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}

// Form is a snapshot of the current input values. Values are always
// present; an untouched input is the empty string.
type Form struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Institutional addresses only: any non-empty local part at ucr.ac.cr.
var (
	namePattern  = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ ]+$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@ucr\.ac\.cr$`)
)

const (
	msgNameRequired     = "El nombre es obligatorio."
	msgNamePattern      = "El nombre solo debe contener letras o espacios."
	msgNameTooShort     = "El nombre debe tener al menos 3 caracteres"
	msgNameTooLong      = "El nombre no puede tener más de 25 caracteres"
	msgEmailRequired    = "El correo es obligatorio."
	msgEmailFormat      = "Formato de correo electrónico inválido"
	msgEmailTooLong     = "El correo no puede tener más de 100 caracteres"
	msgPasswordRequired = "La contraseña es obligatoria."
	msgPasswordTooShort = "La contraseña debe tener al menos 8 caracteres"
	msgPasswordTooLong  = "La contraseña no puede tener más de 50 caracteres"
	msgConfirmRequired  = "Debes confirmar tu contraseña."
	msgPasswordMismatch = "Las contraseñas no coinciden"
)

// Validate checks a single field against the given form snapshot and
// returns the first failing rule's message, or "" when the value is valid.
// It is pure: no side effects, same inputs always yield the same message.
func Validate(field Field, value string, form Form) string {
	switch field {
	case FieldName:
		if value == "" {
			return msgNameRequired
		}
		if !namePattern.MatchString(value) {
			return msgNamePattern
		}
		if utf8.RuneCountInString(value) < 3 {
			return msgNameTooShort
		}
		if utf8.RuneCountInString(value) > 25 {
			return msgNameTooLong
		}
	case FieldEmail:
		if value == "" {
			return msgEmailRequired
		}
		if !emailPattern.MatchString(value) {
			return msgEmailFormat
		}
		if utf8.RuneCountInString(value) > 100 {
			return msgEmailTooLong
		}
	case FieldPassword:
		if value == "" {
			return msgPasswordRequired
		}
		if utf8.RuneCountInString(value) < 8 {
			return msgPasswordTooShort
		}
		if utf8.RuneCountInString(value) > 50 {
			return msgPasswordTooLong
		}
	case FieldConfirmPassword:
		if value == "" {
			return msgConfirmRequired
		}
		if value != form.Password {
			return msgPasswordMismatch
		}
	}
	return ""
}

// ValidateForm validates every field of the snapshot and returns the
// failing messages keyed by field. An empty map means the form is valid.
func ValidateForm(form Form) map[Field]string {
	values := map[Field]string{
		FieldName:            form.Name,
		FieldEmail:           form.Email,
		FieldPassword:        form.Password,
		FieldConfirmPassword: form.ConfirmPassword,
	}

	errs := make(map[Field]string)
	for _, f := range Fields {
		if msg := Validate(f, values[f], form); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}
