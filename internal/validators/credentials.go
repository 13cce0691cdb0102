package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-notes-auth/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldEmail requires a non-empty email.
	FieldEmail = "email"

	// FieldEmailAddress requires the email to parse as a bare RFC 5322
	// address ("a@b.com", not "A <a@b.com>").
	FieldEmailAddress = "email_address"

	// FieldPasswordPresent requires a non-empty password of any length.
	FieldPasswordPresent = "password_present"

	// FieldPassword requires a non-empty password no longer than
	// MaxPasswordLength bytes.
	FieldPassword = "password"
)

// MaxPasswordLength bounds the password of new accounts. bcrypt ignores
// everything past 72 bytes. Logins are not bounded: existing stores may hold
// longer passwords.
const MaxPasswordLength = 72

// CredentialsValidator validates login and registration requests.
type CredentialsValidator struct{}

// NewCredentialsValidator returns a [Validator] for
// [models.LoginRequest] and [models.RegisterRequest].
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Default fields:
//   - LoginRequest:    email
//   - RegisterRequest: email, email_address, password
//
// Login requests only need an email to look up. Address syntax and the
// password are left to the lookup and the stored hash.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	return validateCredentials(req.Email, req.Password, fields)
}

func (v *CredentialsValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldEmailAddress, FieldPassword}
	}

	return validateCredentials(req.Email, req.Password, fields)
}

func validateCredentials(email, password string, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if email == "" {
				return ErrEmptyEmail
			}
		case FieldEmailAddress:
			addr, err := mail.ParseAddress(email)
			if err != nil || addr.Address != email {
				return ErrInvalidEmail
			}
		case FieldPasswordPresent:
			if password == "" {
				return ErrEmptyPassword
			}
		case FieldPassword:
			if password == "" {
				return ErrEmptyPassword
			}
			if len(password) > MaxPasswordLength {
				return ErrLongPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
