package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-auth/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"user_id", "email", "password", "created_at"}

// findUserByEmailQuery selects the first user with the given email.
func findUserByEmailQuery(placeholder sq.PlaceholderFormat, email string) (string, []any, error) {
	return sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		OrderBy("user_id").
		Limit(1).
		PlaceholderFormat(placeholder).
		ToSql()
}

// createUserQuery inserts a user and returns the stored row.
func createUserQuery(placeholder sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Insert(models.User{}.TableName()).
		Columns("email", "password").
		Values(user.Email, user.Password).
		Suffix("RETURNING user_id, email, password, created_at").
		PlaceholderFormat(placeholder).
		ToSql()
}

// timestamp scans created_at from drivers that report it either as
// time.Time or as text.
type timestamp struct {
	dst *time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (t timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t.dst = v
		return nil
	case nil:
		*t.dst = time.Time{}
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported created_at type %T", src)
	}
}

func (t timestamp) parse(value string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			*t.dst = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported created_at format %q", value)
}
