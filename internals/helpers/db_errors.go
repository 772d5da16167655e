package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DBMessages are the client messages used when a store error is recognised.
type DBMessages struct {
	NotFound  string // row missing
	Duplicate string // unique violation
	InUse     string // foreign key violation
}

// Postgres SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// FromDBError translates known store failures into domain errors. Unknown
// errors are returned untouched and end up as 500.
func FromDBError(err error, msg DBMessages) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && msg.NotFound != "":
		return NotFound(msg.NotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey) && msg.Duplicate != "":
		return Conflict(msg.Duplicate)
	case errors.Is(err, gorm.ErrForeignKeyViolated) && msg.InUse != "":
		return Conflict(msg.InUse)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation && msg.Duplicate != "":
			return Conflict(msg.Duplicate)
		case pgErr.Code == pgForeignKeyViolation && msg.InUse != "":
			return Conflict(msg.InUse)
		case pgErr.Code == pgCheckViolation:
			return NewValidationError(MsgInvalidData, nil)
		}
		return err
	}

	// drivers without a translator still say so in the message
	lower := strings.ToLower(err.Error())
	switch {
	case msg.Duplicate != "" && (strings.Contains(lower, "unique") || strings.Contains(lower, "duplicate")):
		return Conflict(msg.Duplicate)
	case msg.InUse != "" && strings.Contains(lower, "foreign key"):
		return Conflict(msg.InUse)
	case strings.Contains(lower, "check constraint"):
		return NewValidationError(MsgInvalidData, nil)
	}
	return err
}
