package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Kind classifies a failure for callers that cannot inspect driver errors.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	// KindInvalidInput is never returned by Translate; handlers use it for
	// requests rejected before reaching the store.
	KindInvalidInput
	KindOutOfRange
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidInput:
		return "InvalidInput"
	case KindOutOfRange:
		return "OutOfRange"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

var (
	// ErrNothingToUpdate is returned by Update when no column was supplied.
	// No statement is executed.
	ErrNothingToUpdate = errors.New("nothing to update")
	// ErrUnknownColumn is returned by Update for a column outside the entity whitelist.
	ErrUnknownColumn = errors.New("unknown column")
)

// Translate maps a data access error to a Kind. It never panics and every
// input yields exactly one Kind.
func Translate(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var (
		pgErr      *pgconn.PgError
		connectErr *pgconn.ConnectError
		scanErr    pgx.ScanArgError
		scanErrPtr *pgx.ScanArgError
		netErr     net.Error
	)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, sql.ErrNoRows),
		errors.Is(err, pgx.ErrNoRows):
		return KindNotFound
	case errors.Is(err, strconv.ErrRange),
		errors.As(err, &scanErr),
		errors.As(err, &scanErrPtr):
		return KindOutOfRange
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrInvalidField),
		errors.Is(err, gorm.ErrInvalidDB),
		errors.Is(err, gorm.ErrInvalidTransaction),
		errors.As(err, &pgErr),
		errors.As(err, &connectErr),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &netErr):
		return KindInternal
	case isScanRangeError(err):
		return KindOutOfRange
	}
	return KindUnknown
}

// database/sql formats conversion failures with %v, dropping strconv.ErrRange
// from the chain, so only the message is left to inspect.
func isScanRangeError(err error) bool {
	msg := errors.Cause(err).Error()
	return strings.HasPrefix(msg, "sql: Scan error") && strings.Contains(msg, "out of range")
}
