package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"net"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"record not found", gorm.ErrRecordNotFound, KindNotFound},
		{"wrapped record not found", errors.Wrap(gorm.ErrRecordNotFound, "user id=3"), KindNotFound},
		{"sql no rows", sql.ErrNoRows, KindNotFound},
		{"pgx no rows", pgx.ErrNoRows, KindNotFound},
		{"strconv range", &strconv.NumError{Func: "ParseInt", Num: "99999999999", Err: strconv.ErrRange}, KindOutOfRange},
		{"scan range message", fmt.Errorf(`sql: Scan error on column index 0, name "id": converting driver.Value type int64 ("99999999999") to a int32: value out of range`), KindOutOfRange},
		{"wrapped scan range message", errors.Wrap(fmt.Errorf(`sql: Scan error on column index 0, name "id": converting driver.Value type int64 ("99999999999") to a int32: value out of range`), "failed to list user"), KindOutOfRange},
		{"pgx scan arg", pgx.ScanArgError{ColumnIndex: 7, Err: io.EOF}, KindOutOfRange},
		{"unique violation", &pgconn.PgError{Code: "23505", Message: "duplicate key value"}, KindInternal},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, KindInternal},
		{"wrapped pg error", errors.Wrap(&pgconn.PgError{Code: "42P01"}, "failed to list agent"), KindInternal},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, KindInternal},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, KindInternal},
		{"gorm invalid db", gorm.ErrInvalidDB, KindInternal},
		{"conn done", sql.ErrConnDone, KindInternal},
		{"bad conn", driver.ErrBadConn, KindInternal},
		{"deadline", context.DeadlineExceeded, KindInternal},
		{"canceled", errors.Wrap(context.Canceled, "failed to get agent"), KindInternal},
		{"unexpected eof", io.ErrUnexpectedEOF, KindInternal},
		{"net error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, KindInternal},
		{"anything else", errors.New("boom"), KindUnknown},
		{"sentinel nothing to update", ErrNothingToUpdate, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.err); got != tt.want {
				t.Fatalf("Translate(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for kind, want := range map[Kind]string{
		KindUnknown:      "Unknown",
		KindNotFound:     "NotFound",
		KindInvalidInput: "InvalidInput",
		KindOutOfRange:   "OutOfRange",
		KindInternal:     "Internal",
		Kind(99):         "Unknown",
	} {
		if got := kind.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
