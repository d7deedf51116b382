package infra

import (
	"errors"

	"meetup-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type RepositoryError struct {
	Kind           RepositoryErrorKind
	ConstraintName string
	msg            string
	err            error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err into a RepositoryError. The kind is derived
// from the underlying pg error code unless an explicit kind is given.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindDBFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	} else {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeUniqueViolation:
				kind = KindDuplicateKey
			case pgErrCodeForeignKeyViolation:
				kind = KindForeignKeyViolated
			}
		}
	}

	repoErr := RepositoryError{Kind: kind, msg: msg, err: errs.Wrap(err, msg)}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		repoErr.ConstraintName = pgErr.ConstraintName
	}
	return repoErr
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf reports the violated constraint name, if the error carries one.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.ConstraintName
	}
	return ""
}
