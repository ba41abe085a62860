package persistence

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isConstraintViolation reports whether err is a database integrity
// failure: a duplicate key, a foreign key or a check constraint. GORM
// translates driver errors into its sentinels; raw postgres errors
// arrive untranslated and carry an SQLSTATE of class 23.
func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23")
}

// constraintField maps the violated constraint, when the driver names
// it, onto the request property it guards
func constraintField(err error, fallback string) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fallback
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "beer_id"):
		return "beerId"
	case strings.Contains(pgErr.ConstraintName, "customer_id"):
		return "customerId"
	case strings.Contains(pgErr.ConstraintName, "category_id"):
		return "categoryId"
	default:
		return fallback
	}
}
