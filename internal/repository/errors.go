package repository

import (
	"errors"
	"fmt"

	"github.com/outlierSlug/dubhacks2025/internal/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translate turns gorm's not-found and duplicate-key errors into domain errors;
// anything else is wrapped with op and stays opaque.
func translate(err error, op string, notFound, duplicate *apperrors.Error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case duplicate != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		duplicate.Cause = err
		return duplicate
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// idConflict is the duplicate-key error for a create. id is 0 when the store assigned it.
func idConflict(kind string, id int64) *apperrors.Error {
	if id == 0 {
		return apperrors.Conflict("%s id assigned by the store is already taken.", kind)
	}
	return apperrors.Conflict("%s with id %d already exists.", kind, id)
}

// forUpdate adds a row lock to the next read. sqlite serialises writers on its own and has no row locks.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// syncSequence moves table's id sequence past the highest stored id. postgres does not
// advance a serial sequence for rows inserted with an explicit id.
func syncSequence(db *gorm.DB, table string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	stmt := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST((SELECT MAX(id) FROM %[1]s), 1))", table)
	return translate(db.Exec(stmt).Error, "sync "+table+" id sequence", nil, nil)
}
