package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "23505")
}

// notFound maps sql.ErrNoRows onto ErrNotFound, naming the missing entity.
func notFound(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s '%s': %w", entity, id, ErrNotFound)
	}
	return fmt.Errorf("query %s: %w", entity, err)
}

// requireAffected turns an update that touched no row into ErrNotFound.
func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s '%s': %w", entity, id, ErrNotFound)
	}
	return nil
}
