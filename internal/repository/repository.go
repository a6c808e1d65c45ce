package repository

import (
	"database/sql"
	"errors"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Executor is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Bulk-save methods take one so a whole category save runs inside a
// single transaction owned by the caller.
type Executor interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
