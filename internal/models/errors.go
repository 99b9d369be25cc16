package models

import "errors"

var (
	// ErrBoatNotFound indicates that no registration matches the given ID
	ErrBoatNotFound = errors.New("boat not found")

	// ErrInvalidBoatNumber indicates a boat number that is not PREFIX.ORDER.SEQ
	ErrInvalidBoatNumber = errors.New("invalid boat number")

	// ErrInvalidColumn wraps column descriptor problems
	ErrInvalidColumn = errors.New("invalid column")

	// ErrDatabaseBusy indicates another process is writing registrations
	ErrDatabaseBusy = errors.New("database is busy")

	// ErrUnknownExportFormat indicates an export format with no exporter
	ErrUnknownExportFormat = errors.New("unknown export format")
)
