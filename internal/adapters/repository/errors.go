package repository

import "errors"

// Sentinel kinds for roster store errors.
var (
	ErrNoSource = errors.New("no roster source configured")
)
