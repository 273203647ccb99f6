// Package model contains domain models passed between layers.
package model

// Employee is one cleaned roster row. CompUSD is annual compensation in
// whole dollars; fractional values in the source are truncated at load,
// never rounded.
type Employee struct {
	ID         string // employee identifier, e.g. "E0042"
	Name       string
	Role       string
	Department string
	Location   string
	CompUSD    int64 // non-negative
}

// Roster is the ordered sequence of cleaned employee rows. It is treated as
// read-only after load; selection and summary work on copies or views.
type Roster []Employee
