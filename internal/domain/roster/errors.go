package roster

import "errors"

// Sentinel kinds for roster load errors. All of them are fatal to the
// render pass that triggered the load; row-level problems are not errors,
// they are drop counts in the Report.
var (
	ErrRead          = errors.New("roster source unreadable")
	ErrMissingColumn = errors.New("missing required column")
	ErrEmptyRoster   = errors.New("no valid employee rows after cleaning")
)
