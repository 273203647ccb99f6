package roster

// Option applies a configuration option to the parser.
type Option func(*parser)

// WithIDPrefix sets the prefix that marks a row as a real employee row.
// Rows whose employee_id does not carry the prefix (footer and aggregate
// rows in the source file) are dropped during load.
func WithIDPrefix(prefix string) Option {
	return func(p *parser) {
		if prefix != "" {
			p.idPrefix = prefix
		}
	}
}
