package repository

// Option configures a FileStore.
type Option func(*FileStore)

// WithIDPrefix sets the employee-ID prefix used to keep data rows during
// parsing. Defaults to "E".
func WithIDPrefix(prefix string) Option {
	return func(s *FileStore) {
		s.idPrefix = prefix
	}
}
