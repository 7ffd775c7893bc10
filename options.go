package filemap

// Option is a function that modifies a Builder before the map is built.
type Option func(*Builder)

// WithPairSeparator sets the pair separator.
func WithPairSeparator(sep string) Option {
	return func(b *Builder) {
		b.pairSep = sep
	}
}

// WithKeyValueSeparator sets the key-value separator.
func WithKeyValueSeparator(sep string) Option {
	return func(b *Builder) {
		b.keyValueSep = sep
	}
}

// WithStrictKeys enables or disables failing on duplicate keys.
func WithStrictKeys(strict bool) Option {
	return func(b *Builder) {
		b.strictKeys = strict
	}
}
