package search

// Decorator renders a matched substring for output
type Decorator func(match string) string

// Options controls a single scan
type Options struct {
	IgnoreCase bool
	// Decorate wraps every located occurrence. Nil means plain mode.
	Decorate Decorator
}

// Identity returns the match unchanged
func Identity(match string) string {
	return match
}

// Delimit returns a Decorator that wraps each match with prefix and suffix
func Delimit(prefix, suffix string) Decorator {
	return func(match string) string {
		return prefix + match + suffix
	}
}
