package strbuf

import "github.com/dacapoday/gstr/growth"

// Option is a functional option for configuring a String.
type Option func(*String)

// WithPolicy sets the growth policy and restarts the stride ramp.
func WithPolicy(p growth.Policy) Option {
	return func(s *String) {
		s.buf.SetPolicy(p)
	}
}

// WithCapacity preallocates exactly n bytes.
func WithCapacity(n int) Option {
	return func(s *String) {
		if n > 0 && n <= MaxLen {
			s.buf.Resize(n)
		}
	}
}
