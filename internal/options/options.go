// Package options provides the generic functional-option plumbing shared
// by every configurable type in this module (today, just text.Options).
// It is the teacher's own internal/options package, kept as-is: the
// pattern is domain-independent and every With... constructor in the text
// package builds directly on it.
package options

// Option configures a target of type T; T is almost always a pointer to a
// config struct so the applied mutation is visible to the caller.
type Option[T any] interface {
	apply(T) error
}

// fn adapts a plain function to Option.
type fn[T any] struct {
	do func(T) error
}

func (f *fn[T]) apply(target T) error { return f.do(target) }

// New wraps a fallible configuration function as an Option.
func New[T any](do func(T) error) Option[T] {
	return &fn[T]{do: do}
}

// NoError wraps an infallible configuration function as an Option.
func NoError[T any](do func(T)) Option[T] {
	return New(func(target T) error {
		do(target)
		return nil
	})
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
