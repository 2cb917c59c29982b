package maybe

/*
module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)
*/

// Maybe holds either a value of type T or nothing.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing is true for an empty Maybe.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Get returns the wrapped value and a flag telling if there is one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a wrapped value. Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x.tag {
		return f(x.value)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match starts a pattern match on m:
//
//     var w dimen.DU
//     switch m := limit.Match(); m {
//     case m.Just(&w):
//         …
//     case m.Nothing():
//         …
//     }
//
func (m Maybe[T]) Match() *Matcher[T] {
	return &Matcher[T]{m: m}
}

// Matcher is part of pattern matching for Maybe and intended to be
// instantiated using Maybe.Match() only.
type Matcher[T any] struct {
	m Maybe[T]
}

// Just matches if a value is present, storing it in v (if v is non-nil).
func (mm *Matcher[T]) Just(v *T) *Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

// Nothing matches an empty Maybe.
func (mm *Matcher[T]) Nothing() *Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
