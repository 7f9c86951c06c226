package model

// Optional is a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

func (o Optional[T]) Present() bool { return o.ok }

// Or returns the held value, or def when absent.
func (o Optional[T]) Or(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}
