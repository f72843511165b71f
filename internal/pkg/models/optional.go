package models

// Optional holds a value that may be absent in the source payload.
// Absent and JSON null are the same thing here.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

func None[T any]() Optional[T] { return Optional[T]{} }

func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

func (o Optional[T]) IsSet() bool { return o.ok }

// Or returns the value or def when absent.
func (o Optional[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
