package strict

import "reflect"

// Optional holds a T or nothing. A nil argument leaves it empty; any other
// argument is cast to T.
type Optional[T any] struct {
	value T
	valid bool
}

func Some[T any](v T) Optional[T] { return Optional[T]{value: v, valid: true} }

func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.valid }

// Interface returns the value, or nil when empty.
func (o Optional[T]) Interface() any {
	if !o.valid {
		return nil
	}

	return o.value
}

func (o *Optional[T]) Members() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[T](), nil}
}

func (o *Optional[T]) Select(i int, v reflect.Value) {
	*o = Optional[T]{}
	if i == 0 {
		reflect.ValueOf(&o.value).Elem().Set(v)
		o.valid = true
	}
}

// Union2 holds either an A or a B. An argument that already is one of them is
// kept; otherwise A is tried before B.
type Union2[A, B any] struct {
	which int
	a     A
	b     B
}

// Which returns 1 for A, 2 for B and 0 for an empty union.
func (u Union2[A, B]) Which() int { return u.which }

func (u Union2[A, B]) A() (A, bool) { return u.a, u.which == 1 }

func (u Union2[A, B]) B() (B, bool) { return u.b, u.which == 2 }

// Interface returns the selected member, or nil when empty.
func (u Union2[A, B]) Interface() any {
	switch u.which {
	case 1:
		return u.a
	case 2:
		return u.b
	default:
		return nil
	}
}

func (u *Union2[A, B]) Members() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (u *Union2[A, B]) Select(i int, v reflect.Value) {
	*u = Union2[A, B]{which: i + 1}

	switch i {
	case 0:
		reflect.ValueOf(&u.a).Elem().Set(v)
	case 1:
		reflect.ValueOf(&u.b).Elem().Set(v)
	}
}

// Union3 holds an A, a B or a C, tried in that order.
type Union3[A, B, C any] struct {
	which int
	a     A
	b     B
	c     C
}

func (u Union3[A, B, C]) Which() int { return u.which }

func (u Union3[A, B, C]) A() (A, bool) { return u.a, u.which == 1 }

func (u Union3[A, B, C]) B() (B, bool) { return u.b, u.which == 2 }

func (u Union3[A, B, C]) C() (C, bool) { return u.c, u.which == 3 }

func (u Union3[A, B, C]) Interface() any {
	switch u.which {
	case 1:
		return u.a
	case 2:
		return u.b
	case 3:
		return u.c
	default:
		return nil
	}
}

func (u *Union3[A, B, C]) Members() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

func (u *Union3[A, B, C]) Select(i int, v reflect.Value) {
	*u = Union3[A, B, C]{which: i + 1}

	switch i {
	case 0:
		reflect.ValueOf(&u.a).Elem().Set(v)
	case 1:
		reflect.ValueOf(&u.b).Elem().Set(v)
	case 2:
		reflect.ValueOf(&u.c).Elem().Set(v)
	}
}
