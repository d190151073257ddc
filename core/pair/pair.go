package pair

import "fmt"

// Pair holds two independently typed values. Both fields are set at construction
// and may be changed freely by the holder.
type Pair[A, B any] struct {
	First  A
	Second B
}

// New creates a Pair.
func New[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both values.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns a pair with the fields exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
