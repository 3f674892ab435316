package rotation

import "fmt"

// LCG parameters driving the seeded shuffle. Changing any of them changes
// every vendor's daily selection.
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgMask       = 0x7fffffff
)

// InvalidPoolError reports a selection over a pool that cannot serve it.
type InvalidPoolError struct {
	Seed   string
	Size   int
	Count  int
	Reason string
}

func (e *InvalidPoolError) Error() string {
	return fmt.Sprintf("invalid pool for seed %q (size %d, count %d): %s", e.Seed, e.Size, e.Count, e.Reason)
}

// Index returns the position PickOne selects from a pool of the given size.
func Index(size int, seed string) (int, error) {
	if size <= 0 {
		return 0, &InvalidPoolError{Seed: seed, Size: size, Count: 1, Reason: "pool is empty"}
	}
	return int(Hash(seed) % uint32(size)), nil
}

// PickOne selects pool[Hash(seed) mod len(pool)].
func PickOne[T any](pool []T, seed string) (T, error) {
	var zero T
	idx, err := Index(len(pool), seed)
	if err != nil {
		return zero, err
	}
	return pool[idx], nil
}

// Permutation returns the first count positions of a seeded Fisher-Yates
// shuffle of 0..size-1. When size <= count no shuffle happens and the
// positions are returned in order.
func Permutation(size, count int, seed string) ([]int, error) {
	if size <= 0 {
		return nil, &InvalidPoolError{Seed: seed, Size: size, Count: count, Reason: "pool is empty"}
	}
	if count < 0 {
		return nil, &InvalidPoolError{Seed: seed, Size: size, Count: count, Reason: "count is negative"}
	}

	order := make([]int, size)
	for i := range order {
		order[i] = i
	}
	if size <= count {
		return order, nil
	}

	state := uint64(Hash(seed))
	for i := size - 1; i > 0; i-- {
		state = (state*lcgMultiplier + lcgIncrement) & lcgMask
		j := int(state % uint64(i+1))
		order[i], order[j] = order[j], order[i]
	}
	return order[:count], nil
}

// PickMany returns up to count distinct items of pool in seeded shuffle
// order. The input slice is never modified; the result is a fresh slice.
func PickMany[T any](pool []T, count int, seed string) ([]T, error) {
	order, err := Permutation(len(pool), count, seed)
	if err != nil {
		return nil, err
	}
	picked := make([]T, len(order))
	for i, idx := range order {
		picked[i] = pool[idx]
	}
	return picked, nil
}
