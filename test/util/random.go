package testutil

import (
	random "github.com/mazen160/go-random"
)

// RandomDrawValue returns a plausible cash pot draw value.
func RandomDrawValue() int {
	v, err := random.IntRange(1, 37)
	if err != nil {
		panic(err)
	}
	return v
}

// RandomNumbers returns `count` values in [1, max]. Repeats are fine,
// parsing does not deduplicate either.
func RandomNumbers(count, max int) []int {
	out := make([]int, count)
	for i := range out {
		v, err := random.IntRange(1, max+1)
		if err != nil {
			panic(err)
		}
		out[i] = v
	}
	return out
}
