package utils

import "iter"

// Filter yields the elements of s for which fn returns true, in order.
func Filter[S any](s []S, fn func(S) bool) iter.Seq[S] {
	return func(yield func(S) bool) {
		for _, v := range s {
			if fn(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}
