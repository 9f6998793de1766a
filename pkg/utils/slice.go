package utils

// map each element in sli.
//
// args:
//   - sli : slice of `T`s
//   - mapper : mapping function from T to R
//
// returns:
//
//	slice of `R`s. the element at `N` is `mapper(sli[N])`.
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}

// Map over sli with mapper, stopping at the first error.
//
// args:
//   - sli : slice of `T`s
//   - mapper : mapping function from T to R, which can fail
//
// returns:
//
//	(mapped slice, nil), or (nil, the first error mapper returned).
func MapUntilError[T any, R any](sli []T, mapper func(v T) (R, error)) ([]R, error) {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		r, err := mapper(v)
		if err != nil {
			return nil, err
		}
		ret[nth] = r
	}
	return ret, nil
}

// convert slice to map.
//
// If keys given with getkey collide, the latter value takes over.
//
// args:
//   - sli : source slice
//   - getkey : get key from an element of sli
//
// returns:
//
//	map{ getkey(sli[0]): sli[0], ..., getkey(sli[len(sli)-1]): sli[len(sli)-1] }
func ToMap[T any, K comparable](sli []T, getkey func(v T) K) map[K]T {
	ret := make(map[K]T, len(sli))
	for _, v := range sli {
		ret[getkey(v)] = v
	}
	return ret
}

// filter elements matching with predicator, keeping the order.
//
// args:
//   - vs : slice
//   - predicator : returns true for each element to be remain in result
//
// returns:
//
//	elements in vs which predicator evaluates as true. never nil.
func Filter[T any](vs []T, predicator func(T) bool) []T {
	ret := []T{}
	for _, v := range vs {
		if predicator(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

// remove duplicated elements. The first one is kept.
//
// args:
//   - vs : slice may have duplicates
//
// returns:
//
//	elements of vs, each appears once, in the order of their first appearance.
func Unique[T comparable](vs []T) []T {
	seen := make(map[T]struct{}, len(vs))
	ret := make([]T, 0, len(vs))
	for _, v := range vs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		ret = append(ret, v)
	}
	return ret
}

// Grouping slices into 2 part, match and notmatch in predicator p .
func Group[T any](s []T, p func(T) bool) (match []T, notmatch []T) {
	for _, v := range s {
		if p(v) {
			match = append(match, v)
		} else {
			notmatch = append(notmatch, v)
		}
	}
	return
}
