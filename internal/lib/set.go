package lib

// Set holds distinct comparable values. It is not safe for concurrent use and can
// be passed by value.
type Set[T comparable] struct {
	data map[T]struct{}
}

func NewSet[T comparable](elems ...T) Set[T] {
	s := Set[T]{data: make(map[T]struct{}, len(elems))}
	for _, elem := range elems {
		s.data[elem] = struct{}{}
	}
	return s
}

// Add inserts elem and reports whether it was not already present.
func (s Set[T]) Add(elem T) bool {
	if _, exists := s.data[elem]; exists {
		return false
	}
	s.data[elem] = struct{}{}
	return true
}
