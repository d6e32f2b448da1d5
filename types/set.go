package types

// Set is a minimal generic hash set.
type Set[T comparable] struct {
	hash map[T]struct{}
}

func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{hash: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.hash[item] = struct{}{}
	}
	return s
}

func (s *Set[T]) Insert(items ...T) {
	for _, item := range items {
		s.hash[item] = struct{}{}
	}
}

func (s *Set[T]) Exists(item T) bool {
	_, ok := s.hash[item]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.hash)
}

func (s *Set[T]) Array() []T {
	out := make([]T, 0, len(s.hash))
	for item := range s.hash {
		out = append(out, item)
	}
	return out
}
