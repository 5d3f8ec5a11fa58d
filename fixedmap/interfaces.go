package fixedmap

//go:generate mockgen -source interfaces.go -destination interfaces_mocks.go -package fixedmap

// Iterator is an interface for standard iterator
type Iterator[T any] interface {

	// HasNext returns true if there is still at least one more item in the underlying collection.
	HasNext() bool

	// Next returns a next element in the input collection.
	Next() T
}

// ReadOnlyMap is the read surface of an associative container. FixedMap
// implements it; consumers depending on lookups only may accept this
// interface instead of the concrete map type.
type ReadOnlyMap[K comparable, V any] interface {

	// Get returns a value associated with the key and whether it is present.
	Get(key K) (val V, exists bool)

	// Contains returns whether the key is present.
	Contains(key K) bool

	// Size returns the number of entries.
	Size() int

	// Empty returns whether the container holds no entries.
	Empty() bool

	// ForEach iterates all stored key/value pairs.
	ForEach(callback func(K, V))
}
