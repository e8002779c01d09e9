package maxheap

import (
	"errors"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Remove.
var (
	// ErrEmptyHeap is returned when removing from a heap with no items.
	ErrEmptyHeap = errors.New("maxheap: heap is empty")

	// ErrItemNotFound is returned when the requested item is not stored.
	ErrItemNotFound = errors.New("maxheap: item not found")
)

// MaxHeap is a binary max-heap. Create it with New.
type MaxHeap[T constraints.Ordered] struct {
	data []T
	log  *slog.Logger
}

// Option configures a MaxHeap at construction time.
type Option func(*config)

type config struct {
	log *slog.Logger
}

// WithLogger traces the construction pass at debug level.
// A nil logger keeps the heap silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}
