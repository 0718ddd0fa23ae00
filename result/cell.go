package result

// Dropper lets a stored value release external state when its cell is
// destructed. Values that do not implement it are simply discarded.
type Dropper interface {
	Drop()
}

// Cell holds zero or one value of T with explicit lifetime control. The
// zero value is an empty cell. Copying a cell copies the held value;
// the copies are independent afterwards.
//
// Occupancy is the caller's obligation: reading an empty cell through Get
// yields an unspecified (zero) value without any error.
type Cell[T any] struct {
	value    T
	occupied bool
}

// NewCell returns an occupied cell holding v.
func NewCell[T any](v T) Cell[T] {
	var c Cell[T]
	c.Construct(v)
	return c
}

// Construct destructs any currently held value, then stores v and marks
// the cell occupied.
func (c *Cell[T]) Construct(v T) {
	c.Destruct()
	c.value = v
	c.occupied = true
}

// Destruct clears the cell. It is a no-op when the cell is empty, runs the
// value's Drop hook when present, and never double-drops.
func (c *Cell[T]) Destruct() {
	if !c.occupied {
		return
	}
	if d, ok := any(c.value).(Dropper); ok {
		d.Drop()
	}
	var zero T
	c.value = zero
	c.occupied = false
}

// Occupied reports whether the cell holds a value.
func (c *Cell[T]) Occupied() bool {
	return c.occupied
}

// Get returns the held value. Unspecified when the cell is empty.
func (c *Cell[T]) Get() T {
	return c.value
}

// Raw returns a pointer to the storage slot regardless of occupancy.
func (c *Cell[T]) Raw() *T {
	return &c.value
}
