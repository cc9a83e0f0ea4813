package list

// region Iterator /////////////////////////////////////////////////////////////////////////////////////////////////////

// Iterator is a bidirectional handle to a position in a List that allows modifying the referenced value.
//
// An Iterator does not own the node it references. It stays valid until that node is removed from its List, after
// which every use of the Iterator panics with ErrInvalidIterator. The zero Iterator is invalid.
type Iterator[T any] struct {
	node *node[T]
}

// Value returns the value at the position of the Iterator.
func (i Iterator[T]) Value() T {
	return i.node.load()
}

// Set overwrites the value at the position of the Iterator.
func (i Iterator[T]) Set(value T) {
	i.node.load()
	i.node.value = value
}

// Next returns an Iterator to the following position.
func (i Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{i.node.forward()}
}

// Prev returns an Iterator to the preceding position.
func (i Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{i.node.backward()}
}

// Add returns an Iterator that is k positions further. The jump is performed as k single steps.
func (i Iterator[T]) Add(k int) Iterator[T] {
	return Iterator[T]{i.node.step(k)}
}

// Sub returns an Iterator that is k positions earlier. The jump is performed as k single steps.
func (i Iterator[T]) Sub(k int) Iterator[T] {
	return Iterator[T]{i.node.step(-k)}
}

// Advance moves the Iterator k positions forward and returns its new position.
func (i *Iterator[T]) Advance(k int) Iterator[T] {
	i.node = i.node.step(k)

	return *i
}

// Retreat moves the Iterator k positions backward and returns its new position.
func (i *Iterator[T]) Retreat(k int) Iterator[T] {
	i.node = i.node.step(-k)

	return *i
}

// Equal returns true if both iterators reference the same node.
func (i Iterator[T]) Equal(other Iterator[T]) bool {
	return i.node == other.node
}

// Valid returns true if the Iterator references a position that can be dereferenced.
func (i Iterator[T]) Valid() bool {
	return i.node.isElement()
}

// Const returns a read-only view of the same position.
func (i Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{i.node}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ConstIterator ////////////////////////////////////////////////////////////////////////////////////////////////

// ConstIterator is a read-only bidirectional handle to a position in a List.
type ConstIterator[T any] struct {
	node *node[T]
}

// Value returns the value at the position of the ConstIterator.
func (c ConstIterator[T]) Value() T {
	return c.node.load()
}

// Next returns a ConstIterator to the following position.
func (c ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{c.node.forward()}
}

// Prev returns a ConstIterator to the preceding position.
func (c ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{c.node.backward()}
}

// Add returns a ConstIterator that is k positions further.
func (c ConstIterator[T]) Add(k int) ConstIterator[T] {
	return ConstIterator[T]{c.node.step(k)}
}

// Sub returns a ConstIterator that is k positions earlier.
func (c ConstIterator[T]) Sub(k int) ConstIterator[T] {
	return ConstIterator[T]{c.node.step(-k)}
}

// Advance moves the ConstIterator k positions forward and returns its new position.
func (c *ConstIterator[T]) Advance(k int) ConstIterator[T] {
	c.node = c.node.step(k)

	return *c
}

// Retreat moves the ConstIterator k positions backward and returns its new position.
func (c *ConstIterator[T]) Retreat(k int) ConstIterator[T] {
	c.node = c.node.step(-k)

	return *c
}

// Equal returns true if both iterators reference the same node.
func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return c.node == other.node
}

// Valid returns true if the ConstIterator references a position that can be dereferenced.
func (c ConstIterator[T]) Valid() bool {
	return c.node.isElement()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// Distance returns the number of increments needed to get from first to last.
func Distance[T any](first, last ConstIterator[T]) (distance int) {
	for current := first.node; current != last.node; current = current.forward() {
		distance++
	}

	return distance
}
