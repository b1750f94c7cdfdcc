// Package unionfind provides a disjoint-set structure with path compression
// and union by size, used to track connectivity of map areas as corridors
// join them.
package unionfind

// DisjointSet partitions the integers [0, n) into disjoint sets.
//
// SetsJoined, when non-nil, is called exactly once per effective union,
// after the merge completes, with the root of the larger set first. On equal
// sizes the second argument's root becomes the parent.
type DisjointSet struct {
	parents []int
	sizes   []int
	count   int

	SetsJoined func(larger, smaller int)
}

// New creates a disjoint set over [0, n), with every element in its own set.
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parents: make([]int, n),
		sizes:   make([]int, n),
		count:   n,
	}
	for i := range d.parents {
		d.parents[i] = i
		d.sizes[i] = 1
	}
	return d
}

// Size returns the number of elements the structure was created with.
func (d *DisjointSet) Size() int {
	return len(d.parents)
}

// Count returns the number of distinct sets remaining.
func (d *DisjointSet) Count() int {
	return d.count
}

// Find returns the root of the set containing i, compressing the walked
// path onto the root.
func (d *DisjointSet) Find(i int) int {
	if d.parents[i] != i {
		d.parents[i] = d.Find(d.parents[i])
	}
	return d.parents[i]
}

// InSameSet returns true if a and b belong to the same set.
func (d *DisjointSet) InSameSet(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// MakeUnion merges the sets containing a and b. Merging a set with itself
// is a no-op and fires no event.
func (d *DisjointSet) MakeUnion(a, b int) {
	i := d.Find(a)
	j := d.Find(b)
	if i == j {
		return
	}

	if d.sizes[i] <= d.sizes[j] {
		d.parents[i] = j
		d.sizes[j] += d.sizes[i]
		d.count--
		if d.SetsJoined != nil {
			d.SetsJoined(j, i)
		}
	} else {
		d.parents[j] = i
		d.sizes[i] += d.sizes[j]
		d.count--
		if d.SetsJoined != nil {
			d.SetsJoined(i, j)
		}
	}
}

// DisjointSetOf is a DisjointSet over arbitrary comparable items instead of
// integer indices.
type DisjointSetOf[T comparable] struct {
	set     *DisjointSet
	items   []T
	indices map[T]int

	// SetsJoined mirrors DisjointSet.SetsJoined with typed arguments.
	SetsJoined func(larger, smaller T)
}

// NewOf creates a disjoint set over the given items, each starting in its
// own set. Duplicate items share an index.
func NewOf[T comparable](items []T) *DisjointSetOf[T] {
	d := &DisjointSetOf[T]{
		items:   make([]T, 0, len(items)),
		indices: make(map[T]int, len(items)),
	}
	for _, item := range items {
		if _, ok := d.indices[item]; ok {
			continue
		}
		d.indices[item] = len(d.items)
		d.items = append(d.items, item)
	}
	d.set = New(len(d.items))
	d.set.SetsJoined = func(larger, smaller int) {
		if d.SetsJoined != nil {
			d.SetsJoined(d.items[larger], d.items[smaller])
		}
	}
	return d
}

// Count returns the number of distinct sets remaining.
func (d *DisjointSetOf[T]) Count() int {
	return d.set.Count()
}

// Find returns the representative item of the set containing item.
func (d *DisjointSetOf[T]) Find(item T) T {
	return d.items[d.set.Find(d.indices[item])]
}

// InSameSet returns true if a and b belong to the same set.
func (d *DisjointSetOf[T]) InSameSet(a, b T) bool {
	return d.set.InSameSet(d.indices[a], d.indices[b])
}

// MakeUnion merges the sets containing a and b.
func (d *DisjointSetOf[T]) MakeUnion(a, b T) {
	d.set.MakeUnion(d.indices[a], d.indices[b])
}
