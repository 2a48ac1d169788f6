// Package flatbush is a static spatial index of 2D axis-aligned rectangles.
//
// Rectangles are added one at a time, the index is built once by Finish, and it
// can then be searched any number of times. Finish sorts the items along a
// Hilbert curve and packs them bottom-up into a flat R-tree held in a single
// slice. It is a port of https://github.com/mourner/flatbush.
//
// A finished index is read-only, so it is safe to call the Search methods from
// several goroutines at once. Add and Finish must not run concurrently with
// anything else.
package flatbush

import (
	"fmt"
	"log/slog"
	"slices"
)

// Flatbush is a spatial index for efficient 2D queries.
type Flatbush[TFloat Float] struct {
	// NodeSize is the maximum number of children per node. Minimum 2. Default 16.
	// It is read once by Finish; changing it afterwards has no effect on the tree.
	NodeSize int

	// nodes holds the leaves in [0, numItems), followed by the internal
	// nodes of each level, bottom-up. The root is the last element.
	nodes       []node[TFloat]
	nodeSize    int
	bounds      Extent[TFloat]
	levelBounds []int
	numItems    int
	finished    bool
	logger      *slog.Logger
}

// node is a slot in the flat tree. Whether a node is a leaf is decided by its
// position alone: positions below numItems are leaves.
type node[TFloat Float] struct {
	box Box[TFloat]
	ref int
}

// itemIndex is the insertion index of a leaf, as returned by Add.
func (n *node[TFloat]) itemIndex() int {
	return n.ref
}

// firstChild is the position of the first child of an internal node.
// Its children are the next nodeSize positions, cut short by the end of its level.
func (n *node[TFloat]) firstChild() int {
	return n.ref
}

// A ticket is a pending run of sibling nodes to scan during a search.
type ticket struct {
	nodeIndex int
	level     int
}

var discardLogger = slog.New(slog.DiscardHandler)

// NewFlatbush creates an empty index.
func NewFlatbush[TFloat Float](opts ...Option) *Flatbush[TFloat] {
	o := applyOptions(opts)
	f := &Flatbush[TFloat]{
		NodeSize: o.nodeSize,
		logger:   o.logger,
	}
	if o.capacity > 0 {
		f.Reserve(o.capacity)
	}
	return f
}

// Reserve enough boxes for the given number of items
func (f *Flatbush[TFloat]) Reserve(size int) {
	if f.finished {
		return
	}
	_, numNodes := countNodes(size, max(f.NodeSize, 2))
	if extra := numNodes - len(f.nodes); extra > 0 {
		f.nodes = slices.Grow(f.nodes, extra)
	}
}

// Size returns the number of boxes that have been added.
func (f *Flatbush[TFloat]) Size() int {
	return f.numItems
}

// Add a new box, and return its index.
// The index of the box is zero based, and corresponds 1:1 with the insertion of order of the boxes.
// You must add all boxes before calling Finish().
//
// The box is not validated; see AddBox. Add panics if Finish has already been called.
func (f *Flatbush[TFloat]) Add(minX, minY, maxX, maxY TFloat) int {
	if f.finished {
		fmtPanic("Add called after Finish")
	}
	return f.add(&Box[TFloat]{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY})
}

// AddBox is like Add, but returns ErrFinished instead of panicking, and
// rejects a box for which Valid is false with an error wrapping ErrInvalidRectangle.
func (f *Flatbush[TFloat]) AddBox(b Box[TFloat]) (int, error) {
	if f.finished {
		return -1, ErrFinished
	}
	if !b.Valid() {
		return -1, fmt.Errorf("%w %s", ErrInvalidRectangle, b)
	}
	return f.add(&b), nil
}

func (f *Flatbush[TFloat]) add(b *Box[TFloat]) int {
	index := len(f.nodes)
	f.nodes = append(f.nodes, node[TFloat]{box: *b, ref: index})
	f.bounds.Expand(b)
	f.numItems++
	return index
}

// countNodes returns the level bounds of a tree over numItems leaves, and the total number of nodes in it.
// levelBounds[0] is numItems, and levelBounds[k] is the number of nodes in levels 0 through k.
// The last level holds only the root.
func countNodes(numItems, nodeSize int) (levelBounds []int, numNodes int) {
	n := numItems
	numNodes = n
	levelBounds = append(levelBounds, n)
	for n > 1 || len(levelBounds) == 1 {
		n = ceilDiv(n, nodeSize)
		numNodes += n
		levelBounds = append(levelBounds, numNodes)
	}
	return levelBounds, numNodes
}

// ceilDiv returns n/d rounded up without computing n+d, which overflows for d near math.MaxInt.
func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)/d + 1
}

// Finish builds the spatial index, so that it can be queried.
// Calling Finish again has no effect. If no boxes were added the index stays empty
// and every search returns no results.
func (f *Flatbush[TFloat]) Finish() {
	log := f.logger
	if log == nil {
		log = discardLogger
	}
	if f.finished {
		log.Warn("flatbush: Finish called more than once")
		return
	}
	f.finished = true

	if f.numItems == 0 {
		log.Debug("flatbush: finished empty index")
		return
	}

	if f.NodeSize < 2 {
		log.Debug("flatbush: node size raised to minimum", "requested", f.NodeSize, "node_size", 2)
		f.NodeSize = 2
	}
	// A node never needs more children than there are items.
	f.nodeSize = max(2, min(f.NodeSize, f.numItems))

	// calculate the total number of nodes in the R-tree to allocate space for
	// and the index of each tree level (used in search later)
	var numNodes int
	f.levelBounds, numNodes = countNodes(f.numItems, f.nodeSize)
	f.nodes = slices.Grow(f.nodes, numNodes-len(f.nodes))

	// map item centers into Hilbert coordinate space and calculate Hilbert values
	extent, _ := f.bounds.Box()
	leaves := f.nodes[:f.numItems]
	hilbertValues := make([]uint32, len(leaves))
	for i := range leaves {
		hilbertValues[i] = hilbertKey(&leaves[i].box, &extent)
	}

	// sort items by their Hilbert value (for packing later)
	sortByKey(hilbertValues, leaves)

	// generate nodes at each tree level, bottom-up
	pos := 0
	for _, end := range f.levelBounds[:len(f.levelBounds)-1] {
		// generate a parent node for each block of consecutive <nodeSize> nodes
		for pos < end {
			var ext Extent[TFloat]
			first := pos
			for j := 0; j < f.nodeSize && pos < end; j++ {
				ext.Expand(&f.nodes[pos].box)
				pos++
			}
			box, _ := ext.Box()
			f.nodes = append(f.nodes, node[TFloat]{box: box, ref: first})
		}
	}

	log.Debug("flatbush: finished index",
		"items", f.numItems,
		"nodes", len(f.nodes),
		"levels", len(f.levelBounds),
		"node_size", f.nodeSize,
		"degenerate_x", !(extent.Width() > 0),
		"degenerate_y", !(extent.Height() > 0),
	)
}

// Ready returns nil if the index has been finished with at least one box,
// ErrNotFinished before Finish, and ErrEmptyIndex if it was finished empty.
func (f *Flatbush[TFloat]) Ready() error {
	switch {
	case !f.finished:
		return ErrNotFinished
	case f.numItems == 0:
		return ErrEmptyIndex
	}
	return nil
}

// Bounds returns the union of all added boxes, and false if none were added.
func (f *Flatbush[TFloat]) Bounds() (Box[TFloat], bool) {
	return f.bounds.Box()
}

// NumNodes returns the number of leaf and internal nodes in the finished tree.
func (f *Flatbush[TFloat]) NumNodes() int {
	if len(f.levelBounds) == 0 {
		return 0
	}
	return len(f.nodes)
}

// LevelBounds returns, for each tree level from the leaves up, the number of
// nodes in that level and all levels below it. It is nil before Finish.
func (f *Flatbush[TFloat]) LevelBounds() []int {
	return slices.Clone(f.levelBounds)
}

// String returns a summary of the index.
func (f *Flatbush[TFloat]) String() string {
	return fmt.Sprintf("Flatbush{Bounds:%s,NumItems:%d,NodeSize:%d}", f.bounds, f.numItems, f.NodeSize)
}

// Search for all boxes that overlap the given query box.
// Boxes that only touch the query box are included. The order of the results is not defined.
func (f *Flatbush[TFloat]) Search(minX, minY, maxX, maxY TFloat) []int {
	results := []int{}
	return f.SearchFast(minX, minY, maxX, maxY, results)
}

// SearchBox is Search with the query given as a Box.
func (f *Flatbush[TFloat]) SearchBox(q Box[TFloat]) []int {
	return f.Search(q.MinX, q.MinY, q.MaxX, q.MaxY)
}

// SearchFast accepts a 'results' as input. If you are performing millions of queries,
// then reusing a 'results' slice will reduce the number of allocations.
func (f *Flatbush[TFloat]) SearchFast(minX, minY, maxX, maxY TFloat, results []int) []int {
	results = results[:0]
	f.visit(minX, minY, maxX, maxY, func(index int) {
		results = append(results, index)
	})
	return results
}

// visit calls fn with the insertion index of every leaf that overlaps the query box.
func (f *Flatbush[TFloat]) visit(minX, minY, maxX, maxY TFloat, fn func(index int)) {
	if len(f.levelBounds) == 0 {
		// Must call Finish(), or the tree is empty
		return
	}

	stack := make([]ticket, 0, 32)
	stack = append(stack, ticket{nodeIndex: len(f.nodes) - 1, level: len(f.levelBounds) - 1})

	for len(stack) != 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// find the end index of the node
		end := f.levelBounds[t.level]
		if f.nodeSize < end-t.nodeIndex {
			end = t.nodeIndex + f.nodeSize
		}
		isLeaf := t.nodeIndex < f.numItems

		// search through child nodes
		for pos := t.nodeIndex; pos < end; pos++ {
			n := &f.nodes[pos]
			// check if node bbox intersects with query bbox
			if maxX < n.box.MinX ||
				maxY < n.box.MinY ||
				minX > n.box.MaxX ||
				minY > n.box.MaxY {
				continue
			}
			if isLeaf {
				fn(n.itemIndex())
			} else {
				stack = append(stack, ticket{nodeIndex: n.firstChild(), level: t.level - 1})
			}
		}
	}
}
