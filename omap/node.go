package omap

const (
	left  = 0
	right = 1
)

type color byte

const (
	red color = iota
	black
)

// node is the fundamental tree/list element. One flat record carries
// both tree fields and list fields, every node is homogeneous.
// Rebalancing rewires pointers and never moves a node in memory, so
// iterators to unrelated nodes stay valid across rotations.
type node[K, V any] struct {
	prev, next *node[K, V] // list links, non-nil except at sentinels
	father     *node[K, V]
	child      [2]*node[K, V]
	which      int // left or right, the child slot under father
	hue        color
	key        K // rewritten only by the erase payload swap
	value      V
}

func (nd *node[K, V]) brother() *node[K, V] {
	return nd.father.child[1-nd.which]
}

// relink re-derive the back references around nd from nd's own
// links: father's child slot, children's father and which.
func (nd *node[K, V]) relink() {
	if nd.father != nil {
		nd.father.child[nd.which] = nd
	}
	if lt := nd.child[left]; lt != nil {
		lt.father, lt.which = nd, left
	}
	if rt := nd.child[right]; rt != nil {
		rt.father, rt.which = nd, right
	}
}

func isblack[K, V any](nd *node[K, V]) bool {
	return nd == nil || nd.hue == black
}

// newnode allocate a RED node holding {key, value}, splice it into
// the list between prev and next and hang it under father's `which`
// slot. father can be nil for the root. Recycles from the freelist
// when possible.
func (m *Map[K, V]) newnode(
	key K, value V,
	prev, next, father *node[K, V], which int) *node[K, V] {

	var nd *node[K, V]
	if ln := len(m.freelist); ln > 0 {
		nd, m.freelist = m.freelist[ln-1], m.freelist[:ln-1]
		nd.child[left], nd.child[right] = nil, nil
	} else {
		nd = &node[K, V]{}
		m.n_nodes++
	}
	nd.key, nd.value, nd.hue = key, value, red
	nd.father, nd.which = father, which
	nd.prev, nd.next = prev, next
	prev.next, next.prev = nd, nd
	if father != nil {
		father.child[which] = nd
	}
	return nd
}

// freenode release nd to the freelist, dropping key and value
// references so the garbage collector can claim them.
func (m *Map[K, V]) freenode(nd *node[K, V]) {
	var zerok K
	var zerov V
	nd.key, nd.value = zerok, zerov
	nd.prev, nd.next, nd.father = nil, nil, nil
	nd.child[left], nd.child[right] = nil, nil
	m.n_frees++
	if int64(len(m.freelist)) < m.flsize {
		m.freelist = append(m.freelist, nd)
	}
}
