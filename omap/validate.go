package omap

import "io"
import "fmt"

// Validate implement api.Container interface. Walk the full tree
// and the order-list, panic on any violation of the red-black
// properties, the sort order, the list/tree synchronization or the
// element count.
func (m *Map[K, V]) Validate() {
	if m.root != nil && m.root.hue != black {
		panic("Validate(): root is RED")
	}
	count, _ := m.validatetree(m.root)

	// list sequence must equal in-order sequence, node for node.
	cur := m.head.next
	var walk func(nd *node[K, V])
	walk = func(nd *node[K, V]) {
		if nd == nil {
			return
		}
		walk(nd.child[left])
		if cur != nd {
			panic("Validate(): list order diverged from in-order")
		}
		cur = cur.next
		walk(nd.child[right])
	}
	walk(m.root)
	if cur != m.tail {
		panic("Validate(): list holds nodes missing from the tree")
	}

	// strict sort order and back links over the list.
	n, last := int64(0), m.head
	for nd := m.head.next; nd != m.tail; nd = nd.next {
		if nd.prev != last {
			panic("Validate(): broken prev link")
		}
		if last != m.head && !m.less(last.key, nd.key) {
			panic("Validate(): keys out of order")
		}
		last, n = nd, n+1
	}
	if m.tail.prev != last {
		panic("Validate(): broken tail link")
	}

	if count != m.n_count || n != m.n_count {
		fmsg := "Validate(): count mismatch tree:%v list:%v n_count:%v"
		panic(fmt.Errorf(fmsg, count, n, m.n_count))
	}
}

// validatetree check back references, red-red violations and
// uniform black-height, return node count and black-height of the
// subtree rooted at nd.
func (m *Map[K, V]) validatetree(nd *node[K, V]) (count, blackh int64) {
	if nd == nil {
		return 0, 0
	}
	for which := left; which <= right; which++ {
		if c := nd.child[which]; c != nil {
			if c.father != nd || c.which != which {
				panic("Validate(): broken father link")
			}
			if nd.hue == red && c.hue == red {
				panic("Validate(): RED node with RED child")
			}
		}
	}
	lcount, lh := m.validatetree(nd.child[left])
	rcount, rh := m.validatetree(nd.child[right])
	if lh != rh {
		fmsg := "Validate(): black-height mismatch %v != %v"
		panic(fmt.Errorf(fmsg, lh, rh))
	}
	if nd.hue == black {
		lh++
	}
	return lcount + rcount + 1, lh
}

// Dotdump to convert the whole tree into dot script that can be
// visualized using graphviz.
func (m *Map[K, V]) Dotdump(buffer io.Writer) {
	fmt.Fprintln(buffer, "digraph omap {")
	fmt.Fprintln(buffer, "  node[shape=record];")
	m.dotdump(m.root, buffer)
	fmt.Fprintln(buffer, "}")
}

func (m *Map[K, V]) dotdump(nd *node[K, V], buffer io.Writer) {
	if nd == nil {
		return
	}
	hue := "black"
	if nd.hue == red {
		hue = "red"
	}
	fmt.Fprintf(buffer, "  %q [color=%v];\n", fmt.Sprint(nd.key), hue)
	for which := left; which <= right; which++ {
		if c := nd.child[which]; c != nil {
			fmt.Fprintf(
				buffer, "  %q -> %q;\n",
				fmt.Sprint(nd.key), fmt.Sprint(c.key))
			m.dotdump(c, buffer)
		}
	}
}
