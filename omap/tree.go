package omap

// rotate the subtree rooted at x towards `dir`, lifting x's other
// child into x's place. Rotation changes tree shape only, in-order
// sequence is untouched, so list links are never involved here.
func (m *Map[K, V]) rotate(x *node[K, V], dir int) {
	y := x.child[1-dir]
	if m.root == x {
		m.root = y
	}
	x.child[1-dir] = y.child[dir]
	y.father, y.which = x.father, x.which
	x.father, x.which = y, dir
	x.relink() // before y, x.relink sets y.child[dir] = x
	y.relink()
}

// insertfix repair the red-black invariants bottom-up after target
// was attached as a RED leaf.
func (m *Map[K, V]) insertfix(target *node[K, V]) {
	father := target.father
	if father == nil {
		target.hue = black
		return
	}
	if father.hue == black {
		return
	}
	grandpa := father.father // father is RED, so never the root
	uncle := father.brother()
	if uncle == nil || uncle.hue == black {
		if target.which == father.which {
			father.hue, grandpa.hue = black, red
			m.rotate(grandpa, 1-target.which)
		} else {
			target.hue, grandpa.hue = black, red
			m.rotate(father, 1-target.which)
			// the first rotation flipped target.which
			m.rotate(grandpa, 1-target.which)
		}
	} else {
		father.hue, uncle.hue = black, black
		grandpa.hue = red
		m.insertfix(grandpa)
	}
}

// erasefix restore uniform black-height before target is spliced
// out of the tree. On entry target has at most one child. With
// recursive=true target itself is not going away, its subtree is
// one black short and needs repair at this level.
func (m *Map[K, V]) erasefix(target *node[K, V], recursive bool) {
	if target.hue == red && !recursive {
		return
	}
	child := target.child[right]
	if target.child[left] != nil {
		child = target.child[left]
	}
	if child != nil && child.hue == red && !recursive {
		child.hue = black // single recoloring restores black-height
		return
	}
	if m.root == target {
		target.hue = black // whole tree height shrank
		return
	}
	father := target.father
	brother := target.brother() // non-nil by black-height
	if father.hue == black && brother.hue == black &&
		isblack(brother.child[left]) && isblack(brother.child[right]) {
		brother.hue = red
		m.erasefix(father, true)
		return
	}
	if brother.hue == red {
		father.hue, brother.hue = red, black
		m.rotate(father, target.which)
		brother = target.brother()
	}
	if father.hue == red && brother.hue == black &&
		isblack(brother.child[left]) && isblack(brother.child[right]) {
		father.hue, brother.hue = black, red
		return
	}
	if isblack(brother.child[1-target.which]) {
		// inner cousin is certain to be RED here
		brother.child[target.which].hue = black
		brother.hue = red
		m.rotate(brother, 1-target.which)
		brother = target.brother()
	}
	father.hue, brother.hue = brother.hue, father.hue
	brother.child[1-target.which].hue = black
	m.rotate(father, target.which)
}

// search descend from root comparing under the strict weak order,
// return the node with an equivalent key, else nil.
func (m *Map[K, V]) search(key K) *node[K, V] {
	cur := m.root
	for cur != nil {
		if m.less(key, cur.key) {
			cur = cur.child[left]
		} else if m.less(cur.key, key) {
			cur = cur.child[right]
		} else {
			return cur
		}
	}
	return nil
}

// insert attach {key, value} keeping the tree and list in lock-step.
// If an equivalent key is already present the existing node is
// returned untouched, insertion never overwrites. The new node's
// list slot is derived locally from the descent: attached as a left
// child it goes just before the last visited node, as a right child
// just after.
func (m *Map[K, V]) insert(key K, value V) (*node[K, V], bool) {
	if m.root == nil {
		nd := m.newnode(key, value, m.head, m.tail, nil, left)
		m.root = nd
		m.n_count++
		m.h_insertdepth.Add(1)
		m.insertfix(nd)
		return nd, true
	}
	cur, which, depth := m.root, left, int64(1)
	for {
		which = left
		if m.less(cur.key, key) {
			which = right
		} else if !m.less(key, cur.key) {
			m.h_insertdepth.Add(depth)
			return cur, false
		}
		if cur.child[which] == nil {
			break
		}
		cur, depth = cur.child[which], depth+1
	}
	prev, next := cur.prev, cur
	if which == right {
		prev, next = cur, cur.next
	}
	nd := m.newnode(key, value, prev, next, cur, which)
	m.n_count++
	m.h_insertdepth.Add(depth + 1)
	m.insertfix(nd)
	return nd, true
}

// erase remove target from the list, the tree and free it. A node
// with two children first copies the payload of its in-order
// successor (target.next, which has no left child) and the erase is
// retargeted onto that successor node: the original node survives in
// the tree holding the successor's pair, the successor node is freed.
func (m *Map[K, V]) erase(target *node[K, V]) {
	m.n_count--
	if target.child[left] != nil && target.child[right] != nil {
		succ := target.next
		target.key, target.value = succ.key, succ.value
		target = succ
	}
	m.erasefix(target, false)
	target.prev.next, target.next.prev = target.next, target.prev
	child := target.child[right]
	if target.child[left] != nil {
		child = target.child[left]
	}
	if m.root == target {
		m.root = child
	} else {
		target.father.child[target.which] = child
	}
	if child != nil {
		child.father, child.which = target.father, target.which
	}
	m.freenode(target)
}
