package omap

import "sort"
import "testing"
import "math/rand"

import "github.com/bnclabs/gocontainer/api"

var _ api.Container = (*Map[int, int])(nil)

func TestOmapEmpty(t *testing.T) {
	m := New[int, string]("empty", Less[int], Defaultsettings())
	defer m.Destroy()

	if m.ID() != "empty" {
		t.Errorf("unexpected %v", m.ID())
	}
	if m.Count() != 0 {
		t.Errorf("unexpected %v", m.Count())
	}
	if m.Empty() == false {
		t.Errorf("expected empty")
	}
	if m.Has(10) {
		t.Errorf("unexpected key")
	}
	if m.Countkey(10) != 0 {
		t.Errorf("unexpected count")
	}
	if _, err := m.At(10); err != api.ErrorKeyNotFound {
		t.Errorf("unexpected %v", err)
	}
	if it := m.Find(10); it.Equal(m.End()) == false {
		t.Errorf("expected end")
	}
	if m.Begin().Equal(m.End()) == false {
		t.Errorf("expected begin == end")
	}
	m.Validate()

	stats := m.Stats()
	if x := stats["n_count"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_inserts"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_deletes"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	} else if x := stats["n_frees"].(int64); x != 0 {
		t.Errorf("unexpected %v", x)
	}
	m.Log()
}

func TestOmapInsertScenario(t *testing.T) {
	m := New[int, int]("scenario", Less[int], Defaultsettings())
	defer m.Destroy()

	for _, key := range []int{5, 3, 8, 1, 4, 7, 9} {
		if _, created := m.Insert(key, key*10); created == false {
			t.Errorf("key %v not created", key)
		}
		m.Validate()
	}
	if m.Count() != 7 {
		t.Errorf("unexpected %v", m.Count())
	}

	keys := iterkeys(t, m)
	ref := []int{1, 3, 4, 5, 7, 8, 9}
	if len(keys) != len(ref) {
		t.Fatalf("unexpected %v", keys)
	}
	for i, key := range ref {
		if keys[i] != key {
			t.Errorf("unexpected %v at %v", keys[i], i)
		}
	}

	// reverse traversal over the same list.
	it, rkeys := m.End(), []int{}
	for it.Equal(m.Begin()) == false {
		if err := it.Prev(); err != nil {
			t.Fatalf("unexpected %v", err)
		}
		key, err := it.Key()
		if err != nil {
			t.Fatalf("unexpected %v", err)
		}
		rkeys = append(rkeys, key)
	}
	for i, key := range rkeys {
		if key != ref[len(ref)-1-i] {
			t.Errorf("unexpected %v at %v", key, i)
		}
	}
}

func TestOmapDuplicateInsert(t *testing.T) {
	m := New[string, int]("dups", Less[string], Defaultsettings())
	defer m.Destroy()

	it1, created := m.Insert("key", 1)
	if created == false {
		t.Errorf("expected creation")
	}
	it2, created := m.Insert("key", 2)
	if created {
		t.Errorf("unexpected creation")
	}
	if it1.Equal(it2) == false {
		t.Errorf("expected same node")
	}
	if value, _ := it2.Value(); value != 1 {
		t.Errorf("unexpected %v", value)
	}
	if m.Count() != 1 {
		t.Errorf("unexpected %v", m.Count())
	}
	if x := m.Stats()["n_dups"].(int64); x != 1 {
		t.Errorf("unexpected %v", x)
	}
	m.Validate()
}

func TestOmapRef(t *testing.T) {
	m := New[string, int]("ref", Less[string], Defaultsettings())
	defer m.Destroy()

	if _, err := m.At("missing"); err != api.ErrorKeyNotFound {
		t.Errorf("unexpected %v", err)
	}
	ref := m.Ref("missing") // auto-insert with zero value
	if m.Count() != 1 {
		t.Errorf("unexpected %v", m.Count())
	}
	if *ref != 0 {
		t.Errorf("unexpected %v", *ref)
	}
	*ref = 42
	if value, err := m.At("missing"); err != nil || *value != 42 {
		t.Errorf("unexpected %v %v", value, err)
	}
	if ref := m.Ref("missing"); *ref != 42 { // no overwrite
		t.Errorf("unexpected %v", *ref)
	}
	m.Validate()
}

func TestOmapEraseMin(t *testing.T) {
	m := New[int, int]("erasemin", Less[int], Defaultsettings())
	defer m.Destroy()

	rnd := rand.New(rand.NewSource(42))
	ref := map[int]bool{}
	for len(ref) < 500 {
		key := rnd.Intn(100000)
		m.Insert(key, key)
		ref[key] = true
	}
	m.Validate()

	drained, prev := []int{}, -1
	for m.Empty() == false {
		key, err := m.Begin().Key()
		if err != nil {
			t.Fatalf("unexpected %v", err)
		}
		if key <= prev {
			t.Fatalf("not increasing: %v after %v", key, prev)
		}
		if err := m.Erase(m.Begin()); err != nil {
			t.Fatalf("unexpected %v", err)
		}
		drained, prev = append(drained, key), key
		m.Validate()
	}
	if len(drained) != len(ref) {
		t.Errorf("unexpected %v", len(drained))
	}
	for _, key := range drained {
		if ref[key] == false {
			t.Errorf("unexpected key %v", key)
		}
	}
}

func TestOmapEraseInvalid(t *testing.T) {
	m := New[int, int]("erasebad", Less[int], Defaultsettings())
	defer m.Destroy()
	other := New[int, int]("other", Less[int], Defaultsettings())
	defer other.Destroy()

	m.Insert(1, 10)
	other.Insert(1, 10)

	if err := m.Erase(m.End()); err != api.ErrorInvalidIterator {
		t.Errorf("unexpected %v", err)
	}
	if err := m.Erase(other.Begin()); err != api.ErrorInvalidIterator {
		t.Errorf("unexpected %v", err)
	}
	if err := m.Erase(nil); err != api.ErrorInvalidIterator {
		t.Errorf("unexpected %v", err)
	}
	if m.Count() != 1 {
		t.Errorf("unexpected %v", m.Count())
	}
}

func TestOmapIteratorStability(t *testing.T) {
	m := New[int, int]("stable", Less[int], Defaultsettings())
	defer m.Destroy()

	for key := 0; key < 100; key++ {
		m.Insert(key, key*10)
	}
	it := m.Find(60)
	// erasing unrelated elements triggers rotations all over the
	// tree, the node behind `it` must not move.
	for key := 0; key < 100; key += 2 {
		if key == 60 {
			continue
		}
		if err := m.Erase(m.Find(key)); err != nil {
			t.Fatalf("unexpected %v", err)
		}
		m.Validate()
	}
	if key, err := it.Key(); err != nil || key != 60 {
		t.Errorf("unexpected %v %v", key, err)
	}
	if value, err := it.Value(); err != nil || value != 600 {
		t.Errorf("unexpected %v %v", value, err)
	}
}

func TestOmapEraseTwoChildren(t *testing.T) {
	m := New[int, int]("twochild", Less[int], Defaultsettings())
	defer m.Destroy()

	for _, key := range []int{50, 25, 75, 10, 30, 60, 90} {
		m.Insert(key, key)
	}
	// 50 sits at the root with two children, its in-order
	// successor is 60.
	if err := m.Erase(m.Find(50)); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	m.Validate()
	if m.Has(50) {
		t.Errorf("unexpected key 50")
	}
	if m.Has(60) == false {
		t.Errorf("missing key 60")
	}
	keys := iterkeys(t, m)
	ref := []int{10, 25, 30, 60, 75, 90}
	for i, key := range ref {
		if keys[i] != key {
			t.Errorf("unexpected %v at %v", keys[i], i)
		}
	}
}

func TestOmapClone(t *testing.T) {
	m := New[int, int]("source", Less[int], Defaultsettings())
	defer m.Destroy()

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		key := rnd.Intn(10000)
		m.Insert(key, key*2)
	}
	m.Validate()

	newm := m.Clone("copy")
	defer newm.Destroy()
	newm.Validate()
	if newm.Count() != m.Count() {
		t.Errorf("unexpected %v", newm.Count())
	}

	skeys, ckeys := iterkeys(t, m), iterkeys(t, newm)
	for i, key := range skeys {
		if ckeys[i] != key {
			t.Fatalf("unexpected %v at %v", ckeys[i], i)
		}
	}

	// independent mutation of the copy leaves the source unchanged.
	count := m.Count()
	for _, key := range ckeys[:100] {
		if err := newm.Erase(newm.Find(key)); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	newm.Insert(-1, -2)
	newm.Validate()
	m.Validate()
	if m.Count() != count {
		t.Errorf("unexpected %v", m.Count())
	}
	if m.Has(-1) {
		t.Errorf("source mutated by copy")
	}
	for _, key := range ckeys[:100] {
		if m.Has(key) == false {
			t.Errorf("source lost key %v", key)
		}
	}
}

func TestOmapClear(t *testing.T) {
	m := New[int, int]("clear", Less[int], Defaultsettings())
	defer m.Destroy()

	for key := 0; key < 100; key++ {
		m.Insert(key, key)
	}
	m.Clear()
	if m.Count() != 0 || m.Empty() == false {
		t.Errorf("unexpected %v", m.Count())
	}
	m.Validate()

	// the map is reusable after Clear, recycling freed nodes.
	for key := 0; key < 100; key++ {
		m.Insert(key, key)
	}
	m.Validate()
	if m.Count() != 100 {
		t.Errorf("unexpected %v", m.Count())
	}
	if x := m.Stats()["n_frees"].(int64); x != 100 {
		t.Errorf("unexpected %v", x)
	}
}

func TestOmapRandom(t *testing.T) {
	m := New[int, int]("random", Less[int], Defaultsettings())
	defer m.Destroy()

	rnd := rand.New(rand.NewSource(101))
	ref := map[int]int{}
	for i := 0; i < 20000; i++ {
		key := rnd.Intn(2000)
		if rnd.Intn(3) == 0 {
			it := m.Find(key)
			if _, ok := ref[key]; ok {
				if err := m.Erase(it); err != nil {
					t.Fatalf("unexpected %v", err)
				}
				delete(ref, key)
			} else if it.Equal(m.End()) == false {
				t.Fatalf("phantom key %v", key)
			}
		} else {
			value := rnd.Intn(1000000)
			if _, created := m.Insert(key, value); created {
				ref[key] = value
			}
		}
		if i%1000 == 0 {
			m.Validate()
		}
	}
	m.Validate()

	if m.Count() != int64(len(ref)) {
		t.Fatalf("unexpected %v != %v", m.Count(), len(ref))
	}
	keys := make([]int, 0, len(ref))
	for key := range ref {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	mkeys := iterkeys(t, m)
	for i, key := range keys {
		if mkeys[i] != key {
			t.Fatalf("unexpected %v at %v", mkeys[i], i)
		}
		if value, err := m.At(key); err != nil || *value != ref[key] {
			t.Fatalf("unexpected %v %v for %v", value, err, key)
		}
	}
	m.Log()
}

func BenchmarkOmapInsert(b *testing.B) {
	m := New[int, int]("bench", Less[int], Defaultsettings())
	defer m.Destroy()
	for i := 0; i < b.N; i++ {
		m.Insert(i, i)
	}
}

func BenchmarkOmapFind(b *testing.B) {
	m := New[int, int]("bench", Less[int], Defaultsettings())
	defer m.Destroy()
	for i := 0; i < 100000; i++ {
		m.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Find(i % 100000)
	}
}

func iterkeys(t *testing.T, m *Map[int, int]) []int {
	t.Helper()
	keys := []int{}
	for it := m.Begin(); it.Equal(m.End()) == false; {
		key, err := it.Key()
		if err != nil {
			t.Fatalf("unexpected %v", err)
		}
		keys = append(keys, key)
		if err := it.Next(); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	return keys
}
