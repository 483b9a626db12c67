package pq

import "sort"
import "testing"
import "math/rand"

import "github.com/bnclabs/gocontainer/api"

var _ api.Container = (*Queue[int])(nil)

func TestPqEmpty(t *testing.T) {
	q := New[int]("empty", Less[int])

	if q.ID() != "empty" {
		t.Errorf("unexpected %v", q.ID())
	}
	if q.Count() != 0 || q.Empty() == false {
		t.Errorf("unexpected %v", q.Count())
	}
	if _, err := q.Top(); err != api.ErrorEmptyContainer {
		t.Errorf("unexpected %v", err)
	}
	if err := q.Pop(); err != api.ErrorEmptyContainer {
		t.Errorf("unexpected %v", err)
	}
	q.Validate()
}

func TestPqOrdering(t *testing.T) {
	q := New[int]("order", Less[int])

	rnd := rand.New(rand.NewSource(17))
	values := []int{}
	for i := 0; i < 2000; i++ {
		value := rnd.Intn(100000)
		q.Push(value)
		values = append(values, value)
		if i%100 == 0 {
			q.Validate()
		}
	}
	q.Validate()
	if q.Count() != int64(len(values)) {
		t.Errorf("unexpected %v", q.Count())
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	for _, value := range values {
		top, err := q.Top()
		if err != nil {
			t.Fatalf("unexpected %v", err)
		}
		if top != value {
			t.Fatalf("unexpected %v, expected %v", top, value)
		}
		if err := q.Pop(); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	if q.Empty() == false {
		t.Errorf("unexpected %v", q.Count())
	}
}

func TestPqReverseOrder(t *testing.T) {
	// with the order inverted the queue behaves as a min-heap.
	q := New[int]("minheap", func(a, b int) bool { return a > b })

	for _, value := range []int{5, 3, 8, 1, 4, 7, 9} {
		q.Push(value)
	}
	q.Validate()
	drained := []int{}
	for q.Empty() == false {
		value, _ := q.Top()
		drained = append(drained, value)
		q.Pop()
	}
	for i, value := range []int{1, 3, 4, 5, 7, 8, 9} {
		if drained[i] != value {
			t.Errorf("unexpected %v at %v", drained[i], i)
		}
	}
}

func TestPqMerge(t *testing.T) {
	q1 := New[int]("q1", Less[int])
	q2 := New[int]("q2", Less[int])

	rnd := rand.New(rand.NewSource(23))
	values := []int{}
	for i := 0; i < 1000; i++ {
		value := rnd.Intn(100000)
		values = append(values, value)
		if i%2 == 0 {
			q1.Push(value)
		} else {
			q2.Push(value)
		}
	}
	q1.Merge(q2)
	q1.Validate()
	q2.Validate()

	if q1.Count() != 1000 {
		t.Errorf("unexpected %v", q1.Count())
	}
	if q2.Count() != 0 || q2.Empty() == false {
		t.Errorf("unexpected %v", q2.Count())
	}
	if _, err := q2.Top(); err != api.ErrorEmptyContainer {
		t.Errorf("unexpected %v", err)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	for _, value := range values {
		top, _ := q1.Top()
		if top != value {
			t.Fatalf("unexpected %v, expected %v", top, value)
		}
		q1.Pop()
	}
}

func TestPqClone(t *testing.T) {
	q := New[int]("source", Less[int])
	for _, value := range []int{5, 3, 8, 1, 4} {
		q.Push(value)
	}
	newq := q.Clone("copy")
	newq.Validate()
	if newq.Count() != q.Count() {
		t.Errorf("unexpected %v", newq.Count())
	}

	// independent mutation of the copy leaves the source unchanged.
	newq.Pop()
	newq.Push(100)
	if top, _ := q.Top(); top != 8 {
		t.Errorf("unexpected %v", top)
	}
	if top, _ := newq.Top(); top != 100 {
		t.Errorf("unexpected %v", top)
	}
	q.Validate()
	if q.Logstring() == "" {
		t.Errorf("expected log line")
	}
}

func TestPqClear(t *testing.T) {
	q := New[int]("clear", Less[int])
	for value := 0; value < 100; value++ {
		q.Push(value)
	}
	q.Clear()
	if q.Count() != 0 || q.Empty() == false {
		t.Errorf("unexpected %v", q.Count())
	}
	q.Validate()
	q.Push(42)
	if top, _ := q.Top(); top != 42 {
		t.Errorf("unexpected %v", top)
	}
}

func BenchmarkPqPush(b *testing.B) {
	q := New[int]("bench", Less[int])
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
}

func BenchmarkPqPop(b *testing.B) {
	q := New[int]("bench", Less[int])
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Pop()
	}
}
