package dag

import "container/heap"

// mergeHead is one cursor into a sorted input list.
type mergeHead struct {
	value int
	list  int
	index int
}

type mergeHeap []mergeHead

func (h mergeHeap) Len() int            { return len(h) }
func (h mergeHeap) Less(i, j int) bool  { return h[i].value < h[j].value }
func (h mergeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *mergeHeap) Push(x interface{}) { *h = append(*h, x.(mergeHead)) }
func (h *mergeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// mergeUnique merges sorted int lists into one sorted list without
// duplicates. Predecessor and successor sets stay sorted at every step, so
// rebuilding them is a k-way merge rather than a sort.
func mergeUnique(lists ...[]int) []int {
	h := make(mergeHeap, 0, len(lists))
	total := 0
	for i, l := range lists {
		total += len(l)
		if len(l) > 0 {
			h = append(h, mergeHead{value: l[0], list: i, index: 0})
		}
	}
	heap.Init(&h)

	out := make([]int, 0, total)
	for h.Len() > 0 {
		head := h[0]
		if len(out) == 0 || out[len(out)-1] != head.value {
			out = append(out, head.value)
		}
		next := head.index + 1
		if next < len(lists[head.list]) {
			h[0] = mergeHead{value: lists[head.list][next], list: head.list, index: next}
			heap.Fix(&h, 0)
		} else {
			heap.Pop(&h)
		}
	}
	return out
}
