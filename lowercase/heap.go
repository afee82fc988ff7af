package lowercase

// lcItem is a (node, reweighted distance) pair stored in the priority
// queue. This mirrors the container/heap.Interface pattern used
// throughout the pack's own shortest-path code, generalized with an
// ascending-node-id tie-break so the traversal
// order (and therefore the emitted moat order) is deterministic.
type lcItem struct {
	id   int
	dist float64
}

// lcPQ is a min-heap of *lcItem ordered by dist ascending, with ties
// broken by id ascending.
type lcPQ []*lcItem

func (pq lcPQ) Len() int { return len(pq) }

func (pq lcPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq lcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *lcPQ) Push(x interface{}) { *pq = append(*pq, x.(*lcItem)) }

func (pq *lcPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
