package model

import "container/heap"

// symbol is one element of a word's doubly-linked chain of pieces, stored in
// a dense array and linked by index rather than pointer (spec §9 design
// notes: this keeps the whole chain in one allocation and makes "has this
// position already been merged away" a cheap len==0 check instead of a nil
// check threaded through pointer updates).
type symbol struct {
	id   int // vocabulary id, -1 until resolved
	text string
	len  int // byte length of the symbol's span of the split's text in its current (possibly byte-level-encoded) encoding; prefix/suffix or hex decoration of text is not counted
	prev int // index into the owning word's symbols, -1 if none
	next int // index into the owning word's symbols, -1 if none
}

// word is a BPE working sequence: a chain of symbols threaded through a
// dense array via prev/next indices, mutated in place as merges fire.
type word struct {
	symbols []symbol
}

// newWord builds the initial one-symbol-per-rune chain for text, with
// byte-length bookkeeping so downstream offset math is byte-exact regardless
// of whether ByteLevel pre-tokenization already ran.
func newWord(text string) *word {
	runes := []rune(text)
	w := &word{symbols: make([]symbol, 0, len(runes))}
	b := 0
	for i, r := range runes {
		s := string(r)
		prev, next := i-1, i+1
		if next >= len(runes) {
			next = -1
		}
		w.symbols = append(w.symbols, symbol{id: -1, text: s, len: len(s), prev: prev, next: next})
		b += len(s)
	}
	return w
}

// pairKey identifies a candidate merge by the vocabulary ids of its two
// symbols. BPE merge ranks are defined over ids, not text, so lookups stay
// O(1) regardless of piece length.
type pairKey struct {
	left, right int
}

type mergeRule struct {
	rank     int
	resultID int
	result   string
}

// mergeNode is one candidate merge sitting in the priority queue: the pair at
// a particular position in the chain, plus enough context (pos for
// stable tie-breaking, the result string/id) to apply it later even after
// other merges have shifted neighbors around it.
type mergeNode struct {
	pos       int // index of the left symbol in word.symbols at enqueue time
	rightPos  int // index of the right symbol at enqueue time
	rank      int
	resultID  int
	result    string
	heapIndex int
}

type mergeQueue []*mergeNode

func (q mergeQueue) Len() int { return len(q) }
func (q mergeQueue) Less(i, j int) bool {
	if q[i].rank != q[j].rank {
		return q[i].rank < q[j].rank
	}
	return q[i].pos < q[j].pos
}
func (q mergeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIndex, q[j].heapIndex = i, j
}
func (q *mergeQueue) Push(x interface{}) {
	n := *q
	node := x.(*mergeNode)
	node.heapIndex = len(n)
	*q = append(n, node)
}
func (q *mergeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.heapIndex = -1
	*q = old[:n-1]
	return node
}

// mergeAll runs the full BPE merge loop over w in place, consulting merges
// for candidate pair ranks. dropout, when non-zero, stochastically skips a
// sampled fraction of otherwise-applicable merges; skipped candidates are
// held in a side list and drained back into the queue before the next merge
// actually fires, matching the reference tokenizer's dropout semantics
// (spec §4.5: dropout must not bias which merges are *possible*, only which
// are applied on a given call).
func mergeAll(w *word, merges map[pairKey]mergeRule, dropout float64, rng func() float64) {
	pq := &mergeQueue{}
	heap.Init(pq)

	tryEnqueue := func(pos int) {
		s := &w.symbols[pos]
		if s.next == -1 || s.len == 0 {
			return
		}
		next := &w.symbols[s.next]
		rule, ok := merges[pairKey{left: s.id, right: next.id}]
		if !ok {
			return
		}
		heap.Push(pq, &mergeNode{pos: pos, rightPos: s.next, rank: rule.rank, resultID: rule.resultID, result: rule.result})
	}

	for i := range w.symbols {
		tryEnqueue(i)
	}

	var skip []*mergeNode
	for pq.Len() > 0 {
		top := heap.Pop(pq).(*mergeNode)

		left, right := &w.symbols[top.pos], &w.symbols[top.rightPos]
		if left.len == 0 || right.len == 0 || left.next != top.rightPos {
			continue // one side already merged away or chain shifted under us
		}

		if dropout > 0 && rng() < dropout {
			skip = append(skip, top)
			continue
		}
		for _, n := range skip {
			heap.Push(pq, n)
		}
		skip = skip[:0]

		// Apply the merge: fold right into left, splice right out of the chain.
		left.text = top.result
		left.len = left.len + right.len
		left.id = top.resultID
		left.next = right.next
		if right.next != -1 {
			w.symbols[right.next].prev = top.pos
		}
		right.len = 0
		right.text = ""

		if left.prev != -1 {
			tryEnqueue(left.prev)
		}
		tryEnqueue(top.pos)
	}
}

// flatten walks the chain from its head, returning the live symbols in
// order. A merged-away symbol is spliced out of the next/prev links when it
// dies, so this walk never visits one; index 0 is always the head since
// mergeAll only ever folds a right neighbor into its left.
func (w *word) flatten() []symbol {
	if len(w.symbols) == 0 {
		return nil
	}
	out := make([]symbol, 0, len(w.symbols))
	for i := 0; i != -1; i = w.symbols[i].next {
		out = append(out, w.symbols[i])
	}
	return out
}
