// Package fenwick implements a binary-indexed tree over a fixed number of
// symbol slots, supporting the prefix-sum, point-update, rank and rescaling
// operations the adaptive arithmetic coder needs from a cumulative-frequency
// table.
package fenwick

// Table is a binary-indexed tree over slots [0, Size). Every underlying
// count is expected to stay >= 1 by callers that rely on RankQuery finding
// every symbol; Table itself does not enforce that, only Scale's `| 1` step
// does.
type Table struct {
	size int
	tree []int64
}

// lowBit returns i's lowest set bit.
func lowBit(i int) int { return i & (-i) }

// New builds a Table from a length-S initial underlying array in O(S).
func New(initial []int64) *Table {
	t := &Table{size: len(initial), tree: make([]int64, len(initial)+1)}
	t.rebuild(initial)
	return t
}

// rebuild reconstructs the tree from a fresh underlying array in O(S).
func (t *Table) rebuild(vals []int64) {
	n := t.size
	for i := 1; i <= n; i++ {
		t.tree[i] = vals[i-1]
	}
	for i := 1; i <= n; i++ {
		j := i + lowBit(i)
		if j <= n {
			t.tree[j] += t.tree[i]
		}
	}
}

// Size returns the number of underlying slots.
func (t *Table) Size() int { return t.size }

// PrefixSum returns the cumulative sum of underlying[0..i) for i in
// [0, Size].
func (t *Table) PrefixSum(i int) int64 {
	var s int64
	for ; i > 0; i -= lowBit(i) {
		s += t.tree[i]
	}
	return s
}

// Add adds delta to underlying[i], i in [0, Size).
func (t *Table) Add(i int, delta int64) {
	for j := i + 1; j <= t.size; j += lowBit(j) {
		t.tree[j] += delta
	}
}

// Get returns underlying[i].
func (t *Table) Get(i int) int64 {
	return t.PrefixSum(i+1) - t.PrefixSum(i)
}

// Set assigns underlying[i] := v.
func (t *Table) Set(i int, v int64) {
	t.Add(i, v-t.Get(i))
}

// RangeSum returns PrefixSum(j) - PrefixSum(i).
func (t *Table) RangeSum(i, j int) int64 {
	return t.PrefixSum(j) - t.PrefixSum(i)
}

// RankQuery returns the smallest index i in [0, Size] such that
// PrefixSum(i+1) > v. v must be less than PrefixSum(Size).
func (t *Table) RankQuery(v int64) int {
	pos := 0
	for bit := highestPowerOfTwoLE(t.size); bit > 0; bit >>= 1 {
		next := pos + bit
		if next <= t.size && t.tree[next] <= v {
			v -= t.tree[next]
			pos = next
		}
	}
	return pos
}

// Scale snapshots the current counts, replaces each with (count/c)|1 so
// every slot stays nonzero, and rebuilds the tree.
func (t *Table) Scale(c int64) {
	vals := make([]int64, t.size)
	for i := 0; i < t.size; i++ {
		vals[i] = (t.Get(i)/c) | 1
	}
	t.rebuild(vals)
}
