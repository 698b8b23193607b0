package adder

// reducer mirrors the nested halving helpers behind a single polymorphic
// capability: every level of the reduction tree is reached through an
// interface method.
type reducer interface {
	half128(v []int64) int64
	half64(v []int64) int64
	half32(v []int64) int64
	half16(v []int64) int64
	half8(v []int64) int64
	half4(v []int64) int64
	half2(v []int64) int64
}

// treeReducer is the sole reducer implementation. Each level calls the next
// through the next field rather than directly; the field is assigned at
// construction time, which keeps every hop a genuine indirect call instead of
// one the compiler can resolve statically.
type treeReducer struct {
	next reducer
}

func (r *treeReducer) half128(v []int64) int64 { return r.next.half64(v[:64]) + r.next.half64(v[64:]) }

func (r *treeReducer) half64(v []int64) int64 { return r.next.half32(v[:32]) + r.next.half32(v[32:]) }

func (r *treeReducer) half32(v []int64) int64 { return r.next.half16(v[:16]) + r.next.half16(v[16:]) }

func (r *treeReducer) half16(v []int64) int64 { return r.next.half8(v[:8]) + r.next.half8(v[8:]) }

func (r *treeReducer) half8(v []int64) int64 { return r.next.half4(v[:4]) + r.next.half4(v[4:]) }

func (r *treeReducer) half4(v []int64) int64 { return r.next.half2(v[:2]) + r.next.half2(v[2:]) }

func (r *treeReducer) half2(v []int64) int64 { return v[0] + v[1] }

// Dispatch sums through the same reduction tree as Nested, but resolves every
// halving step through an interface lookup.
type Dispatch struct {
	root reducer
}

// NewDispatch builds a Dispatch whose reducer points back at itself.
func NewDispatch() *Dispatch {
	r := &treeReducer{}
	r.next = r
	return &Dispatch{root: r}
}

// Name identifies the strategy in reports and metrics labels.
func (*Dispatch) Name() string { return "dispatch" }

// Sum reduces the vector through indirect calls.
func (d *Dispatch) Sum(v Vector) int64 { return d.root.half128(v) }
