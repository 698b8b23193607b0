package adder

// Nested sums the operands through a fixed binary reduction tree,
// 128 -> 64 -> 32 -> 16 -> 8 -> 4 -> 2, with one helper per level. The tree
// has no numerical purpose; it exists to stack seven small call frames per
// leaf pair and let the compiler decide whether to flatten them.
type Nested struct{}

// Name identifies the strategy in reports and metrics labels.
func (Nested) Name() string { return "nested" }

// Sum reduces the vector through direct calls.
func (Nested) Sum(v Vector) int64 { return sum128(v) }

func sum128(v []int64) int64 { return sum64(v[:64]) + sum64(v[64:]) }

func sum64(v []int64) int64 { return sum32(v[:32]) + sum32(v[32:]) }

func sum32(v []int64) int64 { return sum16(v[:16]) + sum16(v[16:]) }

func sum16(v []int64) int64 { return sum8(v[:8]) + sum8(v[8:]) }

func sum8(v []int64) int64 { return sum4(v[:4]) + sum4(v[4:]) }

func sum4(v []int64) int64 { return sum2(v[:2]) + sum2(v[2:]) }

func sum2(v []int64) int64 { return v[0] + v[1] }
