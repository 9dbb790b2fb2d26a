package combine_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/paramgrid/combine"
	"github.com/katalvlaran/paramgrid/param"
)

// BenchmarkWalk_Grid6x10 walks six fixed parameters of ten values each
// (10^6 combinations) and counts them.
//
// Complexity: O(10^6 · 6) bindings; prefixes are shared between results.
func BenchmarkWalk_Grid6x10(b *testing.B) {
	ps := make([]param.Param, 6)
	for i := range ps {
		ps[i] = param.Of(fmt.Sprintf("p%d", i), 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	}
	set := param.NewSet(ps...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for _, err := range combine.Walk(set) {
			if err != nil {
				b.Fatal(err)
			}
			n++
		}
		if n != 1_000_000 {
			b.Fatalf("count = %d; want 1000000", n)
		}
	}
}

// BenchmarkWalk_DependentChain measures a chain where every level depends on
// the previous one.
func BenchmarkWalk_DependentChain(b *testing.B) {
	ps := []param.Param{param.Of("p0", 0, 1, 2, 3)}
	for i := 1; i < 8; i++ {
		prev := fmt.Sprintf("p%d", i-1)
		ps = append(ps, param.Derive(fmt.Sprintf("p%d", i), func(r param.Result) []int {
			v, _ := param.Lookup[int](r, prev)
			return []int{v, v + 1}
		}))
	}
	set := param.NewSet(ps...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range combine.Walk(set) {
		}
	}
}
