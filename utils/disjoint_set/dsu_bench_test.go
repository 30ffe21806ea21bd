package disjoint_set

import (
	"math/rand"
	"testing"
)

func BenchmarkUnionFind(b *testing.B) {
	const count = 1 << 14
	elements := make([]int, count)
	for i := range elements {
		elements[i] = i
	}
	rng := rand.New(rand.NewSource(1))
	pairs := make([][2]int, count)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(count), rng.Intn(count)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set := MakeSet(elements)
		for _, p := range pairs {
			if err := Union(set[p[0]], set[p[1]]); err != nil {
				b.Fatal(err)
			}
		}
		for _, n := range set {
			Find(n)
		}
	}
}
