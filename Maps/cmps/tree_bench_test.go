package cmps

import (
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Ordered containers answer the same queries in O(log n); they're here as the baseline a hashmap has to beat.

type kv struct {
	k string
	v uint
}

func (u kv) Less(than llrb.Item) bool {
	return u.k < than.(kv).k
}

func lessKV(a, b kv) bool {
	return a.k < b.k
}

func fillBTree(b *testing.B, keyRange uint) *btree.BTreeG[kv] {
	b.Helper()
	m := btree.NewG[kv](32, lessKV)
	for i := range keyRange {
		m.ReplaceOrInsert(kv{keys[i], i})
	}
	return m
}
func BenchmarkBTree_Load_Balanced(b *testing.B) {
	vp := fillBTree(b, hits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = vp.Get(kv{k: keys[i%(hits+misses)]})
	}
}
func BenchmarkBTree_Delete_Churn(b *testing.B) {
	vp := fillBTree(b, hits)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		old, _ := vp.Delete(kv{k: keys[i%hits]})
		vp.ReplaceOrInsert(old)
	}
}

func fillLLRB(b *testing.B, keyRange uint) *llrb.LLRB {
	b.Helper()
	m := llrb.New()
	for i := range keyRange {
		m.ReplaceOrInsert(kv{keys[i], i})
	}
	return m
}
func BenchmarkLLRB_Load_Balanced(b *testing.B) {
	vp := fillLLRB(b, hits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = vp.Get(kv{k: keys[i%(hits+misses)]}) != nil
	}
}
func BenchmarkLLRB_Delete_Churn(b *testing.B) {
	vp := fillLLRB(b, hits)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vp.ReplaceOrInsert(vp.Delete(kv{k: keys[i%hits]}))
	}
}
