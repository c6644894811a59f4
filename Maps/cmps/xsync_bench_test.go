package cmps

import (
	"sync/atomic"
	"testing"

	"github.com/puzpuzpuz/xsync/v3"
)

func fillXSyncMap(b *testing.B, keyRange uint) *xsync.MapOf[string, uint] {
	b.Helper()
	m := xsync.NewMapOf[string, uint]()
	for i := range keyRange {
		m.Store(keys[i], i)
	}
	return m
}
func BenchmarkXSyncMap_Load_Balanced(b *testing.B) {
	vp := fillXSyncMap(b, hits)
	var count atomic.Uintptr
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, sideEff = vp.Load(keys[(count.Add(1)-1)%(hits+misses)])
		}
	})
}
func BenchmarkXSyncMap_Delete_Churn(b *testing.B) {
	vp := fillXSyncMap(b, hits)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%hits]
		v, _ := vp.LoadAndDelete(k)
		vp.Store(k, v)
	}
}
