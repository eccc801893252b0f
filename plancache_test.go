package retsu

import (
	"reflect"
	"testing"
)

func TestPlanCache(t *testing.T) {
	type planA struct{ n int }
	type planB struct{ n int }

	t.Run("Build once", func(t *testing.T) {
		c := &planCache{}
		builds := 0
		build := func() *planA {
			builds++
			return &planA{n: builds}
		}
		p1 := cachedPlan(c, build)
		p2 := cachedPlan(c, build)
		if p1 != p2 {
			t.Errorf("expected same pointer %p, got %p", p1, p2)
		}
		if builds != 1 {
			t.Errorf("expected 1 build, got %d", builds)
		}
	})

	t.Run("Keyed by type", func(t *testing.T) {
		c := &planCache{}
		a := cachedPlan(c, func() *planA { return &planA{n: 1} })
		b := cachedPlan(c, func() *planB { return &planB{n: 2} })
		if a.n != 1 || b.n != 2 {
			t.Errorf("expected 1 and 2, got %d and %d", a.n, b.n)
		}
		if c.Len() != 2 {
			t.Errorf("expected 2 plans, got %d", c.Len())
		}
	})

	t.Run("Zero value usable", func(t *testing.T) {
		var c planCache
		if c.Len() != 0 {
			t.Error("expected empty")
		}
		cachedPlan(&c, func() planA { return planA{} })
		if c.Len() != 1 {
			t.Error("expected one plan")
		}
	})

	t.Run("Distinct views per shape", func(t *testing.T) {
		tbl := NewTable(0)
		Iterate[Read[compA], *compA](tbl)
		Iterate[Write[compA], *compA](tbl)
		Iterate[Read[compA], *compA](tbl)
		if tbl.plans.Len() != 2 {
			t.Errorf("expected 2 plans, got %d", tbl.plans.Len())
		}
		if n := tbl.Registry().NumViews(); n != 1 {
			t.Errorf("expected both shapes to share one view type, got %d", n)
		}
	})
}

// generateDistinctTypes builds n distinct array types.
func generateDistinctTypes(n int) []reflect.Type {
	types := make([]reflect.Type, n)
	for i := range n {
		types[i] = reflect.ArrayOf(i, reflect.TypeFor[byte]())
	}
	return types
}

func BenchmarkPlanCacheHit(b *testing.B) {
	tbl := NewTable(0)
	NewBuilder[compA](tbl).NewEntities(10)
	b.ReportAllocs()
	for b.Loop() {
		Iterate[Read[compA], *compA](tbl)
	}
}

func BenchmarkRegisterColumn(b *testing.B) {
	types := generateDistinctTypes(MaxColumnTypes)
	b.ReportAllocs()
	for b.Loop() {
		r := NewRegistry(nil)
		for _, t := range types {
			r.RegisterColumn(t)
		}
	}
}
