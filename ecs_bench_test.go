package retsu

import (
	"testing"
)

// Table Creation Benchmarks
func BenchmarkCreateTable(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				_ = NewTable(size)
			}
			b.ReportAllocs()
		})
	}
}

// Expansion Benchmarks
func BenchmarkAutoExpand(b *testing.B) {
	for _, initSize := range benchSizes {
		b.Run(sizeName(initSize)+"_init_x2", func(b *testing.B) {
			targetEntities := initSize * 2
			for b.Loop() {
				b.StopTimer()
				tbl := NewTable(initSize)
				builder := NewBuilder[Position](tbl)
				b.StartTimer()
				for range targetEntities {
					builder.NewEntity(Position{})
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkTableCreateEntity(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				tbl := NewTable(size)
				b.StartTimer()
				for range size {
					tbl.CreateEntity()
				}
			}
			b.ReportAllocs()
		})
	}
}

// Builder Benchmarks
func BenchmarkBuilderNewEntity(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				tbl := NewTable(size)
				builder := NewBuilder[Position](tbl)
				b.StartTimer()
				for range size {
					builder.NewEntity(Position{X: 1})
				}
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkBuilderNewEntitiesWithValueSet2(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				tbl := NewTable(size)
				builder := NewBuilder2[Position, Velocity](tbl)
				b.StartTimer()
				builder.NewEntitiesWithValueSet(size, Position{X: 1}, Velocity{VX: 1})
			}
			b.ReportAllocs()
		})
	}
}

func BenchmarkInsertPlanSpawn(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			m := mover{Pos: Position{X: 1}, Vel: Velocity{VX: 1}}
			for b.Loop() {
				b.StopTimer()
				tbl := NewTable(size)
				plan := CompileInsert[mover](tbl)
				b.StartTimer()
				for range size {
					plan.Spawn(m)
				}
			}
			b.ReportAllocs()
		})
	}
}

// Access Benchmarks
func BenchmarkFunctionsGet(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := NewTable(size)
			NewBuilder2[Position, Velocity](tbl).NewEntities(size)
			b.ReportAllocs()
			for b.Loop() {
				for e := range Entity(size) {
					GetMut[Position](tbl, e).X++
				}
			}
		})
	}
}

func BenchmarkTokenGet(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := NewTable(size)
			NewBuilder2[Position, Velocity](tbl).NewEntities(size)
			pos := Register[Position](tbl.Registry())
			b.ReportAllocs()
			for b.Loop() {
				for e := range Entity(size) {
					pos.GetMut(tbl, e).X++
				}
			}
		})
	}
}

// Migration keeps per-row entity lists sorted, so sizes stay small.
func BenchmarkFunctionsInsertNew(b *testing.B) {
	for _, size := range benchSizes[:2] {
		b.Run(sizeName(size), func(b *testing.B) {
			for b.Loop() {
				b.StopTimer()
				tbl := NewTable(size)
				NewBuilder[Position](tbl).NewEntities(size)
				b.StartTimer()
				for e := range Entity(size) {
					Insert(tbl, e, Velocity{VX: 1})
				}
			}
			b.ReportAllocs()
		})
	}
}

// Iteration Benchmarks
func BenchmarkFilterIterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := NewTable(size)
			NewBuilder[Position](tbl).NewEntities(size)
			query := NewFilter[Position](tbl)
			b.ReportAllocs()
			for b.Loop() {
				query.Reset()
				for query.Next() {
					query.Get().X++
				}
			}
		})
	}
}

func BenchmarkFilter2Iterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := NewTable(size)
			NewBuilder2[Position, Velocity](tbl).NewEntities(size)
			query := NewFilter2[Position, Velocity](tbl)
			b.ReportAllocs()
			for b.Loop() {
				query.Reset()
				for query.Next() {
					p, v := query.Get()
					p.X += v.VX
				}
			}
		})
	}
}

func BenchmarkFilter5Iterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := NewTable(size)
			NewBuilder5[Position, Velocity, Health, compA, compB](tbl).NewEntities(size)
			query := NewFilter5[Position, Velocity, Health, compA, compB](tbl)
			b.ReportAllocs()
			for b.Loop() {
				query.Reset()
				for query.Next() {
					p, v, h, a, c := query.Get()
					p.X += v.VX
					h.Current += a.V + c.V
				}
			}
		})
	}
}

func BenchmarkViewIterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := NewTable(size)
			NewBuilder2[compA, compB](tbl).NewEntities(size / 2)
			NewBuilder3[compA, compB, compC](tbl).NewEntities(size / 2)
			view := NewView[abShape, pair](tbl)
			b.ReportAllocs()
			for b.Loop() {
				for p := range view.Iter() {
					p.A.V += p.B.V
				}
			}
		})
	}
}

func BenchmarkFilterEntities(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(sizeName(size), func(b *testing.B) {
			tbl := NewTable(size)
			NewBuilder[Position](tbl).NewEntities(size)
			query := NewFilter[Position](tbl)
			b.ReportAllocs()
			for b.Loop() {
				_ = query.Entities()
			}
		})
	}
}
