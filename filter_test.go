package retsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// go test -run ^TestFilterMutation$ . -count 1
func TestFilterMutation(t *testing.T) {
	tbl := setupTable(t)
	NewBuilder2[Position, Velocity](tbl).NewEntitiesWithValueSet(2*ChunkSize+3, Position{}, Velocity{VX: 1, VY: 2})
	NewBuilder[Position](tbl).NewEntities(5)

	f := NewFilter2[Position, Velocity](tbl)
	for range 3 {
		f.Reset()
		for f.Next() {
			p, v := f.Get()
			p.X += v.VX
			p.Y += v.VY
		}
	}

	n := 0
	for _, p := range NewFilter[Position](tbl).All() {
		if n < 2*ChunkSize+3 {
			require.Equal(t, Position{X: 3, Y: 6}, *p)
		} else {
			require.Equal(t, Position{}, *p)
		}
		n++
	}
	assert.Equal(t, 2*ChunkSize+8, n)
}

// go test -run ^TestFilterDeclaredOrder$ . -count 1
func TestFilterDeclaredOrder(t *testing.T) {
	tbl := setupTable(t)
	NewBuilder3[compA, compB, compC](tbl).NewEntity(compA{V: 1}, compB{V: 2}, compC{V: 3})

	f := NewFilter3[compC, compA, compB](tbl)
	require.True(t, f.Next())
	c, a, b := f.Get()
	assert.Equal(t, 3, c.V)
	assert.Equal(t, 1, a.V)
	assert.Equal(t, 2, b.V)
	assert.False(t, f.Next())

	assert.Equal(t, f.ID(), NewFilter3[compA, compB, compC](tbl).ID())
	for _, acc := range f.Access() {
		assert.Equal(t, AccessWrite, acc.Access)
	}
}

// go test -run ^TestFilterAllRewinds$ . -count 1
func TestFilterAllRewinds(t *testing.T) {
	tbl := setupTable(t)
	want := []Entity{
		NewBuilder2[compA, compB](tbl).NewEntity(compA{V: 1}, compB{V: 1}),
		NewBuilder2[compA, compB](tbl).NewEntity(compA{V: 2}, compB{V: 2}),
	}

	f := NewFilter2[compA, compB](tbl)
	f.Next()
	var got []Entity
	for e, q := range f.All() {
		a, b := q.Get()
		assert.Equal(t, a.V, b.V)
		got = append(got, e)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 2, f.Count())
}

// go test -run ^TestFilterWide$ . -count 1
func TestFilterWide(t *testing.T) {
	tbl := setupTable(t)
	NewBuilder5[compA, compB, compC, Position, Velocity](tbl).NewEntitiesWithValueSet(
		4, compA{V: 1}, compB{V: 2}, compC{V: 3}, Position{X: 4}, Velocity{VX: 5})
	NewBuilder4[compA, compB, compC, Position](tbl).NewEntity(compA{V: 1}, compB{V: 2}, compC{V: 3}, Position{X: 4})

	f5 := NewFilter5[Velocity, Position, compC, compB, compA](tbl)
	n := 0
	for f5.Next() {
		v, p, c, b, a := f5.Get()
		assert.Equal(t, float32(15), v.VX+p.X+float32(c.V+b.V+a.V))
		n++
	}
	assert.Equal(t, 4, n)

	f4 := NewFilter4[compA, compB, compC, Position](tbl)
	assert.Equal(t, 5, f4.Count())
	for f4.Next() {
		a, b, c, p := f4.Get()
		assert.Equal(t, float32(10), p.X+float32(a.V+b.V+c.V))
	}
}

// go test -run ^TestFilterNew$ . -count 1
func TestFilterNew(t *testing.T) {
	t1 := setupTable(t)
	t2 := setupTable(t)
	NewBuilder[compA](t1).NewEntities(2)
	b := NewBuilder[compA](t1).New(t2)
	b.NewEntities(3)

	f1 := NewFilter[compA](t1)
	f2 := f1.New(t2)
	assert.Equal(t, 2, f1.Count())
	assert.Equal(t, 3, f2.Count())
}
