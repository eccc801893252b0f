package retsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortBundle declares two values but writes one.
type shortBundle struct{}

func (shortBundle) Declare(b *InsertBuilder) {
	Declare[compA](b)
	Declare[compB](b)
}

func (shortBundle) Write(c *InsertCursor) { Put(c, compA{}) }

// swappedBundle writes its values in the wrong order.
type swappedBundle struct{}

func (swappedBundle) Declare(b *InsertBuilder) {
	Declare[compA](b)
	Declare[compB](b)
}

func (swappedBundle) Write(c *InsertCursor) {
	Put(c, compB{})
	Put(c, compA{})
}

// longBundle writes more values than it declares.
type longBundle struct{}

func (longBundle) Declare(b *InsertBuilder) { Declare[compA](b) }

func (longBundle) Write(c *InsertCursor) {
	Put(c, compA{})
	Put(c, compA{})
}

type dupBundle struct{}

func (dupBundle) Declare(b *InsertBuilder) {
	Declare[compA](b)
	Declare[compA](b)
}

func (dupBundle) Write(*InsertCursor) {}

type emptyBundle struct{}

func (emptyBundle) Declare(*InsertBuilder) {}

func (emptyBundle) Write(*InsertCursor) {}

// go test -run ^TestInsertPlan$ . -count 1
func TestInsertPlan(t *testing.T) {
	tbl := setupTable(t)
	plan := CompileInsert[mover](tbl)

	rt := tbl.Registry().Row(plan.Row())
	require.Equal(t, 2, rt.Len())
	assert.True(t, rt.Has(Register[Position](tbl.Registry()).ID()))
	assert.True(t, rt.Has(Register[Velocity](tbl.Registry()).ID()))

	var es []Entity
	for i := range 5 {
		es = append(es, plan.Spawn(mover{Pos: Position{X: float32(i)}, Vel: Velocity{VY: float32(i)}}))
	}
	assert.Equal(t, es, tbl.RowEntities(plan.Row()))
	for i, e := range es {
		p, ok := Get[Position](tbl, e)
		require.True(t, ok)
		assert.Equal(t, float32(i), p.X)
		v, _ := Get[Velocity](tbl, e)
		assert.Equal(t, float32(i), v.VY)
	}
}

// go test -run ^TestInsertEmptyBundle$ . -count 1
func TestInsertEmptyBundle(t *testing.T) {
	tbl := setupTable(t)
	e := Spawn(tbl, emptyBundle{})
	row, _ := tbl.RowOf(e)
	assert.Equal(t, row, tbl.Registry().RegisterRow(nil))
	assert.Equal(t, []Entity{e}, tbl.RowEntities(row))
}

// go test -run ^TestInsertMisuse$ . -count 1
func TestInsertMisuse(t *testing.T) {
	tbl := setupTable(t)

	assert.PanicsWithValue(t, "ecs: bundle wrote 1 of 2 declared values", func() {
		Spawn(tbl, shortBundle{})
	})
	assert.Panics(t, func() { Spawn(tbl, swappedBundle{}) })
	assert.Panics(t, func() { Spawn(tbl, longBundle{}) })
	assert.Panics(t, func() { CompileInsert[dupBundle](tbl) })
	assert.Panics(t, func() { NewBuilder3[compA, compB, compA](tbl) })

	assert.Zero(t, tbl.Len(), "a failed spawn records no entity")
}
