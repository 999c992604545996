package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridTactics/internal/tactics/core"
)

func TestRoster_PlaceAndLookup(t *testing.T) {
	r := NewRoster()
	alm := NewUnit("Alm", TeamPlayer, 5, nil)
	at := core.NewCoordinate(1, 2)

	require.NoError(t, r.Place(alm, at))

	assert.Equal(t, at, alm.Position)
	assert.Same(t, alm, r.UnitAt(at))
	assert.Equal(t, alm, r.OccupantAt(at))
	got, ok := r.Get(alm.ID)
	assert.True(t, ok)
	assert.Same(t, alm, got)
	assert.Equal(t, 1, r.Len())
}

func TestRoster_EmptyTileHasUntypedNilOccupant(t *testing.T) {
	r := NewRoster()

	occ := r.OccupantAt(core.NewCoordinate(0, 0))

	// a typed nil inside the interface would make empty tiles look occupied
	assert.True(t, occ == nil)
	assert.Nil(t, r.UnitAt(core.NewCoordinate(0, 0)))
}

func TestRoster_PlaceErrors(t *testing.T) {
	r := NewRoster()
	a := NewUnit("A", TeamPlayer, 5, nil)
	b := NewUnit("B", TeamEnemy, 5, nil)
	c := core.NewCoordinate(0, 0)
	require.NoError(t, r.Place(a, c))

	err := r.Place(b, c)
	assert.ErrorIs(t, err, core.ErrTileOccupied)

	err = r.Place(a, core.NewCoordinate(1, 0))
	assert.Error(t, err)
	assert.Equal(t, c, a.Position)
}

func TestRoster_Move(t *testing.T) {
	r := NewRoster()
	a := NewUnit("A", TeamPlayer, 5, nil)
	b := NewUnit("B", TeamEnemy, 5, nil)
	from, to := core.NewCoordinate(0, 0), core.NewCoordinate(2, 0)
	require.NoError(t, r.Place(a, from))
	require.NoError(t, r.Place(b, core.NewCoordinate(3, 0)))

	require.NoError(t, r.Move(a, to))
	assert.Nil(t, r.UnitAt(from))
	assert.Same(t, a, r.UnitAt(to))

	require.NoError(t, r.Move(a, to), "moving in place is a no-op")

	err := r.Move(a, b.Position)
	assert.ErrorIs(t, err, core.ErrTileOccupied)
	assert.Equal(t, to, a.Position)

	stranger := NewUnit("C", TeamEnemy, 5, nil)
	assert.Error(t, r.Move(stranger, from))
}

func TestRoster_Remove(t *testing.T) {
	r := NewRoster()
	a := NewUnit("A", TeamPlayer, 5, nil)
	b := NewUnit("B", TeamPlayer, 5, nil)
	require.NoError(t, r.Place(a, core.NewCoordinate(0, 0)))
	require.NoError(t, r.Place(b, core.NewCoordinate(1, 0)))

	r.Remove(a)
	r.Remove(a)

	assert.Equal(t, []*Unit{b}, r.Units())
	assert.Nil(t, r.OccupantAt(core.NewCoordinate(0, 0)))
	_, ok := r.Get(a.ID)
	assert.False(t, ok)
}

func TestRoster_Teams(t *testing.T) {
	r := NewRoster()
	p1 := NewUnit("P1", TeamPlayer, 5, nil)
	e1 := NewUnit("E1", TeamEnemy, 5, nil)
	p2 := NewUnit("P2", TeamPlayer, 5, nil)
	for i, u := range []*Unit{p1, e1, p2} {
		require.NoError(t, r.Place(u, core.NewCoordinate(i, 0)))
		u.HasActed = true
	}

	assert.Equal(t, []*Unit{p1, p2}, r.TeamUnits(TeamPlayer))
	assert.Equal(t, []*Unit{e1}, r.TeamUnits(TeamEnemy))

	r.ResetActed(TeamPlayer)

	assert.False(t, p1.HasActed)
	assert.False(t, p2.HasActed)
	assert.True(t, e1.HasActed)
}

func TestRoster_UnitsIsACopy(t *testing.T) {
	r := NewRoster()
	a := NewUnit("A", TeamPlayer, 5, nil)
	require.NoError(t, r.Place(a, core.NewCoordinate(0, 0)))

	list := r.Units()
	list[0] = nil

	assert.Same(t, a, r.Units()[0])
}
