package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbours4(t *testing.T) {
	got := Neighbours4(Coord{2, 3})
	want := [4]Coord{{3, 3}, {1, 3}, {2, 4}, {2, 2}}
	assert.Equal(t, want, got)
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		p, q Coord
		want int
	}{
		{Coord{0, 0}, Coord{0, 0}, 0},
		{Coord{0, 0}, Coord{1, 0}, 1},
		{Coord{-2, 3}, Coord{1, -1}, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Manhattan(tc.p, tc.q))
	}
}

func TestInitialLine(t *testing.T) {
	c, err := InitialLine(4)
	require.NoError(t, err)
	assert.Equal(t, Conformation{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, c)
	assert.True(t, IsSelfAvoiding(c))

	_, err = InitialLine(1)
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestIsSelfAvoiding(t *testing.T) {
	cases := []struct {
		name string
		c    Conformation
		want bool
	}{
		{"line", Conformation{{0, 0}, {1, 0}, {2, 0}}, true},
		{"u-shape", Conformation{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, true},
		{"self-overlap", Conformation{{0, 0}, {1, 0}, {0, 0}}, false},
		{"broken connectivity", Conformation{{0, 0}, {2, 0}}, false},
		{"single residue", Conformation{{0, 0}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsSelfAvoiding(tc.c))
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := Conformation{{0, 0}, {1, 0}}
	cp := Clone(orig)
	cp[0] = Coord{9, 9}
	assert.Equal(t, Coord{0, 0}, orig[0])
}

func TestOccupancy(t *testing.T) {
	c := Conformation{{0, 0}, {1, 0}, {1, 1}}
	occ := Occupancy(c)
	require.Len(t, occ, 3)
	assert.Equal(t, 0, occ[Coord{0, 0}])
	assert.Equal(t, 2, occ[Coord{1, 1}])
}
