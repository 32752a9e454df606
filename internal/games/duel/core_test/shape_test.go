package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockduel/internal/games/duel/core"
)

func TestRotateClockwise(t *testing.T) {
	// T: .#.    #.
	//    ### -> ##
	//           #.
	got := core.ShapeOf(core.CellT).RotateClockwise()
	want := core.NewShape([][]bool{
		{true, false},
		{true, true},
		{true, false},
	})
	assert.True(t, got.Equal(want), "got %v", got.Matrix())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, pt := range core.PieceTypes {
		s := core.ShapeOf(pt)
		r := s
		for range 4 {
			r = r.RotateClockwise()
		}
		assert.True(t, s.Equal(r), "piece %s", pt)
	}
}

func TestRotateDoesNotMutate(t *testing.T) {
	s := core.ShapeOf(core.CellL)
	before := s.Matrix()
	_ = s.RotateClockwise()
	assert.Equal(t, before, s.Matrix())
}

func TestOrientationCounts(t *testing.T) {
	expected := map[core.Cell]int{
		core.CellO: 1,
		core.CellI: 2,
		core.CellS: 2,
		core.CellZ: 2,
		core.CellL: 4,
		core.CellJ: 4,
		core.CellT: 4,
	}

	for pt, want := range expected {
		seen := []core.Shape{}
		s := core.ShapeOf(pt)
		for range 4 {
			dup := false
			for _, o := range seen {
				if o.Equal(s) {
					dup = true
					break
				}
			}
			if !dup {
				seen = append(seen, s)
			}
			s = s.RotateClockwise()
		}
		assert.Len(t, seen, want, "piece %s", pt)
	}
}

func TestShapeFilledOutOfRange(t *testing.T) {
	s := core.ShapeOf(core.CellO)
	assert.False(t, s.Filled(-1, 0))
	assert.False(t, s.Filled(0, 2))
	assert.True(t, s.Filled(1, 1))
}

func TestCollides(t *testing.T) {
	b := boardFromRows("X.........")
	o := core.NewPiece(core.CellO)

	testCases := []struct {
		name string
		x, y int
		want bool
	}{
		{"spawn", core.SpawnColumn, 0, false},
		{"above top", 4, -2, false},
		{"left wall", -1, 5, true},
		{"right wall", core.Cols - 1, 5, true},
		{"floor", 4, core.Rows - 1, true},
		{"resting", 0, core.Rows - 3, false},
		{"overlap", 0, core.Rows - 2, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := o
			p.X, p.Y = tc.x, tc.y
			assert.Equal(t, tc.want, core.Collides(p, &b))
		})
	}
}

func TestNewPieceSpawn(t *testing.T) {
	p := core.NewPiece(core.CellI)
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Len(t, p.Cells(), 4)
}
