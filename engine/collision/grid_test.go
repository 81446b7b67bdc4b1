package collision

import (
	"math/rand"
	"testing"

	"github.com/1siamBot/shmup-engine/engine/core"
)

func gridEntity(id core.EntityID, x, y, halfW, halfH float64) *core.Entity {
	return &core.Entity{
		ID: id, X: x, Y: y, HalfW: halfW, HalfH: halfH,
		Role: core.RoleEnemy, Active: true,
	}
}

func contains(list []*core.Entity, e *core.Entity) bool {
	for _, c := range list {
		if c == e {
			return true
		}
	}
	return false
}

func TestGridQueryFindsNeighbor(t *testing.T) {
	g := NewGrid(600, 800, CellSize)
	a := gridEntity(1, 100, 100, 8, 8)
	b := gridEntity(2, 110, 104, 8, 8)
	far := gridEntity(3, 500, 700, 8, 8)
	g.Rebuild([]*core.Entity{a, b, far})

	got := g.Query(a, core.RoleEnemy, nil)
	if !contains(got, b) {
		t.Error("expected neighbor in query result")
	}
	if contains(got, far) {
		t.Error("distant entity returned")
	}
	if contains(got, a) {
		t.Error("query returned the query entity itself")
	}
}

func TestGridBoundaryStraddlerInAllCells(t *testing.T) {
	g := NewGrid(600, 800, CellSize)
	// Centered exactly on a cell corner: overlaps four cells.
	straddler := gridEntity(1, CellSize, CellSize, 10, 10)
	corners := []*core.Entity{
		gridEntity(2, CellSize-20, CellSize-20, 4, 4),
		gridEntity(3, CellSize+20, CellSize-20, 4, 4),
		gridEntity(4, CellSize-20, CellSize+20, 4, 4),
		gridEntity(5, CellSize+20, CellSize+20, 4, 4),
	}
	all := append([]*core.Entity{straddler}, corners...)
	g.Rebuild(all)

	for _, c := range corners {
		if got := g.Query(c, core.RoleEnemy, nil); !contains(got, straddler) {
			t.Errorf("straddler missing from query at (%.0f,%.0f)", c.X, c.Y)
		}
	}
}

func TestGridQueryDeduplicatesMultiCellEntities(t *testing.T) {
	g := NewGrid(600, 800, CellSize)
	// Big enough to cover many cells around the query entity.
	big := gridEntity(1, 200, 200, 150, 150)
	q := gridEntity(2, 200, 200, 100, 100)
	g.Rebuild([]*core.Entity{big, q})

	got := g.Query(q, core.RoleEnemy, nil)
	n := 0
	for _, c := range got {
		if c == big {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("multi-cell entity appeared %d times in one query", n)
	}
}

func TestGridRoleFilter(t *testing.T) {
	g := NewGrid(600, 800, CellSize)
	q := gridEntity(1, 100, 100, 8, 8)
	enemy := gridEntity(2, 104, 100, 8, 8)
	bullet := gridEntity(3, 100, 104, 2, 5)
	bullet.Role = core.RolePlayerBullet
	g.Rebuild([]*core.Entity{q, enemy, bullet})

	got := g.Query(q, core.RolePlayerBullet, nil)
	if !contains(got, bullet) || contains(got, enemy) {
		t.Errorf("role filter failed: got %d candidates", len(got))
	}
}

func TestGridSkipsInactive(t *testing.T) {
	g := NewGrid(600, 800, CellSize)
	q := gridEntity(1, 100, 100, 8, 8)
	dead := gridEntity(2, 104, 100, 8, 8)
	g.Rebuild([]*core.Entity{q, dead})

	dead.Active = false
	if got := g.Query(q, core.RoleEnemy, nil); contains(got, dead) {
		t.Error("inactive entity participated in a query")
	}
}

func TestGridRebuildDiscardsPreviousFrame(t *testing.T) {
	g := NewGrid(600, 800, CellSize)
	a := gridEntity(1, 100, 100, 8, 8)
	b := gridEntity(2, 104, 100, 8, 8)
	g.Rebuild([]*core.Entity{a, b})
	g.Rebuild([]*core.Entity{a})

	if got := g.Query(a, core.RoleEnemy, nil); len(got) != 0 {
		t.Fatalf("stale entity survived rebuild: %d candidates", len(got))
	}
}

func TestGridClampsOutOfRangePositions(t *testing.T) {
	g := NewGrid(600, 800, CellSize)
	outside := gridEntity(1, -40, -40, 8, 8)
	corner := gridEntity(2, 10, 10, 30, 30)
	g.Rebuild([]*core.Entity{outside, corner})

	if got := g.Query(corner, core.RoleEnemy, nil); !contains(got, outside) {
		t.Error("entity beyond the grid edge not clamped into the edge cell")
	}
}

// Grid completeness: for every pair whose boxes intersect, each must be a
// candidate of the other, including boundary straddlers.
func TestGridCompleteness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := NewGrid(600, 800, CellSize)

	var entities []*core.Entity
	for i := 0; i < 120; i++ {
		entities = append(entities, gridEntity(
			core.EntityID(i+1),
			rng.Float64()*600,
			rng.Float64()*800,
			2+rng.Float64()*30,
			2+rng.Float64()*30,
		))
	}
	g.Rebuild(entities)

	for i, a := range entities {
		got := g.Query(a, core.RoleEnemy, nil)
		for j, b := range entities {
			if i == j || !BoxOverlap(a, b) {
				continue
			}
			if !contains(got, b) {
				t.Fatalf("overlapping pair missed: %d at (%.1f,%.1f) vs %d at (%.1f,%.1f)",
					a.ID, a.X, a.Y, b.ID, b.X, b.Y)
			}
		}
	}
}
