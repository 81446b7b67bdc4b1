package collision

import (
	"math"

	"github.com/1siamBot/shmup-engine/engine/core"
)

// CellSize is the grid cell edge in world units. Fixed, not computed from
// content; sized so a typical entity spans at most 1-2 cells (~2x the
// largest half-extent in the game).
const CellSize = 64.0

// Grid is a uniform spatial grid for broad-phase queries. It is rebuilt
// destructively every frame from the current entity snapshot; no state
// survives across frames. Cell slices keep their capacity between
// rebuilds to avoid per-frame allocation.
type Grid struct {
	cellSize    float64
	invCellSize float64
	cols, rows  int
	cells       [][]*core.Entity

	// Per-query generation stamps deduplicate entities that occupy
	// several of the queried cells.
	seen     map[core.EntityID]uint64
	queryGen uint64
}

// NewGrid creates a grid covering the given world dimensions.
func NewGrid(worldW, worldH, cellSize float64) *Grid {
	cols := int(math.Ceil(worldW / cellSize))
	rows := int(math.Ceil(worldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([][]*core.Entity, cols*rows),
		seen:        make(map[core.EntityID]uint64),
	}
}

// Rebuild clears all buckets and reinserts every active entity. An entity
// whose bounds straddle a cell boundary is inserted into every cell it
// overlaps so boundary-straddling collisions are never missed.
func (g *Grid) Rebuild(entities []*core.Entity) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for _, e := range entities {
		if !e.Active {
			continue
		}
		g.insert(e)
	}
}

func (g *Grid) insert(e *core.Entity) {
	minX, minY, maxX, maxY := e.Bounds()
	c0, r0 := g.cellAt(minX, minY)
	c1, r1 := g.cellAt(maxX, maxY)
	for row := r0; row <= r1; row++ {
		base := row * g.cols
		for col := c0; col <= c1; col++ {
			g.cells[base+col] = append(g.cells[base+col], e)
		}
	}
}

// Query appends to buf every other active entity with the given role that
// shares at least one cell with e, each at most once, and returns the
// extended slice.
func (g *Grid) Query(e *core.Entity, role core.Role, buf []*core.Entity) []*core.Entity {
	g.queryGen++
	minX, minY, maxX, maxY := e.Bounds()
	c0, r0 := g.cellAt(minX, minY)
	c1, r1 := g.cellAt(maxX, maxY)
	for row := r0; row <= r1; row++ {
		base := row * g.cols
		for col := c0; col <= c1; col++ {
			for _, other := range g.cells[base+col] {
				if other == e || !other.Active || other.Role != role {
					continue
				}
				if g.seen[other.ID] == g.queryGen {
					continue
				}
				g.seen[other.ID] = g.queryGen
				buf = append(buf, other)
			}
		}
	}
	return buf
}

// cellAt converts world coordinates to cell indices, clamped to the valid
// range so positions outside the grid land in the edge cells.
func (g *Grid) cellAt(x, y float64) (col, row int) {
	col = int(x * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}
	row = int(y * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
