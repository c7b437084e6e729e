// Package sim runs a body on a level without a window: it owns the grid, the
// body and the coins, and advances them one frame at a time.
package sim

import (
	"fmt"
	"iter"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/kinematic"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/tilemap"
)

// Frame is the state of the world after one step.
type Frame struct {
	Index    int                `yaml:"frame"`
	Position cp.Vector          `yaml:"position"`
	Velocity cp.Vector          `yaml:"velocity"`
	State    kinematic.State    `yaml:"state"`
	Contacts kinematic.Contacts `yaml:"contacts"`
	Score    int                `yaml:"score"`
}

// World is one level being played by one body.
type World struct {
	Level *levels.Level
	Grid  *tilemap.Grid
	Body  *kinematic.Body
	Spec  *prefabs.BodySpec

	spawnX, spawnY float64
	coins          []tilemap.Rect
	taken          []bool
	score          int
	frame          int
}

// NewWorld builds the collision grid of lvl and spawns a body from spec at the
// level's spawn point.
func NewWorld(lvl *levels.Level, spec *prefabs.BodySpec) (*World, error) {
	g, err := lvl.Grid()
	if err != nil {
		return nil, err
	}
	x, y, err := lvl.Spawn()
	if err != nil {
		return nil, err
	}
	w := &World{
		Level:  lvl,
		Grid:   g,
		Spec:   spec,
		Body:   spec.NewBody(x, y),
		spawnX: x,
		spawnY: y,
		coins:  lvl.Coins(),
	}
	w.taken = make([]bool, len(w.coins))
	return w, nil
}

// Load builds a world from a body profile and a level name. An empty level
// name uses the profile's level.
func Load(profile, level string) (*World, error) {
	spec, err := prefabs.LoadBodySpec(profile)
	if err != nil {
		return nil, err
	}
	if level == "" {
		level = spec.Level
	}
	if level == "" {
		return nil, fmt.Errorf("sim: profile %s names no level", spec.Name)
	}
	lvl, err := levels.Load(level)
	if err != nil {
		return nil, err
	}
	return NewWorld(lvl, spec)
}

// Step advances the body by dt and collects every coin it overlaps.
func (w *World) Step(in kinematic.Intent, dt float64) Frame {
	c := w.Body.Update(w.Grid, in, dt)
	box := w.Body.Box()
	for i, coin := range w.coins {
		if !w.taken[i] && box.Intersects(coin) {
			w.taken[i] = true
			w.score++
		}
	}
	w.frame++
	return Frame{
		Index:    w.frame,
		Position: w.Body.Position,
		Velocity: w.Body.Velocity,
		State:    w.Body.State,
		Contacts: c,
		Score:    w.score,
	}
}

// Reset puts the body back on the spawn point and restores every coin.
func (w *World) Reset() {
	w.Body.Reset(w.spawnX, w.spawnY)
	clear(w.taken)
	w.score = 0
	w.frame = 0
}

// Reload swaps in a new body spec, keeping the body's motion. A size or
// option change respawns it.
func (w *World) Reload(spec *prefabs.BodySpec) {
	old := w.Spec
	w.Spec = spec
	if old != nil && spec.Width == old.Width && spec.Height == old.Height && spec.Options == old.Options {
		w.Body.SetTuning(spec.Tuning)
		return
	}
	w.Body = spec.NewBody(w.spawnX, w.spawnY)
}

// SetTopDown switches the body between platformer and top-down movement.
func (w *World) SetTopDown(on bool) {
	o := w.Body.Options()
	o.TopDown = on
	w.Body.SetOptions(o)
}

func (w *World) TopDown() bool { return w.Body.Options().TopDown }

func (w *World) Score() int { return w.score }

func (w *World) CoinCount() int { return len(w.coins) }

// Won reports whether every coin has been collected.
func (w *World) Won() bool {
	return len(w.coins) > 0 && w.score == len(w.coins)
}

// Coins yields the coins still in play.
func (w *World) Coins() iter.Seq[tilemap.Rect] {
	return func(yield func(tilemap.Rect) bool) {
		for i, coin := range w.coins {
			if w.taken[i] {
				continue
			}
			if !yield(coin) {
				return
			}
		}
	}
}
