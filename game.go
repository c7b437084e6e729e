package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
	"github.com/milk9111/platformer/tilemap"
	"golang.org/x/image/colornames"
)

const tps = 60

type Game struct {
	frames int

	world   *sim.World
	blocks  []tilemap.Rect
	watcher *prefabs.Watcher
	logger  *log.Logger
}

// NewGame wraps w for the window. watcher may be nil.
func NewGame(w *sim.World, watcher *prefabs.Watcher, logger *log.Logger) *Game {
	return &Game{
		world:   w,
		blocks:  w.Grid.Merge(),
		watcher: watcher,
		logger:  logger,
	}
}

func (g *Game) Update() error {
	g.frames++
	g.reload()

	in := input.Poll()
	switch {
	case in.Quit:
		return ebiten.Termination
	case in.Restart:
		g.world.Reset()
		g.logger.Info("restart", "level", g.world.Level.Name)
	case in.ToggleMode:
		g.world.SetTopDown(!g.world.TopDown())
		g.logger.Debug("movement mode", "top_down", g.world.TopDown())
	}

	if g.world.Won() {
		return nil
	}
	before := g.world.Score()
	g.world.Step(in.Intent, 1.0/tps)
	if g.world.Score() != before {
		g.logger.Debug("coin", "score", g.world.Score(), "of", g.world.CoinCount())
		if g.world.Won() {
			g.logger.Info("level cleared", "level", g.world.Level.Name, "frames", g.frames)
		}
	}
	return nil
}

// reload applies body spec edits picked up by the watcher without blocking.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.ProfileName(path) != g.world.Spec.Name {
				continue
			}
			spec, err := prefabs.LoadBodySpec(g.world.Spec.Name)
			if err != nil {
				g.logger.Warn("reload body spec", "path", path, "err", err)
				continue
			}
			g.world.Reload(spec)
			g.logger.Info("reloaded body spec", "profile", spec.Name)
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				g.logger.Warn("watch prefabs", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	fill := g.world.Level.LayerColor(0)
	for _, r := range g.blocks {
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	}

	for c := range g.world.Coins() {
		vector.FillRect(screen, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), colornames.Gold, false)
	}

	box := g.world.Body.Box()
	vector.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), g.world.Spec.Color.Or(colornames.Crimson), false)

	hud := fmt.Sprintf("coins %d/%d  %s", g.world.Score(), g.world.CoinCount(), g.world.Body.State)
	if g.world.TopDown() {
		hud += "  top-down"
	}
	if g.world.Won() {
		hud += "\nall coins! enter to restart"
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.world.Grid.Bounds()
	return b.Right(), b.Bottom()
}

func isTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
