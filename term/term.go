// Package term plays a level in the terminal, one character per tile.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/sim"
	"github.com/milk9111/platformer/tilemap"
)

const (
	tickRate = 60
	// maxDT keeps a stalled terminal from feeding the body one huge frame.
	maxDT = 1.0 / 20
)

var (
	styleSky   = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleBlock = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleBody  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
	styleCoin  = tcell.StyleDefault.Foreground(tcell.ColorGold).Background(tcell.ColorBlack)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Result summarizes a terminal session.
type Result struct {
	Frames int
	Score  int
	Coins  int
	Won    bool
}

// Run plays w until the player quits or ctx is cancelled.
func Run(ctx context.Context, w *sim.World) (Result, error) {
	s, err := NewScreen()
	if err != nil {
		return Result{}, fmt.Errorf("term: open screen: %w", err)
	}
	defer s.Close()
	return newLoop(s, w).run(ctx)
}

type loop struct {
	screen *Screen
	world  *sim.World
	keys   holdKeys
	frames int
}

func newLoop(s *Screen, w *sim.World) *loop {
	return &loop{screen: s, world: w}
}

func (l *loop) run(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	last := time.Now()
	l.draw()
	for {
		select {
		case <-ctx.Done():
			return l.result(), nil
		case ev := <-events:
			if !l.handle(ev, time.Now()) {
				return l.result(), nil
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxDT)
			last = now
			l.tick(now, dt)
			l.draw()
		}
	}
}

func (l *loop) tick(now time.Time, dt float64) {
	if l.world.Won() {
		return
	}
	l.world.Step(l.keys.intent(now), dt)
	l.frames++
}

// handle applies one terminal event and reports whether the loop continues.
func (l *loop) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			l.world.Reset()
			l.keys.reset()
			return true
		case tcell.KeyTab:
			l.world.SetTopDown(!l.world.TopDown())
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return false
			}
		}
		if c, ok := controlFor(ev); ok {
			l.keys.press(c, now)
		}
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

func (l *loop) result() Result {
	return Result{
		Frames: l.frames,
		Score:  l.world.Score(),
		Coins:  l.world.CoinCount(),
		Won:    l.world.Won(),
	}
}

// draw renders the grid with one cell per tile below a one-line HUD.
func (l *loop) draw() {
	s := l.screen
	g := l.world.Grid
	s.Clear()

	const top = 1
	for cy := range g.Height() {
		for cx := range g.Width() {
			if g.Solid(cx, cy) {
				s.SetContent(cx, cy+top, '█', styleBlock)
			} else {
				s.SetContent(cx, cy+top, ' ', styleSky)
			}
		}
	}

	for coin := range l.world.Coins() {
		cx, cy := g.CellOf(coin.X+coin.W/2, coin.Y+coin.H/2)
		s.SetContent(cx, cy+top, '*', styleCoin)
	}

	l.eachCell(l.world.Body.Box(), func(cx, cy int) {
		s.SetContent(cx, cy+top, '@', styleBody)
	})

	hud := fmt.Sprintf("coins %d/%d  %s", l.world.Score(), l.world.CoinCount(), l.world.Body.State)
	if l.world.TopDown() {
		hud += "  top-down"
	}
	if l.world.Won() {
		hud += "  all coins! enter to restart"
	}
	s.Print(0, 0, hud, styleHUD)
	s.Show()
}

// eachCell calls fn for every grid cell r overlaps.
func (l *loop) eachCell(r tilemap.Rect, fn func(cx, cy int)) {
	g := l.world.Grid
	x0, y0 := g.CellOf(r.X, r.Y)
	x1, y1 := g.CellOf(r.Right()-1, r.Bottom()-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			fn(cx, cy)
		}
	}
}
