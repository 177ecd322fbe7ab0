package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"cursor-arcade/arcade"
	"cursor-arcade/credits"
)

const (
	frameMs    = 1000.0 / 60
	scrollStep = 60.0
	headerH    = 56.0
	cardW      = 280.0
	cardH      = 150.0
	cardGap    = 420.0
)

// app adapts arcade.Game to ebiten's Update/Draw/Layout loop
type app struct {
	game    *arcade.Game
	credits *credits.Counter
	mode    arcade.Mode

	width, height int
	pageHeight    float64
	scrollY       float64
	now           float64
}

func newApp(cfg *arcade.Config, rng arcade.Rand, counter *credits.Counter, pageHeight float64) *app {
	a := &app{
		game:       arcade.NewGame(cfg, rng),
		credits:    counter,
		mode:       arcade.ModeAsteroids,
		pageHeight: pageHeight,
	}
	a.game.UI().SetCredits(counter.Value())
	a.game.AddSink(arcade.SinkFunc(a.onEvent))
	return a
}

func (a *app) onEvent(ev arcade.Event) {
	if ev.Type != arcade.EventPlayerCollectCoin {
		return
	}
	total, err := a.credits.Add(ev.Value)
	if err != nil {
		log.Printf("credits: %v", err)
		return
	}
	a.game.UI().SetCredits(total)
}

// chrome is the page layout the game has to play around: a header pinned to
// the top of the page and content cards down the left and right columns.
func (a *app) chrome() []arcade.Rect {
	w := float64(a.width)
	rects := []arcade.Rect{{Left: 0, Top: 0, Right: w, Bottom: headerH}}
	for i, y := 0, headerH+120; y+cardH < a.pageHeight; i, y = i+1, y+cardGap {
		left := 40.0
		if i%2 == 1 {
			left = w - cardW - 40
		}
		rects = append(rects, arcade.Rect{Left: left, Top: y, Right: left + cardW, Bottom: y + cardH})
	}
	return rects
}

func (a *app) viewport() arcade.Viewport {
	return arcade.Viewport{
		Width:   float64(a.width),
		Height:  float64(a.height),
		ScrollY: a.scrollY,
	}
}

func (a *app) Update() error {
	if a.width == 0 {
		return nil
	}

	_, wy := ebiten.Wheel()
	maxScroll := a.pageHeight - float64(a.height)
	if maxScroll < 0 {
		maxScroll = 0
	}
	a.scrollY = arcade.Clamp(a.scrollY-wy*scrollStep, 0, maxScroll)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if a.mode == arcade.ModeAsteroids {
			a.mode = arcade.ModeChase
		} else {
			a.mode = arcade.ModeAsteroids
		}
		if a.game.Phase() == arcade.PhasePlaying {
			a.game.Start(a.mode)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.game.Start(a.mode)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if a.game.Phase() != arcade.PhasePlaying {
			a.game.Start(a.mode)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.game.Reset()
	}

	mx, my := ebiten.CursorPosition()
	a.now += frameMs
	a.game.Tick(a.now, arcade.Input{
		X:          float64(mx),
		Y:          float64(my),
		Viewport:   a.viewport(),
		Boundaries: a.chrome(),
		Fire:       ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Boost:      ebiten.IsKeyPressed(ebiten.KeyShift),
	})
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	drawFrame(screen, a.game.Snapshot(), a.chrome(), a.pageHeight)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
