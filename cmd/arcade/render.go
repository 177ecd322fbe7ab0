package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cursor-arcade/arcade"
)

var (
	colorBackground = color.RGBA{0x10, 0x12, 0x1c, 0xff}
	colorChrome     = color.RGBA{0x22, 0x27, 0x3a, 0xff}
	colorChromeEdge = color.RGBA{0x3b, 0x43, 0x63, 0xff}
	colorAsteroid   = color.RGBA{0xc8, 0xc8, 0xd0, 0xff}
	colorDebris     = color.RGBA{0x8a, 0x8a, 0x96, 0xff}
	colorCoin       = color.RGBA{0xff, 0xd7, 0x3a, 0xff}
	colorAlien      = color.RGBA{0x7c, 0xff, 0x6b, 0xff}
	colorPlayer     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorShield     = color.RGBA{0x5a, 0xc8, 0xff, 0xc0}
	colorPellet     = color.RGBA{0xff, 0xf1, 0xb0, 0xff}
)

var ghostColors = map[arcade.GhostName]color.RGBA{
	arcade.Blinky: {0xff, 0x3b, 0x3b, 0xff},
	arcade.Pinky:  {0xff, 0x9c, 0xe6, 0xff},
	arcade.Inky:   {0x3b, 0xe8, 0xff, 0xff},
	arcade.Clyde:  {0xff, 0xb0, 0x3b, 0xff},
	arcade.Spooky: {0xb0, 0x7b, 0xff, 0xff},
}

var powerUpColors = map[arcade.PowerUpType]color.RGBA{
	arcade.PowerUpShield:    {0x5a, 0xc8, 0xff, 0xff},
	arcade.PowerUpRapidFire: {0xff, 0x6b, 0x3b, 0xff},
	arcade.PowerUpMultiShot: {0xd0, 0x6b, 0xff, 0xff},
}

// parseHex turns "#rrggbb" into a color, falling back to white
func parseHex(s string) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(s) != 7 {
		return colorPlayer
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

func drawFrame(screen *ebiten.Image, s arcade.Snapshot, chrome []arcade.Rect, pageHeight float64) {
	screen.Fill(colorBackground)
	vp := s.Viewport

	// everything except the player and HUD is in page coordinates
	at := func(x, y float64) (float32, float32) {
		sx, sy := vp.ToScreen(x, y)
		return float32(sx), float32(sy)
	}

	for _, r := range chrome {
		x, y := at(r.Left, r.Top)
		w, h := float32(r.Right-r.Left), float32(r.Bottom-r.Top)
		vector.DrawFilledRect(screen, x, y, w, h, colorChrome, false)
		vector.StrokeRect(screen, x, y, w, h, 1, colorChromeEdge, false)
	}

	for _, c := range s.Coins {
		x, y := at(c.X, c.Y)
		clr := colorCoin
		if s.Mode == arcade.ModeChase {
			clr = colorPellet
		}
		vector.DrawFilledCircle(screen, x, y, float32(c.R*(0.85+0.15*c.Pulse)), clr, true)
	}
	for _, p := range s.PowerUps {
		x, y := at(p.X, p.Y)
		vector.StrokeCircle(screen, x, y, float32(p.R), 2, powerUpColors[p.Type], true)
		ebitenutil.DebugPrintAt(screen, strings.ToUpper(string(p.Type[:1])), int(x)-3, int(y)-8)
	}
	for _, a := range s.Asteroids {
		drawAsteroid(screen, a, at)
	}
	for _, al := range s.Aliens {
		drawAlien(screen, al, at)
	}
	for _, g := range s.Ghosts {
		x, y := at(g.X, g.Y)
		clr := ghostColors[g.Name]
		if g.State == "retreating" {
			clr = color.RGBA{0x40, 0x40, 0xa0, 0xff}
		}
		vector.DrawFilledCircle(screen, x, y, float32(g.R), clr, true)
		if g.Enraged {
			vector.StrokeCircle(screen, x, y, float32(g.R+3), 1.5, color.RGBA{0xff, 0, 0, 0xff}, true)
		}
	}
	for _, b := range s.Bullets {
		x, y := at(b.X, b.Y)
		vector.DrawFilledCircle(screen, x, y, float32(b.R), parseHex(b.Color), true)
	}

	if p := s.Player; p != nil {
		drawPlayer(screen, p, s.Frame)
	}

	drawHUD(screen, s, pageHeight)
}

func drawAsteroid(screen *ebiten.Image, a arcade.AsteroidView, at func(x, y float64) (float32, float32)) {
	clr := colorAsteroid
	if a.Type == arcade.AsteroidDebris {
		clr = colorDebris
	}
	r := a.R * a.Scale
	sin, cos := math.Sincos(a.Rotation)
	n := len(a.Shape)
	for i := 0; i < n; i++ {
		v0, v1 := a.Shape[i], a.Shape[(i+1)%n]
		x0, y0 := at(a.X+(v0.X*cos-v0.Y*sin)*r, a.Y+(v0.X*sin+v0.Y*cos)*r)
		x1, y1 := at(a.X+(v1.X*cos-v1.Y*sin)*r, a.Y+(v1.X*sin+v1.Y*cos)*r)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, clr, true)
	}
}

func drawAlien(screen *ebiten.Image, al arcade.AlienView, at func(x, y float64) (float32, float32)) {
	x, y := at(al.X, al.Y)
	r := float32(al.R)
	vector.StrokeLine(screen, x-r, y, x+r, y, 2, colorAlien, true)
	vector.StrokeCircle(screen, x, y-r/3, r/2, 1.5, colorAlien, true)
	vector.StrokeCircle(screen, x, y, r, 1, colorAlien, true)
	if al.MaxHP > 1 {
		frac := float32(al.HP) / float32(al.MaxHP)
		vector.DrawFilledRect(screen, x-r, y+r+4, 2*r*frac, 3, colorAlien, false)
	}
}

func drawPlayer(screen *ebiten.Image, p *arcade.PlayerView, frame uint64) {
	// blink while invulnerable
	if p.Respawning && frame/6%2 == 0 {
		return
	}
	x, y, r := p.X, p.Y, p.R
	point := func(angle, dist float64) (float32, float32) {
		return float32(x + math.Cos(p.Angle+angle)*dist), float32(y + math.Sin(p.Angle+angle)*dist)
	}
	nx, ny := point(0, r)
	lx, ly := point(2.5, r)
	rx, ry := point(-2.5, r)
	vector.StrokeLine(screen, nx, ny, lx, ly, 2, colorPlayer, true)
	vector.StrokeLine(screen, lx, ly, rx, ry, 2, colorPlayer, true)
	vector.StrokeLine(screen, rx, ry, nx, ny, 2, colorPlayer, true)
	if p.Boost {
		tx, ty := point(math.Pi, r*1.8)
		vector.StrokeLine(screen, float32(x), float32(y), tx, ty, 2, colorCoin, true)
	}
	if p.Shield {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r+6), 1.5, colorShield, true)
	}
}

func drawHUD(screen *ebiten.Image, s arcade.Snapshot, pageHeight float64) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  SCORE %d  LIVES %d  CREDITS %d",
		strings.ToUpper(string(s.Mode)), s.Score, s.Lives, s.Credits), 12, 8)
	if s.WaveLabel != "" {
		ebitenutil.DebugPrintAt(screen, s.WaveLabel, 12, 26)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("page %.0f/%.0f", s.Viewport.ScrollY, pageHeight),
		int(s.Viewport.Width)-120, 8)

	for i, n := range s.Notifications {
		ebitenutil.DebugPrintAt(screen, n, int(s.Viewport.Width)/2-len(n)*3, 80+i*18)
	}

	cy := int(s.Viewport.Height) / 2
	switch s.Phase {
	case arcade.PhaseIdle:
		ebitenutil.DebugPrintAt(screen, "ENTER to play  M to switch game  wheel to scroll", int(s.Viewport.Width)/2-144, cy)
	case arcade.PhaseGameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER  R to restart", int(s.Viewport.Width)/2-69, cy)
	case arcade.PhaseWon:
		ebitenutil.DebugPrintAt(screen, "YOU WIN  R to play again", int(s.Viewport.Width)/2-72, cy)
	}
}
