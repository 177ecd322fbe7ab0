// Command arcade runs the cursor mini-games in a desktop window. The window is
// the viewport onto a taller virtual page that scrolls with the mouse wheel.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"cursor-arcade/arcade"
	"cursor-arcade/credits"
)

const appName = "cursor-arcade"

func main() {
	configPath := flag.String("config", "", "Game tuning YAML (default: built-in)")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 700, "Window height")
	page := flag.Float64("page", 3200, "Virtual page height")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	flag.Parse()

	cfg := arcade.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = arcade.LoadConfig(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	var kv credits.KV
	if store, err := credits.OpenGdata(appName); err != nil {
		log.Printf("credits: %v, balance will not persist", err)
		kv = credits.NewMemoryKV()
	} else {
		kv = store
	}
	counter, err := credits.Open(kv, credits.DefaultKey)
	if err != nil {
		log.Fatalf("credits: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	a := newApp(cfg, rand.New(rand.NewSource(*seed)), counter, *page)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Cursor Arcade")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
