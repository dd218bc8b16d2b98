// Command bindplay opens a window with a square that moves while its
// bound controls are held. WASD and the arrow keys move, space or the
// left mouse button fires, and the configured quit key closes it.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/dshills/keybind/internal/config"
	"github.com/dshills/keybind/internal/input"
	"github.com/dshills/keybind/internal/input/binding"
	"github.com/dshills/keybind/internal/input/mouse"
	"github.com/dshills/keybind/internal/input/source/window"
	"github.com/dshills/keybind/internal/logging"
)

const (
	screenWidth  = 320
	screenHeight = 240
	playerSize   = 12
	speed        = 2
)

// Game drives a binding table from an ebiten window.
type Game struct {
	table  *binding.Table
	src    *window.Source
	events []input.Event
	logger *logging.Logger

	up, down, left, right, fire *binding.Control

	player *ebiten.Image
	x, y   float64
	shots  int
	quit   bool
}

// NewGame binds the demo controls on a table using the configured
// layout and quit key.
func NewGame(cfg *config.Config, logger *logging.Logger) (*Game, error) {
	g := &Game{
		table: binding.NewTable(
			binding.WithLayout(cfg.Layout()),
			binding.WithLogger(logger),
		),
		src:    window.NewSource(),
		events: make([]input.Event, 0, 16),
		logger: logger,
		up:     binding.NewControl("up"),
		down:   binding.NewControl("down"),
		left:   binding.NewControl("left"),
		right:  binding.NewControl("right"),
		player: ebiten.NewImage(playerSize, playerSize),
		x:      (screenWidth - playerSize) / 2,
		y:      (screenHeight - playerSize) / 2,
	}
	g.player.Fill(color.RGBA{R: 0x40, G: 0xc0, B: 0x60, A: 0xff})

	g.fire = binding.NewControl("fire").OnChange(func(name string, active bool) {
		if active {
			g.shots++
			logger.Debug("%s #%d", name, g.shots)
		}
	})

	// WASD by position, so they stay in place on any layout.
	binds := []struct {
		name    string
		control *binding.Control
	}{
		{"scancode 26", g.up},
		{"scancode 22", g.down},
		{"scancode 4", g.left},
		{"scancode 7", g.right},
		{"Up", g.up},
		{"Down", g.down},
		{"Left", g.left},
		{"Right", g.right},
		{"Space", g.fire},
	}
	for _, b := range binds {
		if err := g.table.BindKeyByName(b.name, b.control); err != nil {
			return nil, err
		}
	}
	if err := g.table.BindMouseButton(mouse.ButtonLeft, g.fire); err != nil {
		return nil, err
	}

	if cfg.Input.QuitKey != "" {
		quit := binding.ListenerFunc(func(active bool) {
			if active {
				g.quit = true
			}
		})
		if err := g.table.BindKeyByName(cfg.Input.QuitKey, quit); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.events = g.src.Poll(g.events[:0])
	for _, ev := range g.events {
		if ev.Kind == input.KindQuit {
			g.quit = true
		}
		g.table.FireEvent(ev)
	}
	if g.quit {
		return ebiten.Termination
	}

	if g.up.Active() {
		g.y -= speed
	}
	if g.down.Active() {
		g.y += speed
	}
	if g.left.Active() {
		g.x -= speed
	}
	if g.right.Active() {
		g.x += speed
	}
	g.x = clamp(g.x, 0, screenWidth-playerSize)
	g.y = clamp(g.y, 0, screenHeight-playerSize)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(g.x, g.y)
	if g.fire.Active() {
		op.ColorScale.Scale(1.5, 0.5, 0.5, 1)
	}
	screen.DrawImage(g.player, op)

	var held []string
	for _, c := range []*binding.Control{g.up, g.down, g.left, g.right, g.fire} {
		if c.Active() {
			held = append(held, c.Name())
		}
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("layout: %s  shots: %d\nheld: %s",
		g.table.Layout().Name(), g.shots, strings.Join(held, " ")))
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	layout := flag.String("layout", "", "Keyboard layout (us, azerty, dvorak)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		log.Fatal(err)
	}
	if *layout != "" {
		cfg.Input.Layout = *layout
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Level(),
		Output: os.Stderr,
		Prefix: "bindplay",
	})

	g, err := NewGame(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("bindplay")
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
