package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/camfx"
	"github.com/milk9111/camfx/prefabs"
	"github.com/milk9111/camfx/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tileSize   = 64
)

// Game drives a checkerboard world through a scene container and triggers
// library effects on digit keys.
type Game struct {
	container *scene.Container
	camera    *camfx.Camera
	library   *prefabs.Library
	watcher   *prefabs.Watcher

	lastTick time.Time
	lastName string
}

var keymap = map[ebiten.Key]string{
	ebiten.Key1: "quake",
	ebiten.Key2: "pan_right",
	ebiten.Key3: "zoom_in",
	ebiten.Key4: "quarter_turn",
	ebiten.Key5: "fade_to_black",
	ebiten.Key6: "drift",
}

func NewGame(defsDir string) (*Game, error) {
	library, err := prefabs.NewLibrary()
	if err != nil {
		return nil, err
	}

	g := &Game{
		container: scene.NewContainer(baseWidth, baseHeight),
		camera:    camfx.NewCamera(),
		library:   library,
	}

	if defsDir != "" {
		if _, err := library.LoadDir(defsDir); err != nil {
			log.Printf("demo: load definitions: %v", err)
		}
		watcher, err := prefabs.NewWatcher(defsDir)
		if err != nil {
			log.Printf("demo: watch definitions: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	now := time.Now()
	delta := 1000.0 / 60.0
	if !g.lastTick.IsZero() {
		delta = float64(now.Sub(g.lastTick)) / float64(time.Millisecond)
	}
	g.lastTick = now

	g.reloadChanged()

	for key, name := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			g.trigger(name)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}

	g.camera.Tick(delta)
	return nil
}

func (g *Game) trigger(name string) {
	effect, err := g.library.Build(name, g.container)
	if err != nil {
		log.Printf("demo: build %s: %v", name, err)
		return
	}
	g.camera.Add(effect)
	g.lastName = name
}

func (g *Game) reset() {
	for _, e := range g.camera.Active() {
		g.camera.Remove(e)
	}
	g.container.SetPivot(0, 0)
	g.container.SetScale(1, 1)
	g.container.SetAngle(0)
	g.container.Overlay().SetAlpha(0)
}

func (g *Game) reloadChanged() {
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
			name, err := g.library.LoadFile(path)
			if err != nil {
				log.Printf("demo: reload %s: %v", path, err)
				continue
			}
			log.Printf("demo: reloaded %s", name)
		case err := <-g.watcher.Errors:
			log.Printf("demo: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.container.Draw(screen, drawWorld)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  active: %d  last: %s\n1 shake  2 pan  3 zoom  4 rotate  5 fade  6 drift  R reset",
		ebiten.ActualFPS(), len(g.camera.Active()), g.lastName,
	))
}

func drawWorld(world *ebiten.Image) {
	for y := 0; y*tileSize < baseHeight; y++ {
		for x := 0; x*tileSize < baseWidth; x++ {
			c := colornames.Darkslategray
			if (x+y)%2 == 0 {
				c = colornames.Slategray
			}
			vector.DrawFilledRect(world,
				float32(x*tileSize), float32(y*tileSize),
				tileSize, tileSize, c, false)
		}
	}
	vector.DrawFilledCircle(world, baseWidth/2, baseHeight/2, 24, colornames.Orangered, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
