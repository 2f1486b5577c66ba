// Package game wires the turn controller, flicker scheduler, composer,
// stair transitions, and cave generation into a single playable loop. The
// per-kind entity updates (snake AI, lantern fuel, torch light) and the
// player's actions (move, attack, torch placement, pickup) live here too.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"torch/internal/colorx"
	"torch/internal/component"
	"torch/internal/flicker"
	"torch/internal/input"
	"torch/internal/light"
	"torch/internal/mapgen"
	"torch/internal/render"
	"torch/internal/stairs"
	"torch/internal/term"
	"torch/internal/turn"
	"torch/internal/world"

	"github.com/gdamore/tcell/v2"
)

const (
	floorH, floorW = 100, 100
	hudRows        = 1

	playerStartFuel   = 100.0
	fuelBurnPerTurn   = 0.1
	lanternBrightness = 1.2
	torchBrightness   = 1.0
	snakeRetreatLight = 0.2

	// playerStartTorches mirrors demo.c's player_torches, which is
	// initialized to the character literal 'z' (122).
	playerStartTorches = 122
)

var (
	playerColor  = colorx.Color{R: 0xff, G: 0xff, B: 0xff}
	lanternColor = colorx.Color{R: 0xff, G: 0xd9, B: 0x80}
	torchColor   = colorx.Color{R: 0xff, G: 0x66, B: 0x22}
)

// Game is the top-level orchestrator.
type Game struct {
	screen   *term.Screen
	composer *render.Composer
	reader   input.Reader
	sched    *flicker.Scheduler

	w        *world.World
	playerID component.EntityID
	rng      *rand.Rand
	depth    int
}

// New initializes the terminal, generates the first floor, and places the
// player on it.
func New() (*Game, error) {
	screen, err := term.Init()
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}

	g := &Game{
		screen: screen,
		w:      world.New(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.composer = render.New(screen, hudRows)
	g.loadFirstFloor()

	g.sched = flicker.New(g.screen)
	go g.sched.Run()

	return g, nil
}

func (g *Game) loadFirstFloor() {
	cfg := mapgen.Default(floorH, floorW)
	f := mapgen.Carve(cfg, g.rng)
	f.Generated = true
	floorID := g.w.AddFloor(f)
	g.w.Current = floorID

	px, py := mapgen.RandomOpenTile(f, g.rng)
	g.playerID = g.w.NextEntityID()
	player := &component.Entity{
		ID:           g.playerID,
		Kind:         component.Player,
		Capabilities: component.Combat | component.LightSource,
		X:            px, Y: py,
		Color: playerColor, Glyph: "@",
		Combat:  &component.CombatStats{HP: 20, HPMax: 20},
		Light:   &component.LightEmission{Brightness: lanternBrightness, Color: lanternColor},
		Fuel:    playerStartFuel,
		Torches: playerStartTorches,
	}
	f.AddEntity(floorID, player)

	mapgen.PlaceSword(f, g.rng)
	mapgen.ScatterSnakes(g.w, floorID, cfg, g.rng, g.w.NextEntityID)

	dsx, dsy := mapgen.RandomOpenTile(f, g.rng)
	f.MutableAt(dsx, dsy).Kind = world.TileDownstair
	f.DownstairPos = [2]int{dsx, dsy}
	// The arrival floor/coordinates are not yet known; reserve its index so
	// stairs.Descend has something to generate into on first use.
	placeholder := world.NewFloor(floorH, floorW, "cave")
	nextID := g.w.AddFloor(placeholder)
	f.Downstair = world.StairEndpoint{Floor: nextID}

	g.depth = 1
}

// generateNextFloor is the stairs.Generator: it carves the target floor the
// first time a staircase leads to it and pairs the two floors' endpoints.
func (g *Game) generateNextFloor(w *world.World, floorID int) {
	src := w.CurrentFloor()
	cfg := mapgen.Default(floorH, floorW)
	f := mapgen.Carve(cfg, g.rng)

	usx, usy := mapgen.RandomOpenTile(f, g.rng)
	f.MutableAt(usx, usy).Kind = world.TileUpstair
	f.UpstairPos = [2]int{usx, usy}
	f.Upstair = world.StairEndpoint{Floor: w.Current, X: src.DownstairPos[0], Y: src.DownstairPos[1]}

	dsx, dsy := mapgen.RandomOpenTile(f, g.rng)
	f.MutableAt(dsx, dsy).Kind = world.TileDownstair
	f.DownstairPos = [2]int{dsx, dsy}
	nextPlaceholder := world.NewFloor(floorH, floorW, "cave")
	nextID := w.AddFloor(nextPlaceholder)
	f.Downstair = world.StairEndpoint{Floor: nextID}

	// Store the carved floor before scattering snakes: ScatterSnakes looks
	// the floor up by index, and the placeholder there is solid wall.
	w.Floors[floorID] = f
	mapgen.PlaceSword(f, g.rng)
	mapgen.ScatterSnakes(w, floorID, cfg, g.rng, w.NextEntityID)

	f.Generated = true
	src.Downstair = world.StairEndpoint{Floor: floorID, X: usx, Y: usy}
}

// Run blocks until the player quits or dies.
func (g *Game) Run() {
	defer g.screen.Quit()
	defer g.sched.Stop()

	g.redraw()

	for {
		ev := g.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.composer.Resize()
		case *flicker.TickEvent:
			g.tick()
		case *tcell.EventKey:
			cmd := g.reader.Handle(ev)
			if cmd.Action == input.Quit {
				return
			}
			if cmd.Action == input.None {
				continue
			}
			died := g.handle(cmd)
			if died {
				g.showDeathScreen()
				return
			}
		}
		g.redraw()
	}
}

// tick runs one flicker pass: clear per-tile light and re-deposit it from
// Flicker-capable entities only, leaving every other entity's state alone.
// It always runs on the same goroutine as handle, so it never races a turn.
func (g *Game) tick() {
	f := g.w.CurrentFloor()
	light.Clear(f)
	g.relightFlickerSources(f)
}

// handle runs one command through the turn controller and reports whether
// the player died as a result.
func (g *Game) handle(cmd input.Command) bool {
	action := func(w *world.World) turn.Result {
		return g.applyCommand(w, cmd)
	}
	out := turn.Advance(g.w, action, g.updateEntity, g.playerID)
	return out.PlayerDied
}

func (g *Game) redraw() {
	f := g.w.CurrentFloor()
	player := f.Entity(g.playerID)
	if player == nil {
		return
	}
	g.composer.Draw(f, player, g.depth)
}

func (g *Game) relightFlickerSources(f *world.Floor) {
	for _, e := range f.Entities() {
		if e.Capabilities.Has(component.Flicker) && e.Light != nil {
			light.Deposit(f, e.X, e.Y, g.jitteredBrightness(e.Light.Brightness), e.Light.Color)
		}
	}
}

// jitteredBrightness returns base scaled by a small per-call random factor,
// used for flicker-capable light sources so each deposit differs visibly
// from the last without drifting the entity's stored base brightness.
func (g *Game) jitteredBrightness(base float64) float64 {
	const jitter = 0.15
	return base * (1 - jitter + 2*jitter*g.rng.Float64())
}

// showDeathScreen clears the screen and prints a one-line death message,
// waiting for an actual keypress. It cannot just call PollEvent once: the
// flicker scheduler keeps posting TickEvents into the same queue until
// Run's deferred sched.Stop runs, so a single poll could return a tick
// instead of the player's key.
func (g *Game) showDeathScreen() {
	g.screen.Clear()
	msg := fmt.Sprintf("You have died on depth %d. Press any key to exit.", g.depth)
	for i, ch := range msg {
		g.screen.DrawAt(0, i, string(ch), tcell.ColorWhite, tcell.ColorBlack, term.Attr{})
	}
	g.screen.Flush()
	for {
		if _, ok := g.screen.PollEvent().(*tcell.EventKey); ok {
			return
		}
	}
}
