package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/shmup-engine/engine/audio"
	"github.com/1siamBot/shmup-engine/engine/collision"
	"github.com/1siamBot/shmup-engine/engine/core"
	"github.com/1siamBot/shmup-engine/engine/input"
	"github.com/1siamBot/shmup-engine/engine/render"
	"github.com/1siamBot/shmup-engine/engine/score"
	"github.com/1siamBot/shmup-engine/engine/systems"
	"github.com/1siamBot/shmup-engine/engine/ui"
)

const (
	ScreenWidth  = 600
	ScreenHeight = 800
	TickRate     = 60.0
)

// Game implements ebiten.Game. Each display frame drives one scheduler
// tick; rendering runs every frame regardless of pause or simulation
// backlog.
type Game struct {
	world    *core.World
	loop     *core.GameLoop
	in       *input.State
	renderer *render.Renderer
	menu     *ui.Menu
	sound    *audio.Manager
	store    *score.Store

	controls *systems.PlayerControlSystem
	weapons  *systems.WeaponSystem

	showDebug bool
}

func NewGame(store *score.Store, sound *audio.Manager) *Game {
	g := &Game{
		loop:     core.NewGameLoop(TickRate),
		in:       input.NewState(),
		renderer: render.NewRenderer(ScreenWidth, ScreenHeight),
		menu:     ui.NewMenu(ScreenWidth, ScreenHeight),
		sound:    sound,
		store:    store,
	}
	g.menu.Scores = g.topScores()
	return g
}

// startRun builds a fresh world and wires systems and audio listeners.
func (g *Game) startRun() {
	w := core.NewWorld(ScreenWidth, ScreenHeight)

	g.controls = &systems.PlayerControlSystem{}
	g.weapons = &systems.WeaponSystem{}
	w.AddSystem(&systems.FormationSystem{})
	w.AddSystem(g.controls)
	w.AddSystem(g.weapons)
	w.AddSystem(&systems.MovementSystem{})
	w.AddSystem(collision.NewEngine(ScreenWidth, ScreenHeight))

	w.Events.On(core.EvtBulletFired, func(e core.Event) {
		g.sound.Play(audio.SoundFire, panOf(e.Payload))
	})
	w.Events.On(core.EvtEnemyDestroyed, func(e core.Event) {
		g.sound.Play(audio.SoundExplosion, panOf(e.Payload))
	})
	w.Events.On(core.EvtPickupCollected, func(core.Event) {
		g.sound.Play(audio.SoundPickup, 0)
	})
	w.Events.On(core.EvtPlayerHit, func(core.Event) {
		g.sound.Play(audio.SoundPlayerHit, 0)
	})
	w.Events.On(core.EvtGameOver, func(core.Event) {
		g.sound.Play(audio.SoundGameOver, 0)
	})

	systems.SpawnPlayer(w)

	g.world = w
	g.loop.Start()
	g.menu.Screen = ui.ScreenPlaying
}

func (g *Game) finishRun() {
	g.loop.Stop()
	if g.store != nil {
		if err := g.store.Save("PLAYER", g.world.Score, g.world.Wave); err != nil {
			log.Printf("score: save failed: %v", err)
		}
	}
	g.menu.FinalScore = g.world.Score
	g.menu.FinalWave = g.world.Wave
	g.menu.Scores = g.topScores()
	g.menu.Screen = ui.ScreenGameOver
}

func (g *Game) topScores() []ui.ScoreEntry {
	if g.store == nil {
		return nil
	}
	rows, err := g.store.Top(10)
	if err != nil {
		log.Printf("score: query failed: %v", err)
		return nil
	}
	var out []ui.ScoreEntry
	for _, r := range rows {
		out = append(out, ui.ScoreEntry{Name: r.Name, Score: r.Score, Wave: r.Wave})
	}
	return out
}

func (g *Game) Update() error {
	g.in.Update()
	if g.in.DebugJust {
		g.showDebug = !g.showDebug
	}

	switch g.menu.Screen {
	case ui.ScreenTitle:
		if g.in.ConfirmJust {
			g.startRun()
		}

	case ui.ScreenPlaying:
		g.controls.Controls = systems.Controls{MoveX: g.in.MoveX, MoveY: g.in.MoveY}
		g.weapons.Firing = g.in.Fire
		g.loop.Tick(g.in.PauseJust, g.world.Step)
		if g.loop.Paused() {
			g.menu.Screen = ui.ScreenPaused
		} else if g.world.GameOver {
			g.finishRun()
		}

	case ui.ScreenPaused:
		// The scheduler keeps ticking so the pause input is polled and
		// the accumulator drains; no simulation steps run while paused.
		g.loop.Tick(g.in.PauseJust, g.world.Step)
		if !g.loop.Paused() {
			g.menu.Screen = ui.ScreenPlaying
		}
		if g.in.QuitJust {
			g.loop.Stop()
			g.menu.Screen = ui.ScreenTitle
		}

	case ui.ScreenGameOver:
		if g.in.ConfirmJust {
			g.menu.Screen = ui.ScreenTitle
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.world != nil && g.menu.Screen != ui.ScreenTitle {
		g.renderer.Draw(screen, g.world)
		g.renderer.DrawHUD(screen, g.world)
		if g.showDebug {
			g.renderer.DrawDebug(screen, g.world)
		}
	}
	g.menu.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func panOf(payload interface{}) float64 {
	x, ok := payload.(float64)
	if !ok {
		return 0
	}
	return audio.PanFor(x, ScreenWidth)
}

func scorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "starblitz_scores.db"
	}
	dir = filepath.Join(dir, "starblitz")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "starblitz_scores.db"
	}
	return filepath.Join(dir, "scores.db")
}

func main() {
	store, err := score.Open(scorePath())
	if err != nil {
		// High scores are a nice-to-have; the game runs without them.
		log.Printf("score: open failed, disabling high scores: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	sound := audio.NewManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: init failed, running silent: %v", err)
	}
	defer sound.Close()

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Starblitz")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(store, sound)); err != nil {
		// Losing the rendering surface is the one fatal condition.
		log.Fatal(err)
	}
}
