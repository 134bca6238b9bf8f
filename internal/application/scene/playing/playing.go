// Package playing provides the match scene.
package playing

import (
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/younwookim/pollo/internal/application/hud"
	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/application/replay"
	"github.com/younwookim/pollo/internal/application/scene"
	"github.com/younwookim/pollo/internal/application/state"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/domain/world"
	"github.com/younwookim/pollo/internal/infrastructure/assets"
	"github.com/younwookim/pollo/internal/infrastructure/config"
)

// Scheduler job names
const (
	jobUpdate      = "update"
	jobInteraction = "interaction"
	jobSpawner     = "spawner"
	jobClouds      = "clouds"
	jobIdle        = "idle"
)

// resultHold is how long the victory/defeat screen shows before restart is allowed
const resultHold = 60

// Options configures a Playing scene
type Options struct {
	Audio port.Audio
	Seed  int64

	// Maker renders sprites; defaults to assets.Placeholder
	Maker assets.Maker
	// LoadBatch is the number of sprites generated per loading tick
	LoadBatch int

	// Loader and Watcher enable hot-reload of physics.json
	Loader  *config.Loader
	Watcher *config.Watcher

	// RecordPath enables input recording to a file, or to one generated file per
	// match when it names a directory. Replay plays one back instead of the keyboard
	RecordPath string
	Replay     *replay.Replayer
}

// Playing is the match scene. It owns the world and drives every system
// from one scheduler ticked once per frame.
type Playing struct {
	config *config.GameConfig
	audio  port.Audio

	sprites *assets.Atlas
	hud     *hud.HUD
	state   state.MatchState

	world     *world.World
	scheduler *system.Scheduler
	keyboard  system.Keyboard
	input     *system.InputSystem

	physics    *system.PhysicsSystem
	combat     *system.CombatSystem
	boss       *system.BossSystem
	animation  *system.AnimationSystem
	controller *system.PlayerController
	spawner    *system.SpawnerSystem

	// Deterministic RNG, reseeded per match
	rng  *rand.Rand
	seed int64

	loader  *config.Loader
	watcher *config.Watcher

	// Input recording / playback
	recorder   *Recorder
	recordPath string
	replayer   *replay.Replayer

	// poll and restartPressed read the real keyboard; tests replace them
	poll           func(system.Keyboard)
	restartPressed func() bool
}

// New creates a new Playing scene in the loading state
func New(cfg *config.GameConfig, opts Options) *Playing {
	if opts.Audio == nil {
		opts.Audio = &port.NopAudio{}
	}
	if opts.Maker == nil {
		opts.Maker = assets.Placeholder
	}
	if opts.LoadBatch <= 0 {
		opts.LoadBatch = 8
	}

	keys := cfg.Entities.SpriteKeys()
	keys = append(keys, cfg.Level.SpriteKeys()...)
	keys = append(keys, hud.SpriteKeys()...)

	p := &Playing{
		config:     cfg,
		audio:      opts.Audio,
		sprites:    assets.NewAtlas(keys, opts.LoadBatch, opts.Maker),
		hud:        hud.New(cfg.Entities.StatusBars),
		state:      state.StateLoading,
		scheduler:  system.NewScheduler(),
		keyboard:   system.NewKeyboard(),
		input:      system.NewInputSystem(),
		seed:       opts.Seed,
		loader:     opts.Loader,
		watcher:    opts.Watcher,
		recordPath: opts.RecordPath,
		replayer:   opts.Replay,
	}
	p.poll = p.input.Poll
	p.restartPressed = p.input.RestartPressed
	if p.replayer != nil {
		p.poll = func(kb system.Keyboard) { p.replayer.Next(kb) }
	}
	return p
}

// Update advances the match by one tick (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.drainReload()

	switch p.state {
	case state.StateLoading:
		p.sprites.Load()
		if p.sprites.Done() {
			p.start()
		}
	case state.StateRunning:
		p.poll(p.keyboard)
		if p.recorder != nil {
			p.recorder.RecordFrame(p.keyboard)
		}
		p.scheduler.Tick()
	case state.StateVictory, state.StateDefeat:
		p.scheduler.Tick()
	case state.StateIdle:
		if p.restartPressed() {
			p.Restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// start builds a fresh world and registers the match jobs
func (p *Playing) start() {
	p.rng = rand.New(rand.NewSource(p.seed))
	factory := system.NewFactory(p.config, p.rng)

	p.physics = system.NewPhysicsSystem(p.config, p.rng, p)
	p.combat = system.NewCombatSystem(p.config, p.audio, p)
	p.boss = system.NewBossSystem(p.config, p.physics, p)
	p.animation = system.NewAnimationSystem(p.sprites)
	p.controller = system.NewPlayerController(p.config, p.physics, factory, p.audio, p)
	p.spawner = system.NewSpawnerSystem(p.config, factory, p.rng)

	p.world = world.New()
	system.LoadLevel(p.world, factory, p.seed)
	p.hud = hud.New(p.config.Entities.StatusBars)
	p.keyboard.Reset()

	p.scheduler.Stop()
	p.scheduler.Every(jobUpdate, 1, p.update)
	p.scheduler.Every(jobInteraction, p.config.Physics.InteractionPeriod(), func() {
		p.combat.Resolve(p.world)
	})
	p.scheduler.Every(jobClouds, 1, func() {
		p.physics.DriftClouds(p.world)
	})
	p.scheduleSpawn()

	if p.recordPath != "" {
		p.recorder = NewRecorder(p.seed, p.config.Level.ID, p.world.MatchID.String())
	}

	p.state = state.StateRunning
	log.Printf("Match %s started (level: %s, seed: %d)", p.world.MatchID, p.config.Level.ID, p.seed)
}

// update is the per-tick world step
func (p *Playing) update() {
	w := p.world
	p.controller.Update(w, p.keyboard)
	p.physics.Update(w)
	p.boss.Update(w)
	p.animation.Update(w)
	if w.Player != nil {
		w.PruneEnemies(w.Player.X, p.config.Physics.Camera.CullDistance)
	}
	w.Frame++
}

// scheduleSpawn re-arms itself so the spawner runs every interval,
// first one interval after the match starts
func (p *Playing) scheduleSpawn() {
	p.scheduler.After(jobSpawner, p.config.Physics.Ticks(p.config.Physics.Spawner.Interval), func() {
		p.spawner.Spawn(p.world)
		p.scheduleSpawn()
	})
}

// Restart leaves the idle state and starts a new match with the next seed
func (p *Playing) Restart() {
	if !p.state.CanTransition(state.StateLoading) {
		return
	}
	p.scheduler.Stop()
	p.seed = rand.New(rand.NewSource(p.seed)).Int63()
	p.state = state.StateLoading
	log.Printf("Restarting (seed: %d)", p.seed)
}

// finish ends a running match with result
func (p *Playing) finish(result state.MatchState) {
	if !p.state.CanTransition(result) {
		return
	}
	p.state = result
	p.audio.Stop(port.CueWalk)
	p.audio.Stop(port.CueSnore)

	cue := port.CueGameOver
	if result == state.StateVictory {
		cue = port.CueVictory
	}
	p.audio.Play(cue, p.config.Physics.Audio.Volume(string(cue)))

	p.scheduler.Stop()
	p.scheduler.After(jobIdle, resultHold, func() {
		if p.state.CanTransition(state.StateIdle) {
			p.state = state.StateIdle
		}
	})

	log.Printf("Match %s ended: %s after %d frames", p.world.MatchID, result, p.world.Frame)
	p.saveRecording()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	p.recorder.Stop()

	filename := recordingFile(p.recordPath)
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// recordingFile returns path, or a generated name inside path when it is a directory
func recordingFile(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, GenerateFilename())
	}
	return path
}

// drainReload applies changed physics.json files between ticks
func (p *Playing) drainReload() {
	if p.watcher == nil || p.loader == nil {
		return
	}
	for {
		select {
		case name, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			if name != "physics.json" {
				continue
			}
			phys, err := p.loader.LoadPhysics()
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			p.config.Physics = phys
			log.Printf("Reloaded %s", name)
		case err, ok := <-p.watcher.Errors:
			if ok {
				log.Printf("Config watcher: %v", err)
			}
		default:
			return
		}
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit stops the match jobs and any looping sound
func (p *Playing) OnExit() {
	p.scheduler.Stop()
	p.audio.Stop(port.CueWalk)
	p.audio.Stop(port.CueSnore)
}

// State returns the current match state
func (p *Playing) State() state.MatchState {
	return p.state
}

// World returns the current match world (nil while first loading)
func (p *Playing) World() *world.World {
	return p.world
}

// Screen notifications from the systems

func (p *Playing) OnGameOver() { p.finish(state.StateDefeat) }
func (p *Playing) OnVictory()  { p.finish(state.StateVictory) }

func (p *Playing) OnHealthChanged(pct int)     { p.hud.OnHealthChanged(pct) }
func (p *Playing) OnCoinsChanged(pct int)      { p.hud.OnCoinsChanged(pct) }
func (p *Playing) OnBottlesChanged(pct int)    { p.hud.OnBottlesChanged(pct) }
func (p *Playing) OnBossHealthChanged(pct int) { p.hud.OnBossHealthChanged(pct) }
