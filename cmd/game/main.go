package main

import (
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pollo/internal/application/game"
	"github.com/younwookim/pollo/internal/application/port"
	"github.com/younwookim/pollo/internal/application/replay"
	"github.com/younwookim/pollo/internal/application/scene/playing"
	"github.com/younwookim/pollo/internal/application/system"
	"github.com/younwookim/pollo/internal/infrastructure/audio"
	"github.com/younwookim/pollo/internal/infrastructure/config"
	"github.com/younwookim/pollo/internal/infrastructure/settings"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from a directory instead of the embedded set")
	watch := flag.Bool("watch", false, "Reload physics.json on change (requires -config)")
	settingsPath := flag.String("settings", settings.DefaultPath(), "Settings file")
	seed := flag.Int64("seed", 0, "Match seed (default: current time)")
	recordFlag := flag.String("record", "", "Record input to file, or one file per match into a directory (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts := playing.Options{
		Seed:       *seed,
		RecordPath: *recordFlag,
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = replay.NewReplayer(*data)
		opts.Seed = data.Seed
		log.Printf("Replaying %s (%d frames, seed: %d)", *replayFlag, len(data.Frames), data.Seed)
	}

	if *watch {
		if *configDir == "" {
			log.Fatalf("-watch requires -config")
		}
		w, err := config.NewWatcher(*configDir)
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = w.Close() }()
		opts.Loader = loader
		opts.Watcher = w
		log.Printf("Watching %s for changes", *configDir)
	}

	// Settings and sound
	store := settings.NewFile(*settingsPath)
	muted, err := store.LoadMuted()
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
	}

	var sound port.Audio = &port.NopAudio{}
	if player, err := audio.New(audio.NewContext()); err != nil {
		log.Printf("Audio disabled: %v", err)
	} else {
		sound = player
	}
	sound.SetMuted(muted)
	opts.Audio = sound

	// Create game
	display := cfg.Physics.Display
	match := playing.New(cfg, opts)
	g := game.New(match, display.ScreenWidth, display.ScreenHeight)
	g.SetMute(sound, store, system.NewInputSystem().MuteToggled)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("El Pollo Loco")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads configs from dir, or from the embedded set when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
