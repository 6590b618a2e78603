package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lixenwraith/reelspin/audio"
	"github.com/lixenwraith/reelspin/config"
	"github.com/lixenwraith/reelspin/constant"
	"github.com/lixenwraith/reelspin/credit"
	"github.com/lixenwraith/reelspin/engine"
	"github.com/lixenwraith/reelspin/event"
	"github.com/lixenwraith/reelspin/render"
	"github.com/lixenwraith/reelspin/spin"
)

var (
	configFlag  = flag.String("config", "reelspin.yaml", "Path to config file")
	seedFlag    = flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	instantFlag = flag.Bool("instant", false, "Skip reel animation")
)

// dispatchUpdater drains the event queue once per frame, after the
// coordinator has stepped, so collaborators observe notifications in
// the order they were emitted
type dispatchUpdater struct {
	router *event.Router
}

func (d *dispatchUpdater) Update(engine.FrameContext) {
	d.router.DispatchAll()
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nREELSPIN CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	// .env feeds the REELSPIN_* overrides read by config.Load
	_ = godotenv.Load()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *instantFlag {
		cfg.Machine.Instant = true
	}

	logger := newLogger(cfg.App.LogFile)
	defer logger.Sync()

	balance, err := decimal.NewFromString(cfg.App.StartingBalance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid starting balance %q: %v\n", cfg.App.StartingBalance, err)
		os.Exit(1)
	}
	bet, err := decimal.NewFromString(cfg.App.Bet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid bet %q: %v\n", cfg.App.Bet, err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize terminal; the machine cannot start without a screen
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableFocus()
	defer screen.Fini()

	engine.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\nREELSPIN CRASHED: %v\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	// Engine wiring
	clock := engine.NewPausableClock(nil)
	queue := event.NewEventQueue(constant.EventQueueSize)
	router := event.NewRouter(queue)

	wallet := credit.NewWallet(balance, bet, logger)
	coord, err := spin.NewCoordinator(cfg.SpinConfig(), clock, queue, rand.New(rand.NewSource(seed)), wallet, logger)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build machine: %v\n", err)
		os.Exit(1)
	}

	pool := spin.NewSpritePool(constant.HighlightPoolCapacity)
	view := render.NewView(screen, coord, wallet, pool)

	audioEngine := audio.NewEngine(logger)
	if cfg.App.Audio {
		if err := audioEngine.Start(); err != nil {
			logger.Warn("audio start failed, continuing without sound", zap.Error(err))
		}
		defer audioEngine.Stop()
	} else {
		audioEngine.SetMuted(true)
	}

	router.Register(wallet)
	router.Register(audioEngine)
	router.Register(view)

	// One frame loop drives everything: coordinator steps first, the
	// router then fans out what it emitted, the view draws last
	loop := engine.NewLoop(clock, constant.FrameUpdateInterval)
	loop.AddUpdater(coord)
	loop.AddUpdater(&dispatchUpdater{router: router})
	loop.AddUpdater(view)
	loop.Start()
	defer loop.Stop()

	logger.Info("reelspin started",
		zap.Int64("seed", seed),
		zap.Bool("instant", cfg.Machine.Instant),
		zap.String("balance", balance.String()),
	)

	runInput(screen, clock, queue, coord, audioEngine, logger)
	logger.Info("reelspin exiting")
}

// runInput blocks on terminal events until a quit key arrives. The
// frame loop runs independently; input only toggles state and requests
// spins
func runInput(screen tcell.Screen, clock *engine.PausableClock, queue *event.EventQueue, coord *spin.Coordinator, audioEngine *audio.Engine, logger *zap.Logger) {
	instant := false

	setPaused := func(paused bool) {
		if paused {
			clock.Pause()
		} else {
			clock.Resume()
		}
		queue.Push(event.GameEvent{
			Type:    event.EventPauseToggled,
			Payload: &event.PauseToggledPayload{Paused: paused},
		})
		logger.Info("pause toggled", zap.Bool("paused", paused))
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return
			case ' ':
				engine.Go(func() {
					if _, err := coord.Spin(context.Background()); err != nil {
						switch {
						case errors.Is(err, spin.ErrSpinInFlight),
							errors.Is(err, spin.ErrInsufficientStake):
							logger.Info("spin rejected", zap.Error(err))
						default:
							logger.Error("spin failed", zap.Error(err))
						}
					}
				})
			case 'p':
				setPaused(!clock.IsPaused())
			case 'i':
				instant = !instant
				coord.SetInstant(instant)
				logger.Info("instant mode toggled", zap.Bool("instant", instant))
			case 'm':
				audioEngine.SetMuted(!audioEngine.Muted())
			}

		case *tcell.EventFocus:
			// Pause-source collaborator: losing terminal focus pauses,
			// regaining it resumes
			if clock.IsPaused() == ev.Focused {
				setPaused(!ev.Focused)
			}

		case *tcell.EventResize:
			screen.Sync()

		case nil:
			// Screen finalized under us
			return
		}
	}
}

// newLogger writes structured logs to a file; the terminal owns stdout.
// Logging is best-effort: a bad path degrades to a nop logger
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
