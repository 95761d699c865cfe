package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/corvid-labs/tessera/audio"
	"github.com/corvid-labs/tessera/component"
	"github.com/corvid-labs/tessera/config"
	"github.com/corvid-labs/tessera/ecs"
	"github.com/corvid-labs/tessera/input"
	"github.com/corvid-labs/tessera/render"
	"github.com/corvid-labs/tessera/system"
	"github.com/corvid-labs/tessera/vmath"
)

const (
	playerSpeed = 250.0
	enemyCount  = 5
	floatCount  = 10
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to TOML config")
	profiling := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *profiling {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetTitle(cfg.Window.Title)

	player := audio.NewPlayer()
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			logger.Warn("audio unavailable, running silent", zap.Error(err))
		}
	}
	defer player.Close()

	world := ecs.NewWorld(ecs.WithLogger(logger))
	defer world.Clear()

	terminal := render.NewTerminal(screen, cfg.Window.ScaleX, cfg.Window.ScaleY)
	boundaryMode := system.Wrap
	if cfg.Boundary.Mode == "clamp" {
		boundaryMode = system.Clamp
	}

	world.AddSystem(system.NewTimer())
	world.AddSystem(newSwirl())
	world.AddSystem(system.NewMovement())
	world.AddSystem(system.NewBoundary(cfg.Boundary.Width, cfg.Boundary.Height, boundaryMode))
	world.AddSystem(system.NewHealth())
	world.AddSystem(system.NewRender(terminal))

	hero, err := spawnPlayer(world, cfg)
	if err != nil {
		return err
	}
	for i := 0; i < enemyCount; i++ {
		spawnEnemy(world, cfg)
	}
	for i := 0; i < floatCount; i++ {
		spawnFloater(world, cfg)
	}
	logger.Info("world ready", zap.Int("entities", world.EntityCount()))

	// keep the field lively: a repeating spawner entity
	spawner := world.CreateEntity()
	if _, err := world.AddComponent(spawner, component.NewTimer(3.0, func() {
		spawnFloater(world, cfg)
		player.Play(audio.Spawn())
	}, true)); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	in := input.NewState()
	tick := time.Second / time.Duration(cfg.Simulation.TickRate)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		in.BeginFrame()
	drain:
		for {
			select {
			case ev := <-events:
				if resize, ok := ev.(*tcell.EventResize); ok {
					_ = resize
					screen.Sync()
				}
				in.Feed(ev)
			default:
				break drain
			}
		}

		if in.KeyJustPressed(tcell.KeyEscape) || in.KeyJustPressed(tcell.KeyCtrlC) || in.RuneJustPressed('q') {
			logger.Info("quit requested")
			return nil
		}
		if in.RuneJustPressed(' ') {
			spawnFloater(world, cfg)
			player.Play(audio.Blip())
		}

		steer(world, hero, in)

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		terminal.Begin()
		world.Update(dt)
		terminal.Show()
	}
	return nil
}

func steer(world *ecs.World, hero ecs.Entity, in *input.State) {
	vel, ok := ecs.Get[*component.Velocity](world.Store(), hero, component.KindVelocity)
	if !ok {
		return
	}
	dx, dy := in.Axis()
	vel.Velocity = vmath.Vec2{X: dx, Y: dy}.Normalize().Scale(playerSpeed)
}

func spawnPlayer(world *ecs.World, cfg *config.Config) (ecs.Entity, error) {
	e, err := world.CreateEntityWithID("player")
	if err != nil {
		return ecs.None, err
	}
	mustAdd(world, e, component.NewTransform(cfg.Boundary.Width/2, cfg.Boundary.Height/2))
	v := component.NewVelocity(0, 0)
	v.MaxSpeed = 300
	mustAdd(world, e, v)
	sp := component.NewSprite(component.Hex("#0096ff"), 40, 40, component.Rectangle)
	sp.Z = 10
	mustAdd(world, e, sp)
	mustAdd(world, e, component.NewHealth(100))
	mustAdd(world, e, component.NewTag("player", "controllable"))
	return e, nil
}

func spawnEnemy(world *ecs.World, cfg *config.Config) {
	e := world.CreateEntity()
	mustAdd(world, e, component.NewTransform(
		50+rand.Float64()*(cfg.Boundary.Width-100),
		50+rand.Float64()*(cfg.Boundary.Height-100),
	))
	angle := rand.Float64() * 2 * math.Pi
	speed := 50 + rand.Float64()*100
	v := &component.Velocity{Velocity: vmath.FromAngle(angle, speed), MaxSpeed: 200}
	mustAdd(world, e, v)
	sp := component.NewSprite(component.Hex("#ff3333"), 30, 30, component.Triangle)
	sp.Z = 5
	mustAdd(world, e, sp)
	mustAdd(world, e, component.NewHealth(50))
	mustAdd(world, e, component.NewTag("enemy", "hostile"))
}

func spawnFloater(world *ecs.World, cfg *config.Config) {
	e := world.CreateEntity()
	mustAdd(world, e, component.NewTransform(
		rand.Float64()*cfg.Boundary.Width,
		rand.Float64()*cfg.Boundary.Height,
	))
	mustAdd(world, e, component.NewVelocity(rand.Float64()*100-50, rand.Float64()*100-50))
	mustAdd(world, e, component.NewSprite(component.Hex("#00ff88"), 15, 15, component.Circle))
	mustAdd(world, e, component.NewTag("decoration"))
}

// mustAdd attaches to an entity created moments ago; failure means a bug
func mustAdd(world *ecs.World, e ecs.Entity, c ecs.Component) {
	if _, err := world.AddComponent(e, c); err != nil {
		panic(err)
	}
}

// swirl rotates enemy velocities over time so they fly in circles
type swirl struct {
	ecs.BaseSystem
}

func newSwirl() *swirl {
	return &swirl{BaseSystem: ecs.NewBaseSystem(system.PriorityMovement - 10)}
}

func (s *swirl) Update(dt float64) {
	store := s.World().Store()
	for _, e := range store.Query(component.KindVelocity, component.KindTag) {
		tag, ok := ecs.Get[*component.Tag](store, e, component.KindTag)
		if !ok || !tag.Has("enemy") {
			continue
		}
		vel, ok := ecs.Get[*component.Velocity](store, e, component.KindVelocity)
		if !ok {
			continue
		}
		vel.Velocity = vel.Velocity.Rotate(dt * 2)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// the terminal is owned by tcell; keep log output out of it
	zapCfg.OutputPaths = []string{"tessera-demo.log"}
	zapCfg.ErrorOutputPaths = []string{"tessera-demo.log"}
	return zapCfg.Build()
}
