// Command tilesim runs a level headless with a scripted player and logs the
// state transitions and the final snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/automoto/doomerang-tiles/assets"
	"github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/sim"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the built-in configuration")
	levelsDir := flag.String("levels", "", "Directory to load levels from (default: bundled levels)")
	levelName := flag.String("level", "", "Level to run (default: first by name)")
	ticks := flag.Int("ticks", 600, "Ticks to run as fast as possible; 0 runs in real time for -duration")
	duration := flag.Duration("duration", 10*time.Second, "Real-time run length when -ticks is 0")
	script := flag.String("script", "right:60,jump:1,right:120,idle:60", "Comma-separated action:ticks steps, repeated")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logrus.StandardLogger()
	lvl, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	log.SetLevel(lvl)

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	steps, err := ParseScript(*script)
	if err != nil {
		log.Fatalf("Invalid script: %v", err)
	}

	loader := assets.NewLevelLoader()
	if *levelsDir != "" {
		loader = assets.NewDirLevelLoader(os.DirFS(*levelsDir), ".")
	}
	levels, names, err := loader.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	name := *levelName
	if name == "" {
		name = names[0]
	}
	level, ok := levels[name]
	if !ok {
		log.Fatalf("Unknown level %q (have %s)", name, strings.Join(names, ", "))
	}

	world, err := sim.NewWorld(level, sim.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	loop := sim.NewLoop(world, config.Sim.TPS, log)
	driver := &Driver{Steps: steps}
	loop.OnTick = func(s sim.Snapshot) {
		logTransitions(log, driver.observe(s))
	}
	loop.SetPlayerIntent(driver.Next())

	if *ticks > 0 {
		for i := 0; i < *ticks; i++ {
			loop.Advance(1)
			loop.SetPlayerIntent(driver.Next())
		}
	} else {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		ctx, cancelTimeout := context.WithTimeout(ctx, *duration)
		defer cancelTimeout()

		go func() {
			ticker := time.NewTicker(time.Second / time.Duration(config.Sim.TPS))
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					loop.SetPlayerIntent(driver.Next())
				}
			}
		}()
		if err := loop.Run(ctx); err != nil {
			log.Fatal(err)
		}
	}

	printSnapshot(loop.Snapshot())
}

func logTransitions(log logrus.FieldLogger, changes []Transition) {
	for _, c := range changes {
		log.WithFields(logrus.Fields{
			"tick":   c.Tick,
			"entity": fmt.Sprintf("%s#%d", c.Kind, c.Index),
			"from":   c.From.String(),
			"to":     c.To.String(),
		}).Info("State changed")
	}
}

func printSnapshot(s sim.Snapshot) {
	fmt.Printf("level %s after %d ticks\n", s.Level, s.Tick)
	for _, e := range s.Entities {
		status := e.State.String()
		switch {
		case !e.Active():
			status = "removed"
		case e.Dying:
			status = "dying"
		}
		fmt.Printf("  %-12s #%d  %-17s pos=(%.1f, %.1f) support=%s grounded=%t\n",
			e.Kind, e.Index, status, e.Body.Position.X, e.Body.Position.Y, e.Support(), e.Grounded())
	}
}
