package main

import (
	"flag"
	"os"

	"github.com/automoto/doomerang-tiles/assets"
	"github.com/automoto/doomerang-tiles/client"
	"github.com/automoto/doomerang-tiles/config"
	"github.com/automoto/doomerang-tiles/fonts"
	"github.com/automoto/doomerang-tiles/systems"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "TOML file overriding the built-in configuration")
	levelsDir := flag.String("levels", "", "Directory to load levels from (default: bundled levels)")
	start := flag.String("level", "", "Level to start on (default: first by name)")
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
		log.WithField("path", *configPath).Info("Loaded config")
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	loader := assets.NewLevelLoader()
	if *levelsDir != "" {
		loader = assets.NewDirLevelLoader(os.DirFS(*levelsDir), ".")
	}
	levels, names, err := loader.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	// Initialize persistence; the game runs without saves if this fails
	var store systems.SaveStore
	if m, err := systems.OpenStore("doomerang-tiles"); err != nil {
		log.WithError(err).Warn("Could not initialize persistence")
	} else {
		store = m
	}

	game, err := client.NewGame(levels, names, *start, store, log)
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Run(game); err != nil {
		log.Fatal(err)
	}
}
