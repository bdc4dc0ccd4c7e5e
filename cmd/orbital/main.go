package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orbital/audio"
	"github.com/lixenwraith/orbital/config"
	"github.com/lixenwraith/orbital/metrics"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "orbital: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORBITAL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	// Audio is optional
	sound := audio.NewSoundManager()
	sound.SetMuted(cfg.Mute)
	if !cfg.Mute {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}
	defer sound.Cleanup()

	viewer, err := NewViewer(screen, cfg, sound)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "orbital: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.MetricsAddr != "" {
		collector := metrics.NewCollector()
		viewer.model.SetObserver(collector)
		go func() {
			if err := collector.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Printf("Metrics server: %v", err)
			}
		}()
		log.Printf("Metrics on %s/metrics", cfg.MetricsAddr)
	}

	log.Printf("Starting %s panel=%s", viewer.model.StateLabel(), cfg.Panel)
	viewer.run()
}
