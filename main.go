/*
Headless demo of the camera rig: it orbits a look-at camera around a few
wireframes, pans a 2D HUD camera and writes every frame as a PNG.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/camrig/engine"
	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/testbed"
)

func main() {
	configPath := flag.String("config", "", "application config file (.toml, .yaml)")
	output := flag.String("out", "", "directory frames are written to")
	frames := flag.Uint64("frames", 0, "number of frames to render, overrides the config")
	flag.Parse()

	var config *engine.ApplicationConfig
	if *configPath != "" {
		c, err := engine.LoadApplicationConfig(*configPath)
		if err != nil {
			core.LogFatal("failed to load config: %s", err)
		}
		config = c
	}
	tb := testbed.NewTestGame(config)
	if *output != "" {
		tb.ApplicationConfig.OutputDirectory = *output
	}
	if *frames > 0 {
		tb.ApplicationConfig.Frames = *frames
	}

	engine, err := engine.New(tb.Game)
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// stop the loop on sigterm and friends; shutdown happens once Run returns
	go func() {
		<-sigCh
		engine.Quit()
	}()

	runErr := engine.Run()
	if err := engine.Shutdown(); err != nil {
		core.LogError("shutdown failed: %s", err)
	}
	if runErr != nil {
		panic(runErr)
	}
}
