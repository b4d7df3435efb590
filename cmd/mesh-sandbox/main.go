// Command mesh-sandbox is an interactive terminal editor for flat triangle meshes.
//
// Tab cycles vertex handles, arrows nudge the selection (or pan with nothing
// selected), the mouse picks and drags, +/- zoom, x deletes the selected
// mesh, w saves the scene, q quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-mesh/core"
	"github.com/lixenwraith/vi-mesh/engine"
	"github.com/lixenwraith/vi-mesh/parameter"
	"github.com/lixenwraith/vi-mesh/scene"
)

var (
	scenePath = flag.String("scene", "", "Scene file (.toml, .yaml); built-in grid when empty")
	savePath  = flag.String("save", "scene.toml", "Destination for w when no scene file was given")
	debugFlag = flag.Bool("debug", false, "Write debug log to "+parameter.SandboxLogDir+"/"+parameter.SandboxLogFile)
	fpsFlag   = flag.Int("fps", parameter.SandboxFPS, "Frame rate")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	sc, path, err := loadScene(*scenePath, *savePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	world := engine.NewWorld()
	engine.MustGetResource[*engine.LogResource](world.Resources).Logger = slog.Default()

	sb, err := newSandbox(world, screen, sc, path)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to spawn scene: %v\n", err)
		os.Exit(1)
	}

	sb.run(frameTime(*fpsFlag))
}

// frameTime converts a frame rate flag to a tick period
func frameTime(fps int) time.Duration {
	if fps <= 0 {
		return parameter.SandboxFrameTime
	}
	return time.Second / time.Duration(fps)
}

// loadScene returns the scene and the path w saves to
func loadScene(path, fallback string) (*scene.Scene, string, error) {
	if path == "" {
		return scene.Default(), fallback, nil
	}
	sc, err := scene.Load(path)
	if err != nil {
		return nil, "", err
	}
	return sc, path, nil
}
