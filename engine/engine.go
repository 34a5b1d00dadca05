package engine

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
	"github.com/spaghettifunk/camrig/engine/renderer/raster"
	"github.com/spaghettifunk/camrig/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	canvas        *raster.Canvas
	renderer      *renderer.Renderer
	systemManager *systems.SystemManager
	width         uint32
	height        uint32
	clock         *core.Clock
	metrics       *core.Metrics
	lastTime      float64
	frameNumber   uint64
}

func New(g *Game) (*Engine, error) {
	cfg := g.ApplicationConfig
	if err := cfg.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	if cfg.LogLevel != "" {
		if err := core.SetLogLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	handedness, _ := math.ParseHandedness(cfg.Handedness)

	canvas := raster.New(cfg.Background)
	sm, err := systems.NewSystemManager(&systems.SystemManagerConfig{
		MaxCameraCount: cfg.MaxCameraCount,
		Handedness:     handedness,
		RigDirectory:   cfg.RigDirectory,
	})
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	canvas.SetJobSubmitter(sm.JobSystem())

	return &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		canvas:        canvas,
		renderer:      renderer.New(canvas),
		systemManager: sm,
		clock:         core.NewClock(),
		metrics:       core.NewMetrics(),
		width:         cfg.StartWidth,
		height:        cfg.StartHeight,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	// The registry may already exist when several engines share a process.
	core.EventInitialize()
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)
	core.EventRegister(core.EVENT_CODE_CAMERA_RIG_LOADED, e, e.onRigLoaded)

	cfg := e.gameInstance.ApplicationConfig
	if err := e.renderer.Initialize(&metadata.RendererBackendConfig{
		ApplicationName: cfg.Name,
		OutputDirectory: cfg.OutputDirectory,
	}, e.width, e.height); err != nil {
		return err
	}

	e.gameInstance.SystemManager = e.systemManager
	e.gameInstance.Renderer = e.renderer
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			core.LogError("Failed to initialize game: %s", err)
			return err
		}
	}
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.isRunning = true
	e.currentStage = EngineStageInitialized
	return nil
}

/**
 * @brief Runs the frame loop until a quit event arrives or the configured
 * number of frames has been drawn.
 */
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine must be initialized before running")
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	maxFrames := e.gameInstance.ApplicationConfig.Frames
	for e.isRunning {
		if maxFrames > 0 && e.frameNumber >= maxFrames {
			e.isRunning = false
			break
		}
		if e.isSuspended {
			time.Sleep(time.Millisecond)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime
		frameStart := time.Now()

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("Game update failed, shutting down: %s", err)
				e.isRunning = false
				return err
			}
		}

		packet := &metadata.RenderPacket{
			DeltaTime:   delta,
			FrameNumber: e.frameNumber,
		}
		if e.gameInstance.FnRender != nil {
			if err := e.gameInstance.FnRender(packet, delta); err != nil {
				core.LogError("Game render failed, shutting down: %s", err)
				e.isRunning = false
				return err
			}
		}
		if err := e.renderer.DrawFrame(packet); err != nil {
			e.isRunning = false
			return err
		}

		e.metrics.Update(time.Since(frameStart).Seconds())
		e.frameNumber++
		e.lastTime = currentTime
	}

	fps, frameMS := e.metrics.Frame()
	core.LogInfo("Stopped after %d frames (%.0f fps, %.3f ms/frame)", e.frameNumber, fps, frameMS)
	return nil
}

// Resize changes the render target size. A zero dimension suspends the frame loop.
func (e *Engine) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		core.LogInfo("Render target minimized, suspending application.")
		e.isSuspended = true
		return nil
	}
	if e.isSuspended {
		core.LogInfo("Render target restored, resuming application.")
		e.isSuspended = false
	}
	if width == e.width && height == e.height {
		return nil
	}
	return e.renderer.OnResize(width, height)
}

// Quit fires EVENT_CODE_APPLICATION_QUIT; the loop stops before the next frame.
func (e *Engine) Quit() {
	core.EventFire(core.EVENT_CODE_APPLICATION_QUIT, e, core.EventContext{})
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	core.EventUnregister(core.EVENT_CODE_APPLICATION_QUIT, e)
	core.EventUnregister(core.EVENT_CODE_RESIZED, e)
	core.EventUnregister(core.EVENT_CODE_CAMERA_RIG_LOADED, e)
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	return e.renderer.Shutdown()
}

// GetFramebufferSize returns the width and height (in this order)
// of the render target.
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

// FrameCount returns the number of frames drawn so far.
func (e *Engine) FrameCount() uint64 {
	return e.frameNumber
}

func (e *Engine) Canvas() *raster.Canvas {
	return e.canvas
}

func (e *Engine) onEvent(code core.SystemEventCode, sender, listener interface{}, context core.EventContext) bool {
	if code == core.EVENT_CODE_APPLICATION_QUIT {
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onResized(code core.SystemEventCode, sender, listener interface{}, context core.EventContext) bool {
	if sender != e.renderer {
		return false
	}
	e.width, e.height = context.Data.U32[0], context.Data.U32[1]
	core.LogDebug("Render target resize: %d, %d", e.width, e.height)
	if e.gameInstance.FnOnResize != nil {
		if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
			core.LogError(err.Error())
		}
	}
	// Other listeners may also care about resizes.
	return false
}

func (e *Engine) onRigLoaded(code core.SystemEventCode, sender, listener interface{}, context core.EventContext) bool {
	core.LogInfo("Camera rig '%s' loaded from '%s'", context.Data.C[0], context.Data.C[1])
	return false
}
