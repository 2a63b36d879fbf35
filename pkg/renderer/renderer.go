package renderer

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/integrator"
)

// ErrRenderFailed is returned when any tile fails; no image is produced
var ErrRenderFailed = errors.New("render failed")

// RenderState tracks where a render is in its lifecycle
type RenderState int

const (
	StateIdle        RenderState = iota // nothing started
	StateInitialized                    // camera frame computed
	StateDispatched                     // all tiles submitted
	StateJoining                        // waiting for tiles to finish
	StateComplete                       // buffer fully written
	StateFailed                         // a tile failed; buffer discarded
)

func (s RenderState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitialized:
		return "initialized"
	case StateDispatched:
		return "dispatched"
	case StateJoining:
		return "joining"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("RenderState(%d)", int(s))
	}
}

// RenderConfig contains configuration for tiled rendering
type RenderConfig struct {
	TileSize   int // Edge length of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// ImageSink persists a finished image. pix is row-major with stride bytes per row.
type ImageSink interface {
	Write(width, height, channels int, pix []byte, stride int) error
}

// Renderer renders a world through a camera into a framebuffer, splitting the
// image into tiles that are rendered in parallel. A Renderer runs one render
// at a time.
type Renderer struct {
	world        core.Hittable
	cameraConfig CameraConfig
	integrator   integrator.Integrator
	config       RenderConfig
	logger       core.Logger
	state        RenderState
}

// NewRenderer creates a renderer using path tracing
func NewRenderer(world core.Hittable, cameraConfig CameraConfig, config RenderConfig, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Renderer{
		world:        world,
		cameraConfig: cameraConfig,
		integrator:   integrator.NewPathTracingIntegrator(),
		config:       config,
		logger:       logger,
		state:        StateIdle,
	}
}

// SetIntegrator replaces the light transport algorithm
func (r *Renderer) SetIntegrator(integratorInst integrator.Integrator) {
	r.integrator = integratorInst
}

// State returns the current lifecycle state
func (r *Renderer) State() RenderState {
	return r.state
}

func (r *Renderer) setState(state RenderState) {
	r.state = state
	r.logger.Printf("Render state: %s\n", state)
}

// Render renders the full image. The returned framebuffer is only produced
// once every tile has finished; if any tile fails the whole render fails.
func (r *Renderer) Render() (*Framebuffer, RenderStats, error) {
	camera := NewCamera(r.cameraConfig)
	width, height := camera.ImageWidth(), camera.ImageHeight()
	r.setState(StateInitialized)

	fb := NewFramebuffer(width, height)
	tiles := NewTileGrid(width, height, r.config.TileSize)
	tileRenderer := NewTileRenderer(r.world, camera, r.integrator)

	var completed atomic.Int64
	progress := newProgressReporter(r.logger, len(tiles))

	workerPool := NewWorkerPool(r.config.NumWorkers, len(tiles), func(task TileTask) (TileStats, error) {
		stats := tileRenderer.RenderTile(fb.TileWriter(task.Tile.Bounds), task.Tile.Sampler)
		progress.report(int(completed.Add(1)))
		return stats, nil
	})

	r.logger.Printf("Rendering %dx%d, %d samples/pixel, max depth %d, %d tiles on %d workers...\n",
		width, height, camera.SamplesPerPixel(), camera.MaxDepth(), len(tiles), workerPool.GetNumWorkers())

	startTime := time.Now()
	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: taskID})
	}
	r.setState(StateDispatched)

	r.setState(StateJoining)
	results, err := workerPool.Wait()
	if err != nil {
		r.setState(StateFailed)
		return nil, RenderStats{}, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}

	stats := RenderStats{
		SamplesPerPixel: camera.SamplesPerPixel(),
		Tiles:           len(tiles),
		Workers:         workerPool.GetNumWorkers(),
		Duration:        time.Since(startTime),
	}
	for _, result := range results {
		stats.Add(result.Stats)
	}

	r.setState(StateComplete)
	r.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)

	return fb, stats, nil
}

// RenderTo renders the image and hands the finished buffer to sink
func (r *Renderer) RenderTo(sink ImageSink) (RenderStats, error) {
	fb, stats, err := r.Render()
	if err != nil {
		return RenderStats{}, err
	}

	if err := sink.Write(fb.Width, fb.Height, fb.Channels, fb.Pix, fb.Stride()); err != nil {
		return RenderStats{}, fmt.Errorf("write image: %w", err)
	}
	return stats, nil
}

// progressReporter logs tile completion roughly every 10%
type progressReporter struct {
	logger core.Logger
	total  int
	step   int
}

func newProgressReporter(logger core.Logger, total int) *progressReporter {
	return &progressReporter{logger: logger, total: total, step: max(1, total/10)}
}

func (p *progressReporter) report(done int) {
	if done%p.step == 0 || done == p.total {
		p.logger.Printf("Tiles remaining: %d of %d\n", p.total-done, p.total)
	}
}
