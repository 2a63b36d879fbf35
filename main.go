package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/imagesink"
	"github.com/df07/go-tiled-pathtracer/pkg/integrator"
	"github.com/df07/go-tiled-pathtracer/pkg/renderer"
	"github.com/df07/go-tiled-pathtracer/pkg/scene"
)

// previewWidth is the width of the PNG preview written next to each render
const previewWidth = 256

func main() {
	sceneName := flag.String("scene", "default", "Built-in scene: default, materials, normals or empty")
	out := flag.String("out", "", "Output image (.png, .ppm, .bmp, .tiff); default output/<scene>/render_<timestamp>.png")
	flag.Parse()

	logger := renderer.NewDefaultLogger()
	outputPath := *out
	if outputPath == "" {
		outputPath = createOutputPath(*sceneName, time.Now())
	}

	if err := run(*sceneName, outputPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the named scene and writes it to outputPath
func run(sceneName, outputPath string, logger core.Logger, cameraOverrides ...renderer.CameraConfig) error {
	selectedScene, err := createScene(sceneName, cameraOverrides...)
	if err != nil {
		return err
	}

	integratorInst, ok := integrator.New(selectedScene.Integrator)
	if !ok {
		return fmt.Errorf("scene %s: unknown integrator %q", sceneName, selectedScene.Integrator)
	}

	sink, err := imagesink.NewFileSink(outputPath)
	if err != nil {
		return err
	}
	sink.PreviewWidth = previewWidth

	logger.Printf("Rendering scene %q (%d objects)...\n", sceneName, selectedScene.ObjectCount())
	r := renderer.NewRenderer(selectedScene.World, selectedScene.CameraConfig, renderer.DefaultRenderConfig(), logger)
	r.SetIntegrator(integratorInst)
	stats, err := r.RenderTo(sink)
	if err != nil {
		return fmt.Errorf("render %s: %w", sceneName, err)
	}

	logger.Printf("Rendered %d pixels in %v using %d workers\n", stats.TotalPixels, stats.Duration, stats.Workers)
	logger.Printf("Render saved as %s (preview %s)\n", outputPath, imagesink.PreviewPath(outputPath))
	return nil
}

// createScene creates a built-in scene by name
func createScene(sceneName string, cameraOverrides ...renderer.CameraConfig) (*scene.Scene, error) {
	if sceneName == "" {
		return nil, fmt.Errorf("scene name is required")
	}
	return scene.Lookup(sceneName, cameraOverrides...)
}

// createOutputPath builds a timestamped PNG path under output/<scene>
func createOutputPath(sceneName string, now time.Time) string {
	if sceneName == "" {
		sceneName = "default"
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}
