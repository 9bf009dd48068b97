package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/whitted-go/raytracer/pkg/renderer"
	"github.com/whitted-go/raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "showcase", "Scene: 'showcase', 'glass', 'csg' or 'mesh'")
	objPath := flag.String("obj", "", "OBJ file to load for the mesh scene")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	divide := flag.Int("divide", 0, "Group subdivision threshold for the mesh scene (0 disables)")
	serial := flag.Bool("serial", false, "Render on a single core")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Ray Tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  showcase - one of each primitive on a checkered floor")
		fmt.Println("  glass    - glass and mirror spheres under an area light")
		fmt.Println("  csg      - a rounded cube with a sphere carved out")
		fmt.Println("  mesh     - an OBJ file loaded with -obj, optionally subdivided with -divide")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene>/render_<timestamp>.<format>")
		return
	}

	var s *scene.Scene
	var err error
	switch *sceneType {
	case "showcase":
		s = scene.NewShowcaseScene(*width, *height)
	case "glass":
		s = scene.NewGlassScene(*width, *height)
	case "csg":
		s = scene.NewCSGScene(*width, *height)
	case "mesh":
		if *objPath == "" {
			fmt.Println("The mesh scene needs an OBJ file: -obj <path>")
			os.Exit(1)
		}
		s, err = scene.NewMeshScene(*objPath, *divide, *width, *height)
		if err != nil {
			fmt.Printf("Error building scene: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown scene type: %s. Using showcase scene.\n", *sceneType)
		s = scene.NewShowcaseScene(*width, *height)
		*sceneType = "showcase"
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s at %dx%d...\n", *sceneType, *width, *height)
	startTime := time.Now()
	var img *renderer.Canvas
	if *serial {
		img = s.Camera.Render(s.World)
	} else {
		img = s.Camera.RenderParallel(s.World)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))
	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	switch *format {
	case "ppm":
		err = img.WritePPM(file)
	default:
		err = img.WritePNG(file)
	}
	if err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
