package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/shrinkmask/shrink"
)

// Demo of training-target generation. Input on stdin should be newline
// separated points in the form "x y", with each polygon separated by an
// extra newline. A polygon's first line may instead be a header of the form
// "height 0.8" or "ignore" (or both, space separated) to set the instance's
// confidence height or mark it as excluded from training.
//
// The generated shrink mask, threshold map and weight map are written as
// grayscale PNGs into the output directory.
var (
	width   = kingpin.Flag("width", "Raster width in pixels.").Default("640").Int()
	height  = kingpin.Flag("height", "Raster height in pixels.").Default("640").Int()
	ratio   = kingpin.Flag("shrink", "Global shrink ratio.").Default("0.4").Float64()
	outDir  = kingpin.Flag("out", "Directory for output PNGs.").Default("/tmp").String()
	preview = kingpin.Flag("preview", "Cat the shrink mask to the terminal (iTerm2).").Bool()
)

func main() {
	kingpin.Parse()

	instances := readInstances(os.Stdin)
	fmt.Printf("Read %d instances\n", len(instances))

	targets, err := shrink.GenerateTargets(*width, *height, instances, *ratio)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generating targets: %v\n", err)
		os.Exit(1)
	}
	if targets.Dropped > 0 {
		fmt.Printf("Dropped %d collapsed instances\n", targets.Dropped)
	}

	outputs := map[string]*shrink.Raster{
		"shrink_mask.png":   targets.ShrinkMask,
		"threshold_map.png": targets.ThresholdMap,
		"training_mask.png": targets.TrainingMask,
		"weight_map.png":    targets.WeightMap,
	}
	for name, raster := range outputs {
		path := filepath.Join(*outDir, name)
		if err := raster.SavePNG(path); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Println("Wrote", path)
	}

	if *preview {
		shrink.Preview(filepath.Join(*outDir, "shrink_mask.png"))
	}
}

func readInstances(in *os.File) []shrink.Instance {
	instances := []shrink.Instance{}
	scanner := bufio.NewScanner(in)
	current := newInstance()
	flush := func() {
		if len(current.Polygon) > 0 {
			instances = append(instances, current)
		}
		current = newInstance()
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current polygon.
		if line == "" {
			flush()
			continue
		}

		if parseHeader(line, &current) {
			continue
		}
		current.Polygon = append(current.Polygon, parsePoint(line))
	}
	flush()
	return instances
}

func newInstance() shrink.Instance {
	return shrink.Instance{Height: 1}
}

// parseHeader handles "height 0.8" / "ignore" lines. Returns false if the
// line isn't a header, in which case it's a point.
func parseHeader(line string, inst *shrink.Instance) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "height":
		if len(fields) > 1 {
			h, err := strconv.ParseFloat(fields[1], 64)
			if err == nil {
				inst.Height = h
			}
		}
		return true
	case "ignore":
		inst.Ignore = true
		return true
	}
	return false
}

func parsePoint(line string) shrink.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return shrink.Point{X: x, Y: y}
}
