package shrink

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/shrinkmask/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 10

// DbgDrawRegions renders a set of shrunk regions over their source polygons
// and cats the result to the terminal, for eyeballing how much a given
// shrink ratio actually eats.
func DbgDrawRegions(width, height int, polys, regions []Polygon) {
	c := gg.NewContext(width+dbgDrawPadding*2, height+dbgDrawPadding*2)
	c.SetRGB(0, 0, 0)
	c.Clear()
	c.Translate(dbgDrawPadding, dbgDrawPadding)

	c.SetLineWidth(1)
	for _, poly := range polys {
		tracePolygon(c, poly)
		c.SetRGB(0.4, 0.4, 0.4)
		c.Stroke()
	}
	for _, region := range regions {
		tracePolygon(c, region)
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}
	for _, region := range regions {
		if len(region) == 0 {
			continue
		}
		c.SetRGB(1, 1, 1)
		c.DrawString(dbg.Name(&region[0]), region[0].X, region[0].Y)
	}

	c.SavePNG("/tmp/shrink_regions.png")
	imgcat.CatFile("/tmp/shrink_regions.png", os.Stdout)
}

func tracePolygon(c *gg.Context, poly Polygon) {
	if len(poly) == 0 {
		return
	}
	c.MoveTo(poly[0].X, poly[0].Y)
	for _, p := range poly[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// DbgDump prints the raster to stdout, one character per cell, colored by
// value band. Only sane for small rasters.
func (r *Raster) DbgDump() {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			v := r.data[y*r.width+x]
			var cell string
			switch {
			case v >= 0.75:
				cell = aurora.Green("#").String()
			case v >= 0.25:
				cell = aurora.Cyan("+").String()
			case v > 0:
				cell = aurora.Red(".").String()
			default:
				cell = " "
			}
			fmt.Print(cell)
		}
		fmt.Println()
	}
}

// SavePNG writes the raster as a grayscale PNG, mapping [0, 1] to black
// through white.
func (r *Raster) SavePNG(path string) error {
	c := gg.NewContext(r.width, r.height)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			v := clamp01(r.data[y*r.width+x])
			c.SetRGB(v, v, v)
			c.SetPixel(x, y)
		}
	}
	return c.SavePNG(path)
}

// Preview cats a previously written image to the terminal.
func Preview(path string) {
	imgcat.CatFile(path, os.Stdout)
}
