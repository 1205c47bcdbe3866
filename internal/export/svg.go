package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/astrosim/internal/orbit"
)

// SVGOptions control OrbitSVG output.
type SVGOptions struct {
	Width, Height int
	Stroke        string // orbit path colour
	Accent        string // velocity arrow colour
	Arrows        int    // number of velocity arrows around the orbit
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:  600,
		Height: 600,
		Stroke: "#00ffff",
		Accent: "#ff00ff",
		Arrows: 12,
	}
}

// OrbitSVG draws the sampled orbit with the Sun at the focus and evenly
// spaced velocity arrows. Both axes share one scale so ellipses keep their
// shape.
func OrbitSVG(frames []orbit.Frame, opts SVGOptions) string {
	if len(frames) < 2 {
		return ""
	}

	minX, maxX := 0.0, 0.0
	minY, maxY := 0.0, 0.0
	maxSpeed := 0.0
	for _, f := range frames {
		minX = math.Min(minX, f.Pos.X)
		maxX = math.Max(maxX, f.Pos.X)
		minY = math.Min(minY, f.Pos.Y)
		maxY = math.Max(maxY, f.Pos.Y)
		maxSpeed = math.Max(maxSpeed, f.Speed())
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span == 0 {
		span = 1
	}
	pad := span * 0.1
	scale := math.Min(float64(opts.Width), float64(opts.Height)) / (span + 2*pad)
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2

	project := func(x, y float64) (float64, float64) {
		px := float64(opts.Width)/2 + (x-cx)*scale
		py := float64(opts.Height)/2 - (y-cy)*scale
		return px, py
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		opts.Width, opts.Height, opts.Width, opts.Height, opts.Stroke))

	for i, f := range frames {
		x, y := project(f.Pos.X, f.Pos.Y)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(" Z\"/>\n")

	sunX, sunY := project(0, 0)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="6" fill="#ffcc00"/>
`, sunX, sunY))

	if opts.Arrows > 0 && maxSpeed > 0 {
		every := len(frames) / opts.Arrows
		if every < 1 {
			every = 1
		}
		arrowLen := span * 0.15
		sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1.2" fill="%s">
`, opts.Accent, opts.Accent))
		for i := 0; i < len(frames); i += every {
			f := frames[i]
			x0, y0 := project(f.Pos.X, f.Pos.Y)
			k := arrowLen / maxSpeed
			x1, y1 := project(f.Pos.X+f.Vel.X*k, f.Pos.Y+f.Vel.Y*k)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5"/><line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x0, y0, x0, y0, x1, y1))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
