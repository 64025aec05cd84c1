// Package ppm writes framebuffers as ASCII PPM (P3) pixel streams.
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/mfarrell/go-whitted-raytracer/pkg/core"
)

// Write encodes a row-major framebuffer (row 0 at the top) as a P3 image:
// header, then one "r g b" line per pixel. Each channel is gamma-corrected
// (gamma 2.0), clamped to [0, 0.999], and scaled to [0,255].
func Write(w io.Writer, pixels []core.Vec3, width, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("ppm: framebuffer has %d pixels, want %d", len(pixels), width*height)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for _, c := range pixels {
		fmt.Fprintf(bw, "%d %d %d\n", toChannel(c.X), toChannel(c.Y), toChannel(c.Z))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: writing pixel stream: %w", err)
	}
	return nil
}

// toChannel converts a linear color component to an integer channel value
func toChannel(v float64) int {
	if v <= 0 {
		return 0
	}
	v = math.Sqrt(v) // gamma 2.0
	if v > 0.999 {
		v = 0.999
	}
	return int(v * 256)
}
