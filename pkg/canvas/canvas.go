// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package canvas draws common shapes onto a 2D drawing surface.
//
// Any type implementing Surface can be drawn on; *gg.Context from
// github.com/fogleman/gg does, and NewImage wraps one for in-memory
// rendering.
package canvas

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/happy-sdk/toolbelt"
)

// Surface is a path based 2D drawing context.
type Surface interface {
	NewSubPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	DrawArc(x, y, r, angle1, angle2 float64)
	DrawRectangle(x, y, w, h float64)
	ClosePath()
	Fill()
	Stroke()
	Clip()
	SetHexColor(hex string)
	SetLineWidth(w float64)
}

const (
	// DefaultColor is used by Rect when no color is set.
	DefaultColor = "#000000"
	// DefaultRadius is a sensible corner radius for Round.
	DefaultRadius = 5.0
)

// RectOptions controls Rect.
type RectOptions struct {
	// Color as a hex code, DefaultColor when empty.
	Color string
	// Stroke outlines the rectangle instead of filling it.
	Stroke bool
	// LineWidth of the outline, 1 when zero.
	LineWidth float64
}

// Image is an in-memory RGBA Surface.
type Image struct {
	*gg.Context
}

// NewImage returns a transparent w by h image surface.
func NewImage(w, h int) *Image {
	return &Image{Context: gg.NewContext(w, h)}
}

// Circle restricts further drawing on s to the circle inscribed in the
// w by h box at x, y. The radius is half of the smaller side.
func Circle(s Surface, x, y, w, h float64) error {
	if err := validate(s, x, y, w, h); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: invalid canvas dimensions %vx%v", toolbelt.ErrInvalidRange, w, h)
	}
	r := min(w, h) / 2
	s.NewSubPath()
	s.DrawArc(x+r, y+r, r, 0, 2*math.Pi)
	s.ClosePath()
	s.Clip()
	return nil
}

// Round restricts further drawing on s to a w by h rectangle at x, y with
// corners rounded by radius. A negative radius is treated as 0.
func Round(s Surface, x, y, w, h, radius float64) error {
	if err := validate(s, x, y, w, h, radius); err != nil {
		return err
	}
	r := max(radius, 0)
	s.NewSubPath()
	s.MoveTo(x+r, y)
	s.LineTo(x+w-r, y)
	s.QuadraticTo(x+w, y, x+w, y+r)
	s.LineTo(x+w, y+h-r)
	s.QuadraticTo(x+w, y+h, x+w-r, y+h)
	s.LineTo(x+r, y+h)
	s.QuadraticTo(x, y+h, x, y+h-r)
	s.LineTo(x, y+r)
	s.QuadraticTo(x, y, x+r, y)
	s.ClosePath()
	s.Clip()
	return nil
}

// Rect fills, or outlines when opts.Stroke is set, a w by h rectangle at
// x, y. Note the height before width argument order.
func Rect(s Surface, x, y, h, w float64, opts RectOptions) error {
	if err := validate(s, x, y, h, w, opts.LineWidth); err != nil {
		return err
	}
	if opts.Color == "" {
		opts.Color = DefaultColor
	}
	if opts.LineWidth == 0 {
		opts.LineWidth = 1
	}

	s.NewSubPath()
	s.SetHexColor(opts.Color)
	s.DrawRectangle(x, y, w, h)
	if opts.Stroke {
		s.SetLineWidth(opts.LineWidth)
		s.Stroke()
	} else {
		s.Fill()
	}
	return nil
}

func validate(s Surface, nums ...float64) error {
	if s == nil {
		return fmt.Errorf("%w: missing canvas surface", toolbelt.ErrTypeMismatch)
	}
	for _, n := range nums {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return fmt.Errorf("%w: expected a finite number, got %v", toolbelt.ErrNotANumber, n)
		}
	}
	return nil
}
