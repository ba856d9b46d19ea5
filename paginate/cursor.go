// seehuhn.de/go/auditreport - render audit and eligibility reports as PDF
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package paginate tracks the vertical position while a report is laid
// out, and starts new pages when content does not fit.
package paginate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Allocator starts new pages.  The previous page stays open, so that
// footers can be added once the total number of pages is known.
type Allocator interface {
	NewPage() error
}

// Geometry describes the page size and margins, in mm.
type Geometry struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
}

// A4 is the portrait A4 page used for all reports.
var A4 = Geometry{
	Width:        210,
	Height:       297,
	MarginTop:    18,
	MarginBottom: 20,
	MarginLeft:   15,
	MarginRight:  15,
}

// ContentWidth returns the width between the left and right margins.
func (g Geometry) ContentWidth() float64 {
	return g.Width - g.MarginLeft - g.MarginRight
}

// Usable returns the height between the top and bottom margins.
func (g Geometry) Usable() float64 {
	return g.Height - g.MarginTop - g.MarginBottom
}

// Cursor is the running position within a document.
type Cursor struct {
	Geometry

	page  int
	y     float64
	alloc Allocator
	log   *zap.Logger
}

// New returns a cursor at the top of page 1.  The allocator must already
// have provided the first page.
func New(g Geometry, alloc Allocator, logger *zap.Logger) (*Cursor, error) {
	if g.Usable() <= 0 {
		return nil, errors.New("margins leave no room for content")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cursor{
		Geometry: g,
		page:     1,
		y:        g.MarginTop,
		alloc:    alloc,
		log:      logger,
	}, nil
}

// Page returns the current 1-based page number.
func (c *Cursor) Page() int {
	return c.page
}

// Y returns the current vertical position, measured from the top edge of
// the page.
func (c *Cursor) Y() float64 {
	return c.y
}

// Bottom returns the lowest position content may reach.
func (c *Cursor) Bottom() float64 {
	return c.Height - c.MarginBottom
}

// AtTop reports whether nothing has been placed on the current page yet.
func (c *Cursor) AtTop() bool {
	return c.y <= c.MarginTop
}

// Fits reports whether a chunk of the given height fits on an empty page.
// Taller chunks must be split by the caller.
func (c *Cursor) Fits(height float64) bool {
	return height <= c.Usable()
}

// Advance moves the cursor down.
func (c *Cursor) Advance(dy float64) {
	c.y += dy
}

// EnsureSpace makes sure that a chunk of the given height can be placed
// at the current position.  If the chunk does not fit, a new page is
// started.  The return value is the vertical position at which the chunk
// should be drawn.
//
// No page is started if the cursor is already at the top of a page, even
// if the chunk is taller than the page.
func (c *Cursor) EnsureSpace(needed float64) (float64, error) {
	if c.y+needed <= c.Bottom() || c.AtTop() {
		return c.y, nil
	}
	c.log.Debug("page break",
		zap.Int("page", c.page),
		zap.Float64("y", c.y),
		zap.Float64("needed", needed))
	err := c.NewPage()
	if err != nil {
		return 0, err
	}
	return c.y, nil
}

// NewPage starts a new page unconditionally.
func (c *Cursor) NewPage() error {
	err := c.alloc.NewPage()
	if err != nil {
		return fmt.Errorf("page %d: %w", c.page+1, err)
	}
	c.page++
	c.y = c.MarginTop
	return nil
}
