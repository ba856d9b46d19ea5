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

// Package section contains the renderers for the building blocks of a
// report: header, score panels, lists, tables and glossaries.
//
// Every renderer takes a [Context], draws onto the current page and moves
// the pagination cursor down.  Renderers do not depend on each other.
// Renderers for list-like sections draw nothing, not even a heading,
// when the list is empty.
package section

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"seehuhn.de/go/auditreport/draw"
	"seehuhn.de/go/auditreport/paginate"
	"seehuhn.de/go/auditreport/theme"
)

// Layout constants, in mm.
const (
	sectionGap = 6.0
	headingH   = 9.0
	pad        = 2.5
	rowGap     = 1.5
	accentW    = 1.2
	badgeH     = 4.6
	badgePad   = 2.0
	radius     = 1.5
)

// Pages gives access to the pages of a document under construction.
type Pages interface {
	paginate.Allocator

	// Surface returns the drawing surface for the given 1-based page.
	Surface(page int) *draw.Surface
}

// Context is the state shared by all renderers of one document.
type Context struct {
	Pages  Pages
	Cursor *paginate.Cursor
	Theme  *theme.Theme
	Fonts  *draw.Fonts
	Log    *zap.Logger

	upper cases.Caser
}

// NewContext bundles the state for rendering one document.
// If logger is nil, nothing is logged.
func NewContext(pages Pages, cursor *paginate.Cursor, th *theme.Theme, fonts *draw.Fonts, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		Pages:  pages,
		Cursor: cursor,
		Theme:  th,
		Fonts:  fonts,
		Log:    logger,
		upper:  cases.Upper(language.English),
	}
}

// Surface returns the drawing surface of the current page.
func (ctx *Context) Surface() *draw.Surface {
	return ctx.Pages.Surface(ctx.Cursor.Page())
}

// Left returns the x coordinate of the left margin.
func (ctx *Context) Left() float64 {
	return ctx.Cursor.MarginLeft
}

// Width returns the width of the content area.
func (ctx *Context) Width() float64 {
	return ctx.Cursor.ContentWidth()
}

func (ctx *Context) check(what string) error {
	if err := ctx.Surface().Err(); err != nil {
		return fmt.Errorf("%s: page %d: %w", what, ctx.Cursor.Page(), err)
	}
	return nil
}

func (ctx *Context) skip(what string) {
	ctx.Log.Debug("section skipped", zap.String("section", what))
}

func (ctx *Context) style(size float64, w draw.Weight, c theme.RGB) draw.TextStyle {
	return draw.TextStyle{Size: size, Weight: w, Color: c}
}

// lineHeight returns the distance between baselines for the given size.
func lineHeight(size float64) float64 {
	return draw.LineHeight(size)
}

// baseline returns the baseline of a line of text whose line box starts
// at y.
func baseline(y, size float64) float64 {
	return y + size/draw.PtPerMM*0.95
}

// A strip is a horizontal slice of a block.  Blocks are kept on one page
// where possible, and are only ever split between strips.
type strip struct {
	h    float64
	draw func(s *draw.Surface, y float64)
}

// A block is an atomic chunk of content.  The frame, if set, is drawn
// behind each part of the block which ends up on one page.
type block struct {
	strips []strip
	frame  func(s *draw.Surface, y, h float64)
}

func (b *block) add(h float64, fn func(s *draw.Surface, y float64)) {
	b.strips = append(b.strips, strip{h: h, draw: fn})
}

func (b *block) height() float64 {
	var h float64
	for _, st := range b.strips {
		h += st.h
	}
	return h
}

// place draws a block at the cursor position and advances the cursor.
// If the block is taller than a page, it is split between strips.
func (ctx *Context) place(b *block) error {
	_, _, err := ctx.placeAt(b)
	return err
}

// placeAt is like place, but also returns the page and the y coordinate
// where the first strip of the block was drawn.  For an empty block, the
// cursor position is returned.
func (ctx *Context) placeAt(b *block) (int, float64, error) {
	c := ctx.Cursor
	total := b.height()
	if total <= 0 {
		return c.Page(), c.Y(), nil
	}

	if c.Fits(total) {
		y, err := c.EnsureSpace(total)
		if err != nil {
			return 0, 0, err
		}
		page := c.Page()
		ctx.drawStrips(b, b.strips, y, total)
		c.Advance(total)
		return page, y, nil
	}

	page, first := 0, 0.0
	rest := b.strips
	for len(rest) > 0 {
		y, err := c.EnsureSpace(rest[0].h)
		if err != nil {
			return 0, 0, err
		}
		if page == 0 {
			page, first = c.Page(), y
		}
		n, h := 1, rest[0].h
		for n < len(rest) && y+h+rest[n].h <= c.Bottom() {
			h += rest[n].h
			n++
		}
		ctx.drawStrips(b, rest[:n], y, h)
		c.Advance(h)
		rest = rest[n:]
	}
	return page, first, nil
}

func (ctx *Context) drawStrips(b *block, strips []strip, y, h float64) {
	s := ctx.Surface()
	if b.frame != nil {
		b.frame(s, y, h)
	}
	for _, st := range strips {
		if st.draw != nil {
			st.draw(s, y)
		}
		y += st.h
	}
}

// textStrips appends one strip per line of text.
func (b *block) textStrips(lines []string, x float64, style draw.TextStyle) {
	lh := lineHeight(style.Size)
	for _, line := range lines {
		b.add(lh, func(s *draw.Surface, y float64) {
			s.Text(x, baseline(y, style.Size), line, style, draw.AlignLeft)
		})
	}
}

// Heading draws a section heading.  The heading is kept on the same page
// as the following keepWith mm of content.
func Heading(ctx *Context, title string, keepWith float64) error {
	c := ctx.Cursor
	need := headingH
	if c.Fits(headingH + keepWith) {
		need += keepWith
	}
	y, err := c.EnsureSpace(need)
	if err != nil {
		return err
	}

	th := ctx.Theme
	s := ctx.Surface()
	size := th.Sizes.Heading
	s.Rect(ctx.Left(), y+0.8, accentW, headingH-3, th.Primary)
	s.Text(ctx.Left()+accentW+2, baseline(y+0.8, size), title,
		ctx.style(size, draw.Bold, th.Primary), draw.AlignLeft)
	s.Line(ctx.Left(), y+headingH-1.2, ctx.Left()+ctx.Width(), y+headingH-1.2, th.Border, 0.2)
	c.Advance(headingH)
	return ctx.check(title)
}

// badgeText returns the upper-cased badge label, shortened so that no
// badge takes more than a third of the content width.
func (ctx *Context) badgeText(label string) string {
	maxW := ctx.Width()/3 - 2*badgePad
	return ctx.Fonts.Truncate(ctx.upper.String(label), maxW, ctx.Theme.Sizes.Badge, draw.Bold)
}

// BadgeWidth returns the width of a badge showing the given label.
func (ctx *Context) BadgeWidth(label string) float64 {
	text := ctx.badgeText(label)
	return ctx.Fonts.MeasureText(text, ctx.Theme.Sizes.Badge, draw.Bold) + 2*badgePad
}

// Badge draws a filled label chip with its top-left corner at (x, y).
// The label is upper-cased, and long labels are shortened.  The return
// value is the width of the badge.
func (ctx *Context) Badge(s *draw.Surface, x, y float64, label string, fill theme.RGB) float64 {
	text := ctx.badgeText(label)
	size := ctx.Theme.Sizes.Badge
	w := ctx.Fonts.MeasureText(text, size, draw.Bold) + 2*badgePad
	s.RoundedRect(x, y, w, badgeH, badgeH/2, fill)
	s.Text(x+badgePad, y+badgeH/2+size/draw.PtPerMM*0.36, text,
		ctx.style(size, draw.Bold, ctx.Theme.White), draw.AlignLeft)
	return w
}
