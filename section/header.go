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

package section

import (
	"strings"

	"seehuhn.de/go/auditreport/draw"
)

// Header holds the contents of the title bar at the top of a report.
type Header struct {
	Title    string
	Subtitle string
	Tag      string // shown as a badge on the right
}

// TitleBar draws the coloured title bar across the top of the page.
func TitleBar(ctx *Context, h *Header) error {
	th := ctx.Theme
	c := ctx.Cursor
	x0 := ctx.Left()
	tagW := 0.0
	if h.Tag != "" {
		tagW = ctx.BadgeWidth(h.Tag) + 4
	}
	textW := ctx.Width() - tagW

	titleSize, subSize := th.Sizes.Title, th.Sizes.Body+1
	titleLines := ctx.Fonts.Wrap(h.Title, textW, titleSize, draw.Bold)
	subLines := ctx.Fonts.Wrap(h.Subtitle, textW, subSize, draw.Regular)
	barH := 8 + float64(len(titleLines))*lineHeight(titleSize) +
		float64(len(subLines))*lineHeight(subSize) + 6

	top := 0.0
	if !c.AtTop() {
		y, err := c.EnsureSpace(barH)
		if err != nil {
			return err
		}
		top = y
	}

	s := ctx.Surface()
	if top == 0 {
		s.Rect(0, 0, c.Width, barH, th.Primary)
	} else {
		s.RoundedRect(x0, top, ctx.Width(), barH, radius, th.Primary)
	}
	y := top + 8
	for _, line := range titleLines {
		s.Text(x0, baseline(y, titleSize), line, ctx.style(titleSize, draw.Bold, th.White), draw.AlignLeft)
		y += lineHeight(titleSize)
	}
	for _, line := range subLines {
		s.Text(x0, baseline(y, subSize), line, ctx.style(subSize, draw.Regular, th.Primary.Lighten(0.8)), draw.AlignLeft)
		y += lineHeight(subSize)
	}
	if h.Tag != "" {
		ctx.Badge(s, x0+ctx.Width()-tagW+4, top+8, h.Tag, th.Primary.Lighten(0.3))
	}

	if dy := top + barH + sectionGap - c.Y(); dy > 0 {
		c.Advance(dy)
	}
	return ctx.check("title bar")
}

// Field is one label/value pair of the metadata row.
type Field struct {
	Label string
	Value string
}

// MetadataRow draws the fields side by side, in equal columns.
func MetadataRow(ctx *Context, fields []Field) error {
	if len(fields) == 0 {
		ctx.skip("metadata")
		return nil
	}
	th := ctx.Theme
	x0 := ctx.Left()
	colW := ctx.Width() / float64(len(fields))
	small, body := th.Sizes.Small, th.Sizes.Body

	values := make([][]string, len(fields))
	maxLines := 1
	for i, f := range fields {
		values[i] = ctx.Fonts.Wrap(f.Value, colW-2*pad, body, draw.Bold)
		maxLines = max(maxLines, len(values[i]))
	}
	h := 2*pad + lineHeight(small) + float64(maxLines)*lineHeight(body)

	b := &block{}
	b.add(h, func(s *draw.Surface, y float64) {
		s.StrokeRect(x0, y, ctx.Width(), h, th.Border, 0.3)
		for i, f := range fields {
			x := x0 + float64(i)*colW + pad
			if i > 0 {
				s.Line(x-pad, y+1.5, x-pad, y+h-1.5, th.Border, 0.2)
			}
			yy := y + pad
			s.Text(x, baseline(yy, small), f.Label, ctx.style(small, draw.Regular, th.Muted), draw.AlignLeft)
			yy += lineHeight(small)
			for _, line := range values[i] {
				s.Text(x, baseline(yy, body), line, ctx.style(body, draw.Bold, th.Text), draw.AlignLeft)
				yy += lineHeight(body)
			}
		}
	})
	if err := ctx.place(b); err != nil {
		return err
	}
	ctx.Cursor.Advance(sectionGap)
	return ctx.check("metadata")
}

// SummaryPanel draws a heading followed by free text on a tinted panel.
// Nothing is drawn if the text is blank.
func SummaryPanel(ctx *Context, title, text string) error {
	if strings.TrimSpace(text) == "" {
		ctx.skip(title)
		return nil
	}
	th := ctx.Theme
	x0 := ctx.Left()
	body := th.Sizes.Body
	textX := x0 + accentW + 2*pad
	lines := ctx.Fonts.Wrap(text, ctx.Width()-accentW-3*pad, body, draw.Regular)

	b := &block{
		frame: func(s *draw.Surface, y, h float64) {
			s.Rect(x0, y, ctx.Width(), h, th.Panel)
			s.Rect(x0, y, accentW, h, th.Primary)
		},
	}
	b.add(pad, nil)
	b.textStrips(lines, textX, ctx.style(body, draw.Regular, th.Text))
	b.add(pad, nil)

	if err := Heading(ctx, title, min(b.height(), 3*lineHeight(body)+2*pad)); err != nil {
		return err
	}
	if err := ctx.place(b); err != nil {
		return err
	}
	ctx.Cursor.Advance(sectionGap)
	return ctx.check(title)
}
