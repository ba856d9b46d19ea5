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
	"seehuhn.de/go/auditreport/model"
)

// LanguageFixes draws a two-column table which contrasts the original
// wording with the suggested replacement.  The column headings are
// repeated at the top of every page the table spans.
func LanguageFixes(ctx *Context, fixes []model.LanguageFix) error {
	const title = "Language Corrections"
	if len(fixes) == 0 {
		ctx.skip(title)
		return nil
	}

	th := ctx.Theme
	c := ctx.Cursor
	x0 := ctx.Left()
	w := ctx.Width()
	colW := w / 2
	cellW := colW - 2*pad
	body, small := th.Sizes.Body, th.Sizes.Small
	lh := lineHeight(body)
	headH := lineHeight(small) + 2*pad

	drawHead := func(y float64) {
		s := ctx.Surface()
		s.Rect(x0, y, w, headH, th.Primary)
		st := ctx.style(small, draw.Bold, th.White)
		s.Text(x0+pad, baseline(y+pad, small), "ORIGINAL", st, draw.AlignLeft)
		s.Text(x0+colW+pad, baseline(y+pad, small), "SUGGESTED", st, draw.AlignLeft)
		c.Advance(headH)
	}

	rows := make([]*block, len(fixes))
	for i, fix := range fixes {
		rows[i] = diffRow(ctx, fix, i%2 == 1, cellW, lh)
	}

	if err := Heading(ctx, title, headH+rows[0].height()); err != nil {
		return err
	}

	headPage := 0
	ensure := func(h float64) error {
		if c.Page() != headPage {
			h += headH
		}
		if _, err := c.EnsureSpace(h); err != nil {
			return err
		}
		if c.Page() != headPage {
			drawHead(c.Y())
			headPage = c.Page()
		}
		return nil
	}

	for _, row := range rows {
		total := row.height()
		if c.Fits(headH + total) {
			if err := ensure(total); err != nil {
				return err
			}
			ctx.drawStrips(row, row.strips, c.Y(), total)
			c.Advance(total)
			continue
		}

		rest := row.strips
		for len(rest) > 0 {
			if err := ensure(rest[0].h); err != nil {
				return err
			}
			y := c.Y()
			n, h := 1, rest[0].h
			for n < len(rest) && y+h+rest[n].h <= c.Bottom() {
				h += rest[n].h
				n++
			}
			ctx.drawStrips(row, rest[:n], y, h)
			c.Advance(h)
			rest = rest[n:]
		}
	}
	c.Advance(sectionGap)
	return ctx.check(title)
}

// diffRow lays out one row of the language table.  The texts of the two
// columns are wrapped independently, and the row is as tall as the
// longer of the two.
func diffRow(ctx *Context, fix model.LanguageFix, odd bool, cellW, lh float64) *block {
	th := ctx.Theme
	x0 := ctx.Left()
	w := ctx.Width()
	colW := w / 2
	body, small := th.Sizes.Body, th.Sizes.Small

	left := ctx.Fonts.Wrap(fix.Original, cellW, body, draw.Regular)
	right := ctx.Fonts.Wrap(fix.Suggested, cellW, body, draw.Bold)
	bg := th.White
	if odd {
		bg = th.Panel
	}

	b := &block{
		frame: func(s *draw.Surface, y, h float64) {
			s.Rect(x0, y, w, h, bg)
			s.Line(x0+colW, y, x0+colW, y+h, th.Border, 0.2)
			s.Line(x0, y+h, x0+w, y+h, th.Border, 0.2)
		},
	}
	b.add(pad, nil)
	origStyle := ctx.style(body, draw.Regular, th.Danger)
	sugStyle := ctx.style(body, draw.Bold, th.Excellent)
	for i := range max(len(left), len(right)) {
		b.add(lh, func(s *draw.Surface, y float64) {
			if i < len(left) {
				s.Text(x0+pad, baseline(y, body), left[i], origStyle, draw.AlignLeft)
			}
			if i < len(right) {
				s.Text(x0+colW+pad, baseline(y, body), right[i], sugStyle, draw.AlignLeft)
			}
		})
	}

	var note []string
	if cat := strings.TrimSpace(fix.Category); cat != "" {
		note = append(note, cat)
	}
	if r := strings.TrimSpace(fix.Reason); r != "" {
		note = append(note, r)
	}
	if len(note) > 0 {
		lines := ctx.Fonts.Wrap(strings.Join(note, ": "), w-2*pad, small, draw.Italic)
		b.add(rowGap, nil)
		b.textStrips(lines, x0+pad, ctx.style(small, draw.Italic, th.Muted))
	}
	b.add(pad, nil)
	return b
}
