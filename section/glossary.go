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
	"seehuhn.de/go/auditreport/draw"
)

// Term is one glossary entry.
type Term struct {
	Term       string
	Definition string
}

// SplitColumns splits a list into a left column holding the first
// ceil(n/2) entries and a right column holding the rest.
func SplitColumns[T any](list []T) (left, right []T) {
	half := (len(list) + 1) / 2
	return list[:half], list[half:]
}

// Glossary draws a two-column glossary.  The first half of the terms goes
// into the left column and the second half into the right column.  Rows
// are laid out side by side, and each row is as tall as its taller cell.
func Glossary(ctx *Context, terms []Term) error {
	const title = "Glossary"
	if len(terms) == 0 {
		ctx.skip(title)
		return nil
	}
	th := ctx.Theme
	x0 := ctx.Left()
	const gap = 6.0
	colW := (ctx.Width() - gap) / 2
	body, small := th.Sizes.Body, th.Sizes.Small
	termStyle := ctx.style(body, draw.Bold, th.Primary)
	defStyle := ctx.style(small, draw.Regular, th.Text)

	type cell struct {
		term, def []string
	}
	layout := func(t Term) cell {
		return cell{
			term: ctx.Fonts.Wrap(t.Term, colW, body, draw.Bold),
			def:  ctx.Fonts.Wrap(t.Definition, colW, small, draw.Regular),
		}
	}
	height := func(c cell) float64 {
		return float64(len(c.term))*lineHeight(body) + float64(len(c.def))*lineHeight(small)
	}
	drawCell := func(s *draw.Surface, x, y float64, c cell) {
		for _, line := range c.term {
			s.Text(x, baseline(y, body), line, termStyle, draw.AlignLeft)
			y += lineHeight(body)
		}
		for _, line := range c.def {
			s.Text(x, baseline(y, small), line, defStyle, draw.AlignLeft)
			y += lineHeight(small)
		}
	}

	left, right := SplitColumns(terms)
	blocks := make([]*block, len(left))
	for i := range left {
		l := layout(left[i])
		h := height(l)
		var r cell
		if i < len(right) {
			r = layout(right[i])
			h = max(h, height(r))
		}
		b := &block{}
		b.add(h, func(s *draw.Surface, y float64) {
			drawCell(s, x0, y, l)
			drawCell(s, x0+colW+gap, y, r)
		})
		b.add(2*rowGap, nil)
		blocks[i] = b
	}

	if err := Heading(ctx, title, blocks[0].height()); err != nil {
		return err
	}
	for _, b := range blocks {
		if err := ctx.place(b); err != nil {
			return err
		}
	}
	ctx.Cursor.Advance(sectionGap)
	return ctx.check(title)
}
