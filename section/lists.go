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
	"strconv"
	"strings"

	"seehuhn.de/go/auditreport/draw"
	"seehuhn.de/go/auditreport/model"
)

// ItemList draws a list of findings.  Each row is coloured according to
// the severity of the finding, and consecutive rows alternate between a
// stronger and a lighter tint.  Items without text are left out.
func ItemList(ctx *Context, title string, items []model.Item) error {
	var blocks []*block
	for _, it := range items {
		f := it.Normalize()
		if strings.TrimSpace(f.Finding) == "" {
			continue
		}
		blocks = append(blocks, findingBlock(ctx, f, len(blocks)%2 == 1))
	}
	if len(blocks) == 0 {
		ctx.skip(title)
		return nil
	}

	if err := Heading(ctx, title, blocks[0].height()); err != nil {
		return err
	}
	for _, b := range blocks {
		if err := ctx.place(b); err != nil {
			return err
		}
		ctx.Cursor.Advance(rowGap)
	}
	ctx.Cursor.Advance(sectionGap - rowGap)
	return ctx.check(title)
}

func findingBlock(ctx *Context, f model.Finding, odd bool) *block {
	th := ctx.Theme
	x0 := ctx.Left()
	w := ctx.Width()
	textX := x0 + accentW + 2*pad
	textW := w - accentW - 3*pad
	body, small := th.Sizes.Body, th.Sizes.Small

	sev := th.Severity(f.Severity)
	bg := sev.Background
	if odd {
		bg = bg.Lighten(0.5)
	}

	b := &block{
		frame: func(s *draw.Surface, y, h float64) {
			s.Rect(x0, y, w, h, bg)
			s.Rect(x0, y, accentW, h, sev.Accent)
		},
	}
	b.add(pad, nil)
	bw := ctx.BadgeWidth(sev.Label)
	category := ctx.Fonts.Truncate(f.Category, textW-bw-2, small, draw.Bold)
	b.add(badgeH+rowGap, func(s *draw.Surface, y float64) {
		ctx.Badge(s, textX, y, sev.Label, sev.Accent)
		s.Text(textX+bw+2, y+badgeH/2+small/draw.PtPerMM*0.36, category,
			ctx.style(small, draw.Bold, th.Muted), draw.AlignLeft)
	})
	b.textStrips(ctx.Fonts.Wrap(f.Finding, textW, body, draw.Regular), textX,
		ctx.style(body, draw.Regular, th.Text))
	if q := strings.TrimSpace(f.Quote); q != "" {
		b.textStrips(ctx.Fonts.Wrap("“"+q+"”", textW-3, small, draw.Italic), textX+3,
			ctx.style(small, draw.Italic, th.Muted))
	}
	if ref := strings.TrimSpace(f.SectionReference); ref != "" {
		b.textStrips(ctx.Fonts.Wrap("Section: "+ref, textW, small, draw.Regular), textX,
			ctx.style(small, draw.Regular, th.Muted))
	}
	if fix := strings.TrimSpace(f.Remediation); fix != "" {
		b.textStrips(ctx.Fonts.Wrap("Remediation: "+fix, textW, small, draw.Regular), textX,
			ctx.style(small, draw.Regular, th.Text))
	}
	b.add(pad, nil)
	return b
}

// NumberedList draws a list of free-text entries, numbered from 1.
func NumberedList(ctx *Context, title string, entries []string) error {
	var blocks []*block
	th := ctx.Theme
	body := th.Sizes.Body
	x0 := ctx.Left()
	const indent = 8.0
	for _, e := range entries {
		lines := ctx.Fonts.Wrap(e, ctx.Width()-indent, body, draw.Regular)
		if len(lines) == 0 {
			continue
		}
		n := strconv.Itoa(len(blocks)+1) + "."
		b := &block{}
		b.add(0, func(s *draw.Surface, y float64) {
			s.Text(x0+indent-2, baseline(y, body), n, ctx.style(body, draw.Bold, th.Primary), draw.AlignRight)
		})
		b.textStrips(lines, x0+indent, ctx.style(body, draw.Regular, th.Text))
		b.add(rowGap, nil)
		blocks = append(blocks, b)
	}
	if len(blocks) == 0 {
		ctx.skip(title)
		return nil
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

// MainstreamCheck draws the four mainstream interface risk flags in a
// grid, followed by the notes.  Nothing is drawn if m is nil.
func MainstreamCheck(ctx *Context, m *model.MainstreamCheck) error {
	const title = "Mainstream Interface Check"
	if m == nil {
		ctx.skip(title)
		return nil
	}
	th := ctx.Theme
	x0 := ctx.Left()
	body, small := th.Sizes.Body, th.Sizes.Small
	const cellH = 10.0
	const gap = 2.0
	cellW := (ctx.Width() - gap) / 2

	b := &block{}
	flags := m.Flags()
	for row := 0; row < len(flags); row += 2 {
		pair := flags[row:min(row+2, len(flags))]
		b.add(cellH+gap, func(s *draw.Surface, y float64) {
			for i, f := range pair {
				x := x0 + float64(i)*(cellW+gap)
				dot, status := th.Excellent, "No risk identified"
				if f.Raised {
					dot, status = th.Danger, "Risk identified"
				}
				s.RoundedRect(x, y, cellW, cellH, radius, dot.Lighten(0.88))
				s.Circle(x+pad+1.6, y+cellH/2, 1.6, dot)
				s.Text(x+pad+5, baseline(y+cellH/2-lineHeight(body)/2, body), f.Label,
					ctx.style(body, draw.Bold, th.Text), draw.AlignLeft)
				s.Text(x+cellW-pad, baseline(y+cellH/2-lineHeight(small)/2, small), status,
					ctx.style(small, draw.Regular, dot), draw.AlignRight)
			}
		})
	}
	if lines := ctx.Fonts.Wrap(m.Notes, ctx.Width(), body, draw.Regular); len(lines) > 0 {
		b.add(rowGap, nil)
		b.textStrips(lines, x0, ctx.style(body, draw.Regular, th.Text))
	}

	if err := Heading(ctx, title, 2*(cellH+gap)); err != nil {
		return err
	}
	if err := ctx.place(b); err != nil {
		return err
	}
	ctx.Cursor.Advance(sectionGap)
	return ctx.check(title)
}
