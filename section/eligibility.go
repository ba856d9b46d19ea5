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

// EvidenceSuggestions draws the suggested supporting evidence, each with
// a priority badge and an optional list of examples.
func EvidenceSuggestions(ctx *Context, list []model.EvidenceSuggestion) error {
	const title = "Suggested Evidence"
	if len(list) == 0 {
		ctx.skip(title)
		return nil
	}
	th := ctx.Theme
	x0 := ctx.Left()
	w := ctx.Width()
	body, small := th.Sizes.Body, th.Sizes.Small
	textX := x0 + pad
	textW := w - 2*pad

	blocks := make([]*block, len(list))
	for i, e := range list {
		badge := string(e.Priority)
		if badge == "" {
			badge = "unspecified"
		}
		bw := ctx.BadgeWidth(badge)
		color := th.PriorityColor(e.Priority)

		b := &block{
			frame: func(s *draw.Surface, y, h float64) {
				s.StrokeRect(x0, y, w, h, th.Border, 0.3)
			},
		}
		b.add(pad, nil)
		titleLines := ctx.Fonts.Wrap(e.Title, textW-bw-2, body, draw.Bold)
		if len(titleLines) == 0 {
			titleLines = []string{""}
		}
		for j, line := range titleLines {
			h := lineHeight(body)
			if j == 0 {
				h = max(h, badgeH+0.5)
			}
			b.add(h, func(s *draw.Surface, y float64) {
				s.Text(textX, baseline(y, body), line, ctx.style(body, draw.Bold, th.Text), draw.AlignLeft)
				if j == 0 {
					ctx.Badge(s, x0+w-pad-bw, y, badge, color)
				}
			})
		}
		b.textStrips(ctx.Fonts.Wrap(e.Description, textW, body, draw.Regular), textX,
			ctx.style(body, draw.Regular, th.Text))
		if len(e.Examples) > 0 {
			b.add(rowGap, nil)
			for _, ex := range e.Examples {
				lines := ctx.Fonts.Wrap(ex, textW-5, small, draw.Regular)
				for j, line := range lines {
					b.add(lineHeight(small), func(s *draw.Surface, y float64) {
						st := ctx.style(small, draw.Regular, th.Muted)
						if j == 0 {
							s.Text(textX+1, baseline(y, small), "•", st, draw.AlignLeft)
						}
						s.Text(textX+5, baseline(y, small), line, st, draw.AlignLeft)
					})
				}
			}
		}
		b.add(pad, nil)
		blocks[i] = b
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

// Timeline draws the next steps as a numbered sequence, in ascending
// order of the steps' order field.
func Timeline(ctx *Context, steps []model.NextStep) error {
	const title = "Next Steps"
	if len(steps) == 0 {
		ctx.skip(title)
		return nil
	}
	steps = model.SortNextSteps(steps)

	th := ctx.Theme
	c := ctx.Cursor
	x0 := ctx.Left()
	w := ctx.Width()
	body, small := th.Sizes.Body, th.Sizes.Small
	const discR = 3.2
	const indent = 2*discR + 4
	textX := x0 + indent
	textW := w - indent

	blocks := make([]*block, len(steps))
	for i, step := range steps {
		label := strconv.Itoa(i + 1)
		party := string(step.ResponsibleParty)
		if party == "" {
			party = "unassigned"
		}
		bw := ctx.BadgeWidth(party)
		color := th.PartyColor(step.ResponsibleParty)

		b := &block{}
		titleLines := ctx.Fonts.Wrap(step.Title, textW-bw-2, body, draw.Bold)
		if len(titleLines) == 0 {
			titleLines = []string{""}
		}
		for j, line := range titleLines {
			h := lineHeight(body)
			if j == 0 {
				h = max(h, 2*discR)
			}
			b.add(h, func(s *draw.Surface, y float64) {
				if j == 0 {
					s.Circle(x0+discR, y+discR, discR, th.Primary)
					s.Text(x0+discR, y+discR+body/draw.PtPerMM*0.36, label,
						ctx.style(body, draw.Bold, th.White), draw.AlignCenter)
					ctx.Badge(s, x0+w-bw, y+0.5, party, color)
				}
				s.Text(textX, baseline(y, body), line, ctx.style(body, draw.Bold, th.Text), draw.AlignLeft)
			})
		}
		if tf := strings.TrimSpace(step.Timeframe); tf != "" {
			b.textStrips(ctx.Fonts.Wrap(tf, textW, small, draw.Italic), textX,
				ctx.style(small, draw.Italic, th.Primary))
		}
		b.textStrips(ctx.Fonts.Wrap(step.Description, textW, body, draw.Regular), textX,
			ctx.style(body, draw.Regular, th.Text))
		b.add(2*rowGap, nil)
		blocks[i] = b
	}

	if err := Heading(ctx, title, blocks[0].height()); err != nil {
		return err
	}
	prevPage, prevY := 0, 0.0
	for _, b := range blocks {
		page, y, err := ctx.placeAt(b)
		if err != nil {
			return err
		}
		if page == prevPage {
			ctx.Pages.Surface(page).Line(x0+discR, prevY+2*discR, x0+discR, y, th.Border, 0.6)
		}
		prevPage, prevY = page, y
	}
	c.Advance(sectionGap)
	return ctx.check(title)
}

// References draws the cited legislation and guidelines.
func References(ctx *Context, refs []model.Reference) error {
	const title = "References"
	if len(refs) == 0 {
		ctx.skip(title)
		return nil
	}
	th := ctx.Theme
	x0 := ctx.Left()
	w := ctx.Width()
	body, small := th.Sizes.Body, th.Sizes.Small

	blocks := make([]*block, len(refs))
	for i, r := range refs {
		b := &block{}
		head := r.Title
		if sec := strings.TrimSpace(r.Section); sec != "" {
			head += " (" + sec + ")"
		}
		b.textStrips(ctx.Fonts.Wrap(head, w, body, draw.Bold), x0,
			ctx.style(body, draw.Bold, th.Text))
		b.textStrips(ctx.Fonts.Wrap(r.Relevance, w-4, small, draw.Regular), x0+4,
			ctx.style(small, draw.Regular, th.Muted))
		b.add(rowGap, nil)
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
