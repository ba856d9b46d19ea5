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

	"seehuhn.de/go/auditreport/draw"
	"seehuhn.de/go/auditreport/model"
	"seehuhn.de/go/auditreport/theme"
)

// RingSegments is the number of arc segments in a circular gauge.
const RingSegments = 60

// FilledSegments returns the number of highlighted segments of a circular
// gauge showing the given score.  Scores are clamped to [0, 100].
func FilledSegments(score int) int {
	score = model.Clamp(score)
	return (score*RingSegments + 50) / 100
}

// FilledWidth returns the width of the bar of a linear gauge showing the
// given score.  Scores are clamped to [0, 100].
func FilledWidth(score int, trackWidth float64) float64 {
	return float64(model.Clamp(score)) / 100 * trackWidth
}

// Ring draws a circular gauge centred at (cx, cy).
func Ring(ctx *Context, s *draw.Surface, cx, cy, r float64, score int, fill theme.RGB) {
	const step = 360.0 / RingSegments
	const gap = 0.8
	n := FilledSegments(score)
	for i := range RingSegments {
		c := ctx.Theme.Track
		if i < n {
			c = fill
		}
		start := float64(i) * step
		s.Arc(cx, cy, r, start+gap/2, start+step-gap/2, c, 3.2)
	}
}

// LinearGauge draws a horizontal gauge with its top-left corner at (x, y).
func LinearGauge(ctx *Context, s *draw.Surface, x, y, width, height float64, score int, fill theme.RGB) {
	s.RoundedRect(x, y, width, height, height/2, ctx.Theme.Track)
	if w := FilledWidth(score, width); w > 0 {
		s.RoundedRect(x, y, w, height, height/2, fill)
	}
}

// Gauge is a labelled linear gauge.
type Gauge struct {
	Label string
	Score int
}

// Score holds the contents of a score panel.
type Score struct {
	Score      int
	RingColor  theme.RGB
	Caption    string // shown below the number, e.g. "Overall score"
	Badge      string
	BadgeColor theme.RGB
	Headline   string // e.g. the lodgement readiness
	Detail     string
	Gauges     []Gauge
}

// ScorePanel draws a panel with a circular gauge on the left, and a badge,
// a headline and optional linear gauges on the right.
func ScorePanel(ctx *Context, p *Score) error {
	th := ctx.Theme
	const ringR = 15.0
	const ringBox = 2*ringR + 10
	const gaugeRowH = 7.0

	x0 := ctx.Left()
	w := ctx.Width()
	rightX := x0 + ringBox + 6
	rightW := x0 + w - pad - rightX

	headSize := th.Sizes.Heading
	headLines := ctx.Fonts.Wrap(p.Headline, rightW, headSize, draw.Bold)
	detailLines := ctx.Fonts.Wrap(p.Detail, rightW, th.Sizes.Body, draw.Regular)

	rightH := 2*pad + badgeH + rowGap +
		float64(len(headLines))*lineHeight(headSize) +
		float64(len(detailLines))*lineHeight(th.Sizes.Body)
	if len(p.Gauges) > 0 {
		rightH += rowGap + float64(len(p.Gauges))*gaugeRowH
	}
	h := max(ringBox, rightH)

	b := &block{}
	b.add(h, func(s *draw.Surface, y float64) {
		s.RoundedRect(x0, y, w, h, radius, th.Panel)

		score := model.Clamp(p.Score)
		cx, cy := x0+ringBox/2, y+h/2
		Ring(ctx, s, cx, cy, ringR, score, p.RingColor)
		s.Text(cx, cy+2, strconv.Itoa(score), ctx.style(th.Sizes.Score, draw.Bold, p.RingColor), draw.AlignCenter)
		s.Text(cx, cy+6.5, p.Caption, ctx.style(th.Sizes.Small, draw.Regular, th.Muted), draw.AlignCenter)

		yy := y + pad
		if p.Badge != "" {
			ctx.Badge(s, rightX, yy, p.Badge, p.BadgeColor)
		}
		yy += badgeH + rowGap
		for _, line := range headLines {
			s.Text(rightX, baseline(yy, headSize), line, ctx.style(headSize, draw.Bold, th.Text), draw.AlignLeft)
			yy += lineHeight(headSize)
		}
		for _, line := range detailLines {
			s.Text(rightX, baseline(yy, th.Sizes.Body), line, ctx.style(th.Sizes.Body, draw.Regular, th.Muted), draw.AlignLeft)
			yy += lineHeight(th.Sizes.Body)
		}
		if len(p.Gauges) == 0 {
			return
		}
		yy += rowGap

		const labelW = 32.0
		const valueW = 10.0
		trackX := rightX + labelW
		trackW := rightW - labelW - valueW
		small := th.Sizes.Small
		for _, g := range p.Gauges {
			v := model.Clamp(g.Score)
			s.Text(rightX, baseline(yy, small), g.Label, ctx.style(small, draw.Regular, th.Text), draw.AlignLeft)
			LinearGauge(ctx, s, trackX, yy+0.6, trackW, 2.6, v, th.ScoreColor(v))
			s.Text(rightX+rightW, baseline(yy, small), strconv.Itoa(v), ctx.style(small, draw.Bold, th.Text), draw.AlignRight)
			yy += gaugeRowH
		}
	})
	if err := ctx.place(b); err != nil {
		return err
	}
	ctx.Cursor.Advance(sectionGap)
	return ctx.check("score panel")
}
