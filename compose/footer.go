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

package compose

import (
	"fmt"

	"go.uber.org/zap"

	"seehuhn.de/go/auditreport/draw"
)

// FooterText returns the page number label for page k of n.
func FooterText(k, n int) string {
	return fmt.Sprintf("Page %d of %d", k, n)
}

// stampFooters draws the running footer onto every page.  This must run
// after all content has been placed, since the footer shows the total
// number of pages.
func (c *composer) stampFooters(ps *PageSet) error {
	th := c.th
	g := ps.geom
	size := th.Sizes.Footer
	style := draw.TextStyle{Size: size, Weight: draw.Regular, Color: th.Muted}

	ruleY := g.Height - g.MarginBottom + 6
	textY := ruleY + 4.5
	x0, x1 := g.MarginLeft, g.Width-g.MarginRight
	third := (x1 - x0) / 3

	name := ps.Fonts().Truncate(c.desc.DocumentName, third-2, size, draw.Regular)
	date := "Generated " + c.date()

	n := ps.Len()
	for k := 1; k <= n; k++ {
		s := ps.Surface(k)
		s.Line(x0, ruleY, x1, ruleY, th.Border, 0.2)
		s.Text(x0, textY, name, style, draw.AlignLeft)
		s.Text((x0+x1)/2, textY, date, style, draw.AlignCenter)
		s.Text(x1, textY, FooterText(k, n), style, draw.AlignRight)
		if err := s.Err(); err != nil {
			return fmt.Errorf("footer on page %d: %w", k, err)
		}
	}
	c.log.Debug("footers stamped", zap.Int("pages", n))
	return nil
}
