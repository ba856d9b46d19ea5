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

package draw

import (
	"math"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/auditreport/theme"
)

// Align describes how text is placed relative to its anchor point.
type Align int

// These are the supported text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle gives the font, size and colour of a text run.
type TextStyle struct {
	Size   float64 // in PDF points
	Weight Weight
	Color  theme.RGB
}

// Surface draws onto one page of a document.
type Surface struct {
	w     *graphics.Writer
	fonts *Fonts
	page  int
	toPDF matrix.Matrix
	rec   *Recorder
}

// NewSurface returns a surface which draws onto w.  The page number is
// only used for recording.  If rec is nil, nothing is recorded.
func NewSurface(w *graphics.Writer, fonts *Fonts, page int, pageHeight float64, rec *Recorder) *Surface {
	return &Surface{
		w:     w,
		fonts: fonts,
		page:  page,
		toPDF: matrix.Scale(PtPerMM, -PtPerMM).Mul(matrix.Translate(0, pageHeight*PtPerMM)),
		rec:   rec,
	}
}

// Page returns the 1-based page number of the surface.
func (s *Surface) Page() int {
	return s.page
}

// Fonts returns the fonts used by the surface.
func (s *Surface) Fonts() *Fonts {
	return s.fonts
}

// Err returns the first error which occurred while drawing on the page.
func (s *Surface) Err() error {
	return s.w.Err
}

func (s *Surface) pt(x, y float64) (float64, float64) {
	return s.toPDF.Apply(x, y)
}

// Rect fills a rectangle.  The point (x, y) is the top-left corner.
func (s *Surface) Rect(x, y, width, height float64, fill theme.RGB) {
	s.rec.add(Op{Page: s.page, Kind: OpRect, X: x, Y: y, W: width, H: height, Color: fill})

	x0, y0 := s.pt(x, y+height)
	s.w.PushGraphicsState()
	s.w.SetFillColor(fill.Color())
	s.w.Rectangle(x0, y0, width*PtPerMM, height*PtPerMM)
	s.w.Fill()
	s.w.PopGraphicsState()
}

// StrokeRect draws the outline of a rectangle.
func (s *Surface) StrokeRect(x, y, width, height float64, stroke theme.RGB, lineWidth float64) {
	s.rec.add(Op{Page: s.page, Kind: OpStrokeRect, X: x, Y: y, W: width, H: height, Color: stroke})

	x0, y0 := s.pt(x, y+height)
	s.w.PushGraphicsState()
	s.w.SetStrokeColor(stroke.Color())
	s.w.SetLineWidth(lineWidth * PtPerMM)
	s.w.Rectangle(x0, y0, width*PtPerMM, height*PtPerMM)
	s.w.Stroke()
	s.w.PopGraphicsState()
}

// RoundedRect fills a rectangle with rounded corners.  The corner radius
// is reduced if the rectangle is too small for it.
func (s *Surface) RoundedRect(x, y, width, height, radius float64, fill theme.RGB) {
	s.rec.add(Op{Page: s.page, Kind: OpRoundedRect, X: x, Y: y, W: width, H: height, Color: fill})
	if width <= 0 || height <= 0 {
		return
	}
	r := min(radius, width/2, height/2) * PtPerMM

	x0, y0 := s.pt(x, y+height)
	x1, y1 := x0+width*PtPerMM, y0+height*PtPerMM

	s.w.PushGraphicsState()
	s.w.SetFillColor(fill.Color())
	if r <= 0 {
		s.w.Rectangle(x0, y0, x1-x0, y1-y0)
	} else {
		s.w.MoveToArc(x1-r, y0+r, r, -math.Pi/2, 0)
		s.w.LineToArc(x1-r, y1-r, r, 0, math.Pi/2)
		s.w.LineToArc(x0+r, y1-r, r, math.Pi/2, math.Pi)
		s.w.LineToArc(x0+r, y0+r, r, math.Pi, 3*math.Pi/2)
		s.w.ClosePath()
	}
	s.w.Fill()
	s.w.PopGraphicsState()
}

// Circle fills a circle with centre (cx, cy).
func (s *Surface) Circle(cx, cy, radius float64, fill theme.RGB) {
	s.rec.add(Op{Page: s.page, Kind: OpCircle, X: cx, Y: cy, W: 2 * radius, H: 2 * radius, Color: fill})

	px, py := s.pt(cx, cy)
	s.w.PushGraphicsState()
	s.w.SetFillColor(fill.Color())
	s.w.Circle(px, py, radius*PtPerMM)
	s.w.Fill()
	s.w.PopGraphicsState()
}

// StrokeCircle draws the outline of a circle.
func (s *Surface) StrokeCircle(cx, cy, radius float64, stroke theme.RGB, lineWidth float64) {
	s.rec.add(Op{Page: s.page, Kind: OpStrokeCircle, X: cx, Y: cy, W: 2 * radius, H: 2 * radius, Color: stroke})

	px, py := s.pt(cx, cy)
	s.w.PushGraphicsState()
	s.w.SetStrokeColor(stroke.Color())
	s.w.SetLineWidth(lineWidth * PtPerMM)
	s.w.Circle(px, py, radius*PtPerMM)
	s.w.Stroke()
	s.w.PopGraphicsState()
}

// Arc strokes a circular arc around (cx, cy).  Angles are in degrees,
// measured clockwise from the top of the circle.
func (s *Surface) Arc(cx, cy, radius, startDeg, endDeg float64, stroke theme.RGB, lineWidth float64) {
	s.rec.add(Op{Page: s.page, Kind: OpArc, X: cx, Y: cy, W: 2 * radius, H: 2 * radius,
		Start: startDeg, End: endDeg, Color: stroke})

	px, py := s.pt(cx, cy)
	toRad := func(deg float64) float64 {
		return math.Pi/2 - deg*math.Pi/180
	}
	s.w.PushGraphicsState()
	s.w.SetStrokeColor(stroke.Color())
	s.w.SetLineWidth(lineWidth * PtPerMM)
	s.w.SetLineCap(graphics.LineCapButt)
	s.w.MoveToArc(px, py, radius*PtPerMM, toRad(startDeg), toRad(endDeg))
	s.w.Stroke()
	s.w.PopGraphicsState()
}

// Line draws a straight line.
func (s *Surface) Line(x1, y1, x2, y2 float64, stroke theme.RGB, lineWidth float64) {
	s.rec.add(Op{Page: s.page, Kind: OpLine, X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: stroke})

	p1x, p1y := s.pt(x1, y1)
	p2x, p2y := s.pt(x2, y2)
	s.w.PushGraphicsState()
	s.w.SetStrokeColor(stroke.Color())
	s.w.SetLineWidth(lineWidth * PtPerMM)
	s.w.MoveTo(p1x, p1y)
	s.w.LineTo(p2x, p2y)
	s.w.Stroke()
	s.w.PopGraphicsState()
}

// Text draws a single line of text.  The point (x, y) is on the baseline;
// depending on align it is the left end, the centre or the right end of
// the text.  Text is drawn as given, without wrapping.
// The return value is the width of the text in mm.
func (s *Surface) Text(x, y float64, text string, style TextStyle, align Align) float64 {
	text = norm.NFC.String(text)
	width := s.fonts.MeasureText(text, style.Size, style.Weight)
	switch align {
	case AlignCenter:
		x -= width / 2
	case AlignRight:
		x -= width
	}
	s.rec.add(Op{Page: s.page, Kind: OpText, X: x, Y: y, W: width, Text: text,
		Size: style.Size, Weight: style.Weight, Color: style.Color})
	if text == "" {
		return 0
	}

	px, py := s.pt(x, y)
	s.w.PushGraphicsState()
	s.w.SetFillColor(style.Color.Color())
	s.w.TextBegin()
	s.w.TextSetFont(s.fonts.Face(style.Weight), style.Size)
	s.w.TextFirstLine(px, py)
	s.w.TextShow(text)
	s.w.TextEnd()
	s.w.PopGraphicsState()
	return width
}
