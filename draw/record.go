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

import "seehuhn.de/go/auditreport/theme"

// OpKind identifies a drawing primitive.
type OpKind string

// These are the recorded primitives.
const (
	OpRect         OpKind = "rect"
	OpStrokeRect   OpKind = "stroke-rect"
	OpRoundedRect  OpKind = "rounded-rect"
	OpCircle       OpKind = "circle"
	OpStrokeCircle OpKind = "stroke-circle"
	OpArc          OpKind = "arc"
	OpLine         OpKind = "line"
	OpText         OpKind = "text"
)

// Op is one recorded drawing operation.  All lengths are in mm.
//
// For rectangles (X, Y) is the top-left corner; for circles and arcs it is
// the centre and W is the diameter.  For lines, (W, H) is the direction
// vector.  For text, (X, Y) is the left end of the baseline and W is the
// measured width.
type Op struct {
	Page   int
	Kind   OpKind
	X, Y   float64
	W, H   float64
	Start  float64
	End    float64
	Text   string
	Size   float64
	Weight Weight
	Color  theme.RGB
}

// Recorder keeps a log of all drawing operations.  It is used to inspect
// the layout of a rendered document.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) add(op Op) {
	if r == nil {
		return
	}
	r.Ops = append(r.Ops, op)
}

// Filter returns the recorded operations for which keep returns true.
func (r *Recorder) Filter(keep func(Op) bool) []Op {
	if r == nil {
		return nil
	}
	var res []Op
	for _, op := range r.Ops {
		if keep(op) {
			res = append(res, op)
		}
	}
	return res
}

// Texts returns the recorded text runs on the given page, in drawing
// order.  If page is 0, text from all pages is returned.
func (r *Recorder) Texts(page int) []string {
	if r == nil {
		return nil
	}
	var res []string
	for _, op := range r.Ops {
		if op.Kind == OpText && (page == 0 || op.Page == page) {
			res = append(res, op.Text)
		}
	}
	return res
}
