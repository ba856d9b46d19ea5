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

// Package draw implements the drawing primitives of the report renderer.
//
// All coordinates are in millimetres, measured from the top-left corner
// of the page.  Every primitive saves and restores the graphics state, so
// that no colour or line width leaks from one call into the next.
package draw

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
)

// PtPerMM is the number of PDF points in one millimetre.
const PtPerMM = 72 / 25.4

// Weight selects one of the three faces used in reports.
type Weight int

// These are the available font faces.
const (
	Regular Weight = iota
	Bold
	Italic
)

// Fonts holds the font instances used for one document.
//
// Font instances are embedded into a PDF file only once, so a new Fonts
// object must be used for every document.
type Fonts struct {
	faces [3]font.Layouter
}

// NewFonts returns the Helvetica family of the standard 14 fonts.
func NewFonts() *Fonts {
	return &Fonts{
		faces: [3]font.Layouter{
			Regular: standard.Helvetica.New(),
			Bold:    standard.HelveticaBold.New(),
			Italic:  standard.HelveticaOblique.New(),
		},
	}
}

// Face returns the font for the given weight.
func (f *Fonts) Face(w Weight) font.Layouter {
	if w < Regular || w > Italic {
		w = Regular
	}
	return f.faces[w]
}

// LineHeight returns the baseline distance in mm for text of the given
// size in points.
func LineHeight(size float64) float64 {
	return size * 1.3 / PtPerMM
}

// MeasureText returns the width of text in mm, when set in the given
// point size.
func (f *Fonts) MeasureText(text string, size float64, w Weight) float64 {
	if text == "" {
		return 0
	}
	seq := f.Face(w).Layout(nil, size, norm.NFC.String(text))
	return seq.TotalWidth() / PtPerMM
}

// Wrap breaks text into lines no wider than maxWidth mm.
//
// Lines are filled greedily, word by word.  A word is only split if it
// does not fit on a line by itself; it is then broken into the longest
// pieces which fit.  Newline characters in text always start a new line.
func (f *Fonts) Wrap(text string, maxWidth, size float64, w Weight) []string {
	text = strings.ReplaceAll(norm.NFC.String(text), "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			if line != "" {
				candidate := line + " " + word
				if f.MeasureText(candidate, size, w) <= maxWidth {
					line = candidate
					continue
				}
				lines = append(lines, line)
				line = ""
			}

			if f.MeasureText(word, size, w) <= maxWidth {
				line = word
				continue
			}
			pieces := f.breakWord(word, maxWidth, size, w)
			lines = append(lines, pieces[:len(pieces)-1]...)
			line = pieces[len(pieces)-1]
		}
		lines = append(lines, line)
	}
	return lines
}

// breakWord splits a word which is wider than maxWidth.
// Every piece contains at least one rune.
func (f *Fonts) breakWord(word string, maxWidth, size float64, w Weight) []string {
	var pieces []string
	start := 0
	for i := range word {
		if i == start {
			continue
		}
		_, n := utf8.DecodeRuneInString(word[i:])
		end := i + n
		if f.MeasureText(word[start:end], size, w) > maxWidth {
			pieces = append(pieces, word[start:i])
			start = i
		}
	}
	return append(pieces, word[start:])
}

// Truncate shortens text to fit into maxWidth mm, marking the cut with an
// ellipsis.  Runs of white space are collapsed first.  If not even the
// ellipsis fits, the empty string is returned.
func (f *Fonts) Truncate(text string, maxWidth, size float64, w Weight) string {
	text = strings.Join(strings.Fields(text), " ")
	if f.MeasureText(text, size, w) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		cand := strings.TrimSpace(string(runes)) + "…"
		if f.MeasureText(cand, size, w) <= maxWidth {
			return cand
		}
	}
	return ""
}
