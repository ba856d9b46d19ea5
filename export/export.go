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

// Package export serialises rendered reports and names the output files.
package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"seehuhn.de/go/auditreport/compose"
)

// Output is a finished report.
type Output struct {
	Data     []byte
	FileName string
	Pages    int
}

// Finalize completes the PDF file for doc and derives its file name.
// The document cannot be modified afterwards.
func Finalize(doc *compose.Document) (*Output, error) {
	if doc == nil || doc.Pages == nil {
		return nil, errors.New("no document to finalize")
	}
	n := doc.Pages.Len()
	if err := doc.Pages.Close(); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return &Output{
		Data:     doc.Pages.Bytes(),
		FileName: FileName(doc.Descriptor.Seed(), doc.GeneratedAt),
		Pages:    n,
	}, nil
}

// FileName returns the file name for a report: the sanitised seed,
// followed by the generation time in milliseconds since the Unix epoch.
func FileName(seed string, at time.Time) string {
	base := Sanitize(seed)
	if base == "" {
		base = "report"
	}
	return base + "-" + strconv.FormatInt(at.UnixMilli(), 10) + ".pdf"
}

// Sanitize case-folds s and replaces every character outside [a-z0-9-]
// by a hyphen.
func Sanitize(s string) string {
	s = cases.Fold().String(s)
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
