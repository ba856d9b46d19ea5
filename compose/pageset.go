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
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/auditreport/draw"
	"seehuhn.de/go/auditreport/paginate"
)

// Producer is stored in the document information dictionary.
const Producer = "seehuhn.de/go/auditreport"

// PageSet is a PDF document whose pages are all kept open until the
// document is closed.  This allows to draw on earlier pages, once the
// total number of pages is known.
type PageSet struct {
	buf      *bytes.Buffer
	doc      *document.MultiPage
	pages    []*document.Page
	surfaces []*draw.Surface
	fonts    *draw.Fonts
	geom     paginate.Geometry
	rec      *draw.Recorder
	closed   bool
	done     bool
}

type pageSetInfo struct {
	title         string
	subject       string
	seed          string
	generatedAt   time.Time
	userPassword  string
	ownerPassword string
}

// newPageSet starts a new document with one empty page.
func newPageSet(geom paginate.Geometry, info *pageSetInfo, rec *draw.Recorder) (*PageSet, error) {
	// The file identifier is derived from the contents, so that identical
	// input gives identical output.
	id := uuid.NewSHA1(uuid.NameSpaceURL,
		[]byte(Producer+"/"+info.seed+"/"+info.generatedAt.UTC().Format(time.RFC3339Nano)))
	opt := &pdf.WriterOptions{
		ID:            [][]byte{id[:], id[:]},
		UserPassword:  info.userPassword,
		OwnerPassword: info.ownerPassword,
	}

	paper := &pdf.Rectangle{
		URx: geom.Width * draw.PtPerMM,
		URy: geom.Height * draw.PtPerMM,
	}
	buf := &bytes.Buffer{}
	doc, err := document.WriteMultiPage(buf, paper, pdf.V1_7, opt)
	if err != nil {
		return nil, err
	}
	doc.Out.GetMeta().Info = &pdf.Info{
		Title:        pdf.TextString(info.title),
		Subject:      pdf.TextString(info.subject),
		Producer:     Producer,
		CreationDate: pdf.Date(info.generatedAt),
	}

	ps := &PageSet{
		buf:   buf,
		doc:   doc,
		fonts: draw.NewFonts(),
		geom:  geom,
		rec:   rec,
	}
	if err := ps.NewPage(); err != nil {
		return nil, err
	}
	return ps, nil
}

// NewPage appends a new, empty page.
// This implements the [paginate.Allocator] interface.
func (ps *PageSet) NewPage() error {
	if ps.closed {
		return errors.New("page set is closed")
	}
	page := ps.doc.AddPage()
	s := draw.NewSurface(page.Writer, ps.fonts, len(ps.pages)+1, ps.geom.Height, ps.rec)
	ps.pages = append(ps.pages, page)
	ps.surfaces = append(ps.surfaces, s)
	return nil
}

// Surface returns the drawing surface of the given 1-based page.
func (ps *PageSet) Surface(page int) *draw.Surface {
	return ps.surfaces[page-1]
}

// Len returns the number of pages.
func (ps *PageSet) Len() int {
	return len(ps.pages)
}

// Fonts returns the fonts used in the document.
func (ps *PageSet) Fonts() *draw.Fonts {
	return ps.fonts
}

// Close writes all pages and completes the PDF file.
// No drawing is possible after Close has been called.
func (ps *PageSet) Close() error {
	if ps.closed {
		return errors.New("page set already closed")
	}
	ps.closed = true
	for i, page := range ps.pages {
		if err := page.Close(); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}
	if err := ps.doc.Close(); err != nil {
		return err
	}
	ps.done = true
	return nil
}

// Bytes returns the PDF file.  The result is nil unless Close has
// completed successfully.
func (ps *PageSet) Bytes() []byte {
	if !ps.done {
		return nil
	}
	return ps.buf.Bytes()
}
