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
	"bytes"
	"encoding/json"
	"math"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/auditreport/draw"
	"seehuhn.de/go/auditreport/model"
	"seehuhn.de/go/auditreport/paginate"
	"seehuhn.de/go/auditreport/theme"
)

type testPages struct {
	doc      *document.MultiPage
	fonts    *draw.Fonts
	rec      *draw.Recorder
	surfaces []*draw.Surface
}

func (p *testPages) NewPage() error {
	page := p.doc.AddPage()
	s := draw.NewSurface(page.Writer, p.fonts, len(p.surfaces)+1, paginate.A4.Height, p.rec)
	p.surfaces = append(p.surfaces, s)
	return nil
}

func (p *testPages) Surface(page int) *draw.Surface {
	return p.surfaces[page-1]
}

func newTestContext(t *testing.T) (*Context, *draw.Recorder) {
	t.Helper()
	doc, err := document.WriteMultiPage(&bytes.Buffer{}, document.A4, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	rec := &draw.Recorder{}
	pages := &testPages{doc: doc, fonts: draw.NewFonts(), rec: rec}
	if err := pages.NewPage(); err != nil {
		t.Fatal(err)
	}
	logger := zaptest.NewLogger(t)
	cursor, err := paginate.New(paginate.A4, pages, logger)
	if err != nil {
		t.Fatal(err)
	}
	return NewContext(pages, cursor, theme.Default(), pages.fonts, logger), rec
}

// checkText verifies that all text lies within the margins and above the
// bottom margin.
func checkText(t *testing.T, ctx *Context, rec *draw.Recorder) {
	t.Helper()
	const eps = 1e-6
	left := ctx.Left()
	right := left + ctx.Width()
	for _, op := range rec.Filter(func(op draw.Op) bool { return op.Kind == draw.OpText }) {
		if op.X < left-eps || op.X+op.W > right+eps {
			t.Errorf("page %d: text %q at x=[%.2f, %.2f] outside [%.2f, %.2f]",
				op.Page, op.Text, op.X, op.X+op.W, left, right)
		}
		if op.Y > ctx.Cursor.Bottom()+eps {
			t.Errorf("page %d: text %q at y=%.2f below bottom margin", op.Page, op.Text, op.Y)
		}
	}
}

func TestFilledSegments(t *testing.T) {
	for s := 0; s <= 100; s++ {
		want := int(math.Round(float64(s) / 100 * RingSegments))
		if got := FilledSegments(s); got != want {
			t.Errorf("FilledSegments(%d) = %d, want %d", s, got, want)
		}
	}
	if FilledSegments(-7) != 0 || FilledSegments(140) != RingSegments {
		t.Error("scores not clamped")
	}
}

func TestFilledWidth(t *testing.T) {
	for s := 0; s <= 100; s++ {
		if got, want := FilledWidth(s, 80), float64(s)/100*80; got != want {
			t.Errorf("FilledWidth(%d) = %g, want %g", s, got, want)
		}
	}
	if FilledWidth(120, 50) != 50 || FilledWidth(-1, 50) != 0 {
		t.Error("scores not clamped")
	}
}

func TestRing(t *testing.T) {
	ctx, rec := newTestContext(t)
	th := ctx.Theme
	Ring(ctx, ctx.Surface(), 50, 50, 15, 92, th.Excellent)

	arcs := rec.Filter(func(op draw.Op) bool { return op.Kind == draw.OpArc })
	if len(arcs) != RingSegments {
		t.Fatalf("got %d segments, want %d", len(arcs), RingSegments)
	}
	filled := 0
	for i, op := range arcs {
		if op.Color == th.Excellent {
			filled++
			if i >= 55 {
				t.Errorf("segment %d filled", i)
			}
		}
		if op.End <= op.Start || op.End-op.Start > 6 {
			t.Errorf("segment %d spans [%g, %g]", i, op.Start, op.End)
		}
	}
	if filled != 55 {
		t.Errorf("%d segments filled, want 55", filled)
	}
}

func TestLinearGauge(t *testing.T) {
	ctx, rec := newTestContext(t)
	LinearGauge(ctx, ctx.Surface(), 20, 20, 80, 3, 37, ctx.Theme.Good)
	bars := rec.Filter(func(op draw.Op) bool { return op.Kind == draw.OpRoundedRect })
	if len(bars) != 2 {
		t.Fatalf("got %d shapes, want 2", len(bars))
	}
	if bars[0].W != 80 || bars[1].W != 0.37*80 {
		t.Errorf("track %g, bar %g", bars[0].W, bars[1].W)
	}

	rec.Ops = nil
	LinearGauge(ctx, ctx.Surface(), 20, 30, 80, 3, 0, ctx.Theme.Good)
	if n := len(rec.Ops); n != 1 {
		t.Errorf("zero score drew %d shapes, want 1", n)
	}
}

func TestBadge(t *testing.T) {
	ctx, rec := newTestContext(t)
	w := ctx.Badge(ctx.Surface(), 20, 20, "needs improvement", ctx.Theme.Warning)

	texts := rec.Texts(1)
	if len(texts) != 1 || texts[0] != "NEEDS IMPROVEMENT" {
		t.Fatalf("unexpected badge text %q", texts)
	}
	want := ctx.Fonts.MeasureText("NEEDS IMPROVEMENT", ctx.Theme.Sizes.Badge, draw.Bold) + 2*badgePad
	if w != want || ctx.BadgeWidth("needs improvement") != want {
		t.Errorf("badge width %g, want %g", w, want)
	}
	if shape := rec.Ops[0]; shape.Kind != draw.OpRoundedRect || shape.W != want {
		t.Errorf("badge shape %v", shape)
	}
}

func TestEmptySections(t *testing.T) {
	ctx, rec := newTestContext(t)
	y := ctx.Cursor.Y()

	renderers := []func() error{
		func() error { return ItemList(ctx, "Red Flags", nil) },
		func() error { return LanguageFixes(ctx, nil) },
		func() error { return NumberedList(ctx, "Questions", []string{" ", ""}) },
		func() error { return MainstreamCheck(ctx, nil) },
		func() error { return EvidenceSuggestions(ctx, nil) },
		func() error { return Timeline(ctx, nil) },
		func() error { return References(ctx, nil) },
		func() error { return Glossary(ctx, nil) },
		func() error { return SummaryPanel(ctx, "Summary", "  \n ") },
		func() error { return MetadataRow(ctx, nil) },
	}
	for i, render := range renderers {
		if err := render(); err != nil {
			t.Fatalf("renderer %d: %v", i, err)
		}
	}
	if ctx.Cursor.Y() != y || ctx.Cursor.Page() != 1 {
		t.Errorf("cursor moved to page %d, y=%g", ctx.Cursor.Page(), ctx.Cursor.Y())
	}
	if len(rec.Ops) != 0 {
		t.Errorf("%d operations recorded for empty sections", len(rec.Ops))
	}
}

func TestItemList(t *testing.T) {
	ctx, rec := newTestContext(t)
	long := strings.Repeat("The goal is not linked to the functional impact of the disability. ", 12)
	items := []model.Item{
		model.PlainText("Clear description of daily living needs."),
		model.Structured(model.Finding{
			Finding:          long,
			Category:         "Goals",
			Severity:         model.SeverityCritical,
			Quote:            "client is wheelchair bound",
			SectionReference: "3.2",
			Remediation:      "Use person-first language.",
		}),
		model.Structured(model.Finding{Finding: "odd", Severity: "catastrophic"}),
	}
	for range 8 {
		items = append(items, items[1])
	}
	if err := ItemList(ctx, "Improvements", items); err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)

	texts := rec.Texts(0)
	if texts[0] != "Improvements" {
		t.Errorf("first text is %q, want the heading", texts[0])
	}
	for _, want := range []string{"MEDIUM", "CRITICAL", "UNKNOWN", "General", "Goals", "Section: 3.2"} {
		found := false
		for _, text := range texts {
			if text == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("text %q not found", want)
		}
	}
	if ctx.Cursor.Page() < 2 {
		t.Errorf("expected the list to span several pages")
	}

	// the unknown severity is drawn in the neutral colour
	th := ctx.Theme
	neutral := rec.Filter(func(op draw.Op) bool {
		return op.Kind == draw.OpRect && op.W == accentW && op.Color == th.Neutral
	})
	if len(neutral) != 1 {
		t.Errorf("found %d neutral accent bars, want 1", len(neutral))
	}
}

func TestOversizedItem(t *testing.T) {
	ctx, rec := newTestContext(t)
	huge := strings.Repeat("word ", 4000)
	items := []model.Item{model.PlainText(huge)}
	if err := ItemList(ctx, "Strengths", items); err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)
	if ctx.Cursor.Page() < 3 {
		t.Errorf("oversized item ended on page %d", ctx.Cursor.Page())
	}
}

func TestLanguageFixesRowHeight(t *testing.T) {
	ctx, rec := newTestContext(t)
	th := ctx.Theme
	fix := model.LanguageFix{
		Original:  "suffers from autism",
		Suggested: strings.Repeat("is autistic and experiences sensory overload in busy places ", 4),
	}
	if err := LanguageFixes(ctx, []model.LanguageFix{fix}); err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)

	cellW := ctx.Width()/2 - 2*pad
	left := ctx.Fonts.Wrap(fix.Original, cellW, th.Sizes.Body, draw.Regular)
	right := ctx.Fonts.Wrap(fix.Suggested, cellW, th.Sizes.Body, draw.Bold)
	if len(left) != 1 || len(right) < 3 {
		t.Fatalf("unexpected line counts %d, %d", len(left), len(right))
	}
	want := 2*pad + float64(len(right))*lineHeight(th.Sizes.Body)

	rows := rec.Filter(func(op draw.Op) bool {
		return op.Kind == draw.OpRect && op.Color == th.White && op.W == ctx.Width()
	})
	if len(rows) != 1 {
		t.Fatalf("found %d rows, want 1", len(rows))
	}
	if math.Abs(rows[0].H-want) > 1e-9 {
		t.Errorf("row height %g, want %g", rows[0].H, want)
	}
}

func TestLanguageFixesHeaderRepeated(t *testing.T) {
	ctx, rec := newTestContext(t)
	var fixes []model.LanguageFix
	for range 40 {
		fixes = append(fixes, model.LanguageFix{
			Original:  "The client is non-compliant with the treatment plan.",
			Suggested: "The participant is not yet engaged.",
			Reason:    "Avoid deficit language.",
			Category:  "Person-first",
		})
	}
	if err := LanguageFixes(ctx, fixes); err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)

	pages := map[int]bool{}
	headers := map[int]int{}
	for _, op := range rec.Ops {
		if op.Kind != draw.OpText {
			continue
		}
		switch op.Text {
		case "ORIGINAL":
			headers[op.Page]++
		case "The participant is not yet engaged.":
			pages[op.Page] = true
		}
	}
	if len(pages) < 2 {
		t.Fatalf("table fits on %d page", len(pages))
	}
	for p := range pages {
		if headers[p] != 1 {
			t.Errorf("page %d has %d column headers", p, headers[p])
		}
	}
}

func TestTimelineOrder(t *testing.T) {
	ctx, rec := newTestContext(t)
	steps := []model.NextStep{
		{Order: 3, Title: "Lodge the request", ResponsibleParty: model.PartyCoordinator},
		{Order: 1, Title: "Book an assessment", ResponsibleParty: model.PartyParticipant},
		{Order: 2, Title: "Collect quotes", ResponsibleParty: "nobody"},
	}
	if err := Timeline(ctx, steps); err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)

	var got []string
	for _, text := range rec.Texts(1) {
		switch text {
		case "Lodge the request", "Book an assessment", "Collect quotes":
			got = append(got, text)
		}
	}
	want := []string{"Book an assessment", "Collect quotes", "Lodge the request"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("steps drawn as %q, want %q", got, want)
	}
	if steps[0].Order != 3 {
		t.Error("input was reordered")
	}
}

func TestSplitColumns(t *testing.T) {
	for n := range 8 {
		list := make([]int, n)
		left, right := SplitColumns(list)
		if len(left) != (n+1)/2 || len(left)+len(right) != n {
			t.Errorf("n=%d: split into %d and %d", n, len(left), len(right))
		}
	}
}

func TestGlossary(t *testing.T) {
	ctx, rec := newTestContext(t)
	terms := []Term{
		{Term: "A", Definition: "first"},
		{Term: "B", Definition: "second"},
		{Term: "C", Definition: "third"},
		{Term: "D", Definition: "fourth"},
		{Term: "E", Definition: "fifth"},
	}
	if err := Glossary(ctx, terms); err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)

	x := map[string]float64{}
	y := map[string]float64{}
	for _, op := range rec.Ops {
		if op.Kind == draw.OpText {
			x[op.Text], y[op.Text] = op.X, op.Y
		}
	}
	for _, name := range []string{"A", "B", "C"} {
		if x[name] != ctx.Left() {
			t.Errorf("term %s not in the left column", name)
		}
	}
	for _, name := range []string{"D", "E"} {
		if x[name] <= ctx.Left()+ctx.Width()/2 {
			t.Errorf("term %s not in the right column", name)
		}
	}
	if y["A"] != y["D"] || y["B"] != y["E"] {
		t.Error("rows not side by side")
	}
}

func TestScorePanel(t *testing.T) {
	ctx, rec := newTestContext(t)
	th := ctx.Theme
	err := ScorePanel(ctx, &Score{
		Score:      150,
		RingColor:  th.Excellent,
		Caption:    "Overall score",
		Badge:      "Excellent",
		BadgeColor: th.Excellent,
		Headline:   "Ready for lodgement",
		Gauges: []Gauge{
			{Label: "Compliance", Score: 80},
			{Label: "Nexus", Score: -20},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)

	texts := strings.Join(rec.Texts(1), "|")
	for _, want := range []string{"100", "EXCELLENT", "Ready for lodgement", "Compliance", "80", "0"} {
		if !strings.Contains(texts, want) {
			t.Errorf("text %q missing from %q", want, texts)
		}
	}
	arcs := rec.Filter(func(op draw.Op) bool {
		return op.Kind == draw.OpArc && op.Color == th.Excellent
	})
	if len(arcs) != RingSegments {
		t.Errorf("%d segments filled for a clamped score, want %d", len(arcs), RingSegments)
	}
}

// checkShapes verifies that all filled rectangles and badges lie within
// the margins.
func checkShapes(t *testing.T, ctx *Context, rec *draw.Recorder) {
	t.Helper()
	const eps = 1e-6
	left := ctx.Left()
	right := left + ctx.Width()
	for _, op := range rec.Filter(func(op draw.Op) bool {
		return op.Kind == draw.OpRect || op.Kind == draw.OpRoundedRect
	}) {
		if op.X < left-eps || op.X+op.W > right+eps {
			t.Errorf("page %d: %s at x=[%.2f, %.2f] outside [%.2f, %.2f]",
				op.Page, op.Kind, op.X, op.X+op.W, left, right)
		}
	}
}

func TestItemListLongCategory(t *testing.T) {
	ctx, rec := newTestContext(t)
	category := strings.Repeat("Reasonable and necessary criteria ", 6)
	items := []model.Item{
		model.Structured(model.Finding{
			Finding:  "Assistive technology is not linked to a goal.",
			Category: category,
			Severity: model.SeverityHigh,
		}),
		model.Structured(model.Finding{
			Finding:  "Unknown severity with a long category.",
			Category: category,
			Severity: "unheard-of",
		}),
	}
	if err := ItemList(ctx, "Strengths", items); err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)
	checkShapes(t, ctx, rec)

	var shortened int
	for _, text := range rec.Texts(0) {
		if strings.HasPrefix(text, "Reasonable") && strings.HasSuffix(text, "…") {
			shortened++
		}
	}
	if shortened != 2 {
		t.Errorf("%d shortened category labels, want 2", shortened)
	}
}

func TestItemListSkipsBlankItems(t *testing.T) {
	var items []model.Item
	if err := json.Unmarshal([]byte(`[null, "  ", {"finding": ""}]`), &items); err != nil {
		t.Fatal(err)
	}

	ctx, rec := newTestContext(t)
	y := ctx.Cursor.Y()
	if err := ItemList(ctx, "Strengths", items); err != nil {
		t.Fatal(err)
	}
	if len(rec.Ops) != 0 || ctx.Cursor.Y() != y {
		t.Errorf("blank items drew %d operations", len(rec.Ops))
	}

	items = append(items, model.PlainText("Goals are written in the first person."))
	if err := ItemList(ctx, "Strengths", items); err != nil {
		t.Fatal(err)
	}
	texts := rec.Texts(0)
	if !slices.Contains(texts, "Strengths") {
		t.Errorf("heading missing from %q", texts)
	}
	// one badge for the single non-blank item
	badges := rec.Filter(func(op draw.Op) bool { return op.Kind == draw.OpRoundedRect })
	if len(badges) != 1 {
		t.Errorf("%d badges drawn, want 1", len(badges))
	}
}

func TestLongBadgeLabels(t *testing.T) {
	ctx, rec := newTestContext(t)
	long := strings.Repeat("regional-office-", 8)

	suggestions := []model.EvidenceSuggestion{{
		Title:       "Occupational therapy report",
		Description: "Current functional assessment.",
		Priority:    model.Priority(long),
	}}
	if err := EvidenceSuggestions(ctx, suggestions); err != nil {
		t.Fatal(err)
	}
	steps := []model.NextStep{{
		Order:            1,
		Title:            "Send the request to the regional office",
		ResponsibleParty: model.Party(long),
	}}
	if err := Timeline(ctx, steps); err != nil {
		t.Fatal(err)
	}
	checkText(t, ctx, rec)
	checkShapes(t, ctx, rec)

	maxW := ctx.Width() / 3
	for _, op := range rec.Filter(func(op draw.Op) bool { return op.Kind == draw.OpRoundedRect }) {
		if op.W > maxW+1e-6 {
			t.Errorf("badge of width %.2f, limit %.2f", op.W, maxW)
		}
	}
	if !slices.Contains(rec.Texts(0), "Send the request to the regional office") {
		t.Errorf("step title was broken up: %q", rec.Texts(0))
	}
}

func TestTimelineConnectors(t *testing.T) {
	body := theme.Default().Sizes.Body
	first := max(lineHeight(body), 2*3.2) + 2*rowGap
	steps := []model.NextStep{
		{Order: 1, Title: "Book an assessment", ResponsibleParty: model.PartyParticipant},
		{Order: 2, Title: "Collect evidence", ResponsibleParty: model.PartyCoordinator,
			Description: strings.Repeat("Gather reports from every treating clinician. ", 400)},
		{Order: 3, Title: "Lodge the request", ResponsibleParty: model.PartyCoordinator},
	}

	for _, room := range []float64{1, 3, 5, 20} {
		ctx, rec := newTestContext(t)
		c := ctx.Cursor
		c.Advance(c.Bottom() - c.Y() - headingH - first - room)
		if err := Timeline(ctx, steps); err != nil {
			t.Fatal(err)
		}
		checkText(t, ctx, rec)

		discs := rec.Filter(func(op draw.Op) bool {
			return op.Kind == draw.OpCircle && op.Color == ctx.Theme.Primary
		})
		if len(discs) != len(steps) {
			t.Fatalf("room %g: %d discs, want %d", room, len(discs), len(steps))
		}
		connectors := rec.Filter(func(op draw.Op) bool {
			return op.Kind == draw.OpLine && op.W == 0 && op.H > 0
		})
		for _, line := range connectors {
			top, bottom := false, false
			for _, d := range discs {
				if d.Page != line.Page {
					continue
				}
				r := d.H / 2
				if math.Abs(d.Y+r-line.Y) < 1e-6 {
					top = true
				}
				if math.Abs(d.Y-r-(line.Y+line.H)) < 1e-6 {
					bottom = true
				}
			}
			if !top || !bottom {
				t.Errorf("room %g: connector on page %d at y=[%.2f, %.2f] does not join two discs",
					room, line.Page, line.Y, line.Y+line.H)
			}
		}
	}
}
