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

// Package compose assembles complete reports from the section renderers.
//
// Rendering happens in two phases.  The content phase runs the section
// renderers of the report kind in a fixed order, starting new pages as
// required.  All pages stay open, and once the total page count is known
// the footer phase stamps "Page k of N" onto every page.
package compose

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"seehuhn.de/go/auditreport/draw"
	"seehuhn.de/go/auditreport/model"
	"seehuhn.de/go/auditreport/paginate"
	"seehuhn.de/go/auditreport/section"
	"seehuhn.de/go/auditreport/theme"
)

// Options control the rendering of a report.  The zero value is valid.
type Options struct {
	// Theme gives the colours and font sizes.  If nil, [theme.Default]
	// is used.
	Theme *theme.Theme

	// Logger receives debug information about page breaks and skipped
	// sections.  If nil, nothing is logged.
	Logger *zap.Logger

	// Recorder, if set, receives a log of all drawing operations.
	Recorder *draw.Recorder

	// Glossary replaces the default glossary of the report kind.
	Glossary []section.Term

	// OmitGlossary disables the glossary section.
	OmitGlossary bool

	// Now is used to obtain the generation time for results which do not
	// carry one.  If nil, [time.Now] is used.
	Now func() time.Time

	// If either password is set, the PDF file is encrypted.  Encrypted
	// files are not reproducible, since encryption uses random data.
	UserPassword  string
	OwnerPassword string
}

// Document is a rendered report which has not yet been serialised.
type Document struct {
	Pages       *PageSet
	Descriptor  model.Descriptor
	GeneratedAt time.Time
}

// ErrNilResult is returned when a nil result is passed to a renderer.
var ErrNilResult = errors.New("no result to render")

// A step renders one section of a report.
type step struct {
	name   string
	render func(ctx *section.Context) error
}

type composer struct {
	kind  model.Kind
	desc  model.Descriptor
	title string
	at    time.Time
	th    *theme.Theme
	log   *zap.Logger
	opt   *Options
}

func newComposer(kind model.Kind, desc model.Descriptor, title string, at time.Time, opt *Options) *composer {
	if opt == nil {
		opt = &Options{}
	}
	desc.Kind = kind
	if at.IsZero() {
		now := time.Now
		if opt.Now != nil {
			now = opt.Now
		}
		at = now()
	}
	th := opt.Theme
	if th == nil {
		th = theme.Default()
	}
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &composer{
		kind:  kind,
		desc:  desc,
		title: title,
		at:    at,
		th:    th,
		log:   logger.With(zap.String("kind", string(kind))),
		opt:   opt,
	}
}

// run executes both rendering phases.
func (c *composer) run(steps []step) (*Document, error) {
	ps, err := c.renderContent(steps)
	if err != nil {
		return nil, err
	}
	err = c.stampFooters(ps)
	if err != nil {
		return nil, err
	}
	c.log.Debug("content rendered", zap.Int("pages", ps.Len()))
	return &Document{
		Pages:       ps,
		Descriptor:  c.desc,
		GeneratedAt: c.at,
	}, nil
}

// renderContent runs the section renderers in order.
func (c *composer) renderContent(steps []step) (*PageSet, error) {
	info := &pageSetInfo{
		title:         c.title,
		subject:       c.desc.DocumentName,
		seed:          c.desc.Seed(),
		generatedAt:   c.at,
		userPassword:  c.opt.UserPassword,
		ownerPassword: c.opt.OwnerPassword,
	}
	ps, err := newPageSet(paginate.A4, info, c.opt.Recorder)
	if err != nil {
		return nil, err
	}
	cursor, err := paginate.New(paginate.A4, ps, c.log)
	if err != nil {
		return nil, err
	}
	ctx := section.NewContext(ps, cursor, c.th, ps.Fonts(), c.log)

	for _, s := range steps {
		if err := s.render(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return ps, nil
}

func (c *composer) glossary(def []section.Term) []section.Term {
	switch {
	case c.opt.OmitGlossary:
		return nil
	case c.opt.Glossary != nil:
		return c.opt.Glossary
	default:
		return def
	}
}

func (c *composer) date() string {
	return c.at.Format("2 January 2006, 15:04")
}

// Audit renders a compliance audit report.
func Audit(res *model.AuditResult, desc model.Descriptor, opt *Options) (*Document, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	c := newComposer(model.KindAudit, desc, "Compliance Audit Report", res.GeneratedAt, opt)
	th := c.th
	score := model.Clamp(res.OverallScore)

	var gauges []section.Gauge
	for _, s := range res.SubScores.Ordered() {
		gauges = append(gauges, section.Gauge{Label: s.Key.Label(), Score: s.Value})
	}

	steps := []step{
		{"header", func(ctx *section.Context) error {
			return section.TitleBar(ctx, &section.Header{
				Title:    c.title,
				Subtitle: c.desc.DocumentName,
				Tag:      c.desc.TypeLabel,
			})
		}},
		{"metadata", func(ctx *section.Context) error {
			return section.MetadataRow(ctx, []section.Field{
				{Label: "Document", Value: orDash(c.desc.DocumentName)},
				{Label: "Report type", Value: orDash(c.desc.TypeLabel)},
				{Label: "Generated", Value: c.date()},
				{Label: "Status", Value: th.StatusLabel(res.Status)},
			})
		}},
		{"score", func(ctx *section.Context) error {
			return section.ScorePanel(ctx, &section.Score{
				Score:      score,
				RingColor:  th.ScoreColor(score),
				Caption:    "Overall score",
				Badge:      th.StatusLabel(res.Status),
				BadgeColor: th.StatusColor(res.Status),
				Headline:   th.ReadinessLabel(res.Status),
				Gauges:     gauges,
			})
		}},
		{"summary", func(ctx *section.Context) error {
			return section.SummaryPanel(ctx, "Summary", res.Summary)
		}},
		{"strengths", func(ctx *section.Context) error {
			return section.ItemList(ctx, "Strengths", res.Strengths)
		}},
		{"improvements", func(ctx *section.Context) error {
			return section.ItemList(ctx, "Areas for Improvement", res.Improvements)
		}},
		{"red flags", func(ctx *section.Context) error {
			return section.ItemList(ctx, "Red Flags", res.RedFlags)
		}},
		{"language fixes", func(ctx *section.Context) error {
			return section.LanguageFixes(ctx, res.LanguageFixes)
		}},
		{"planner questions", func(ctx *section.Context) error {
			return section.NumberedList(ctx, "Questions for the Planner", res.PlannerQuestions)
		}},
		{"mainstream check", func(ctx *section.Context) error {
			return section.MainstreamCheck(ctx, res.MainstreamInterfaceCheck)
		}},
		{"glossary", func(ctx *section.Context) error {
			return section.Glossary(ctx, c.glossary(AuditGlossary))
		}},
	}
	return c.run(steps)
}

// Eligibility renders an eligibility assessment report.
func Eligibility(res *model.EligibilityResult, desc model.Descriptor, opt *Options) (*Document, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	c := newComposer(model.KindEligibility, desc, "Eligibility Assessment Report", res.GeneratedAt, opt)
	th := c.th
	score := model.Clamp(res.ConfidenceScore)

	steps := []step{
		{"header", func(ctx *section.Context) error {
			return section.TitleBar(ctx, &section.Header{
				Title:    c.title,
				Subtitle: c.desc.DocumentName,
				Tag:      c.desc.TypeLabel,
			})
		}},
		{"metadata", func(ctx *section.Context) error {
			return section.MetadataRow(ctx, []section.Field{
				{Label: "Document", Value: orDash(c.desc.DocumentName)},
				{Label: "Report type", Value: orDash(c.desc.TypeLabel)},
				{Label: "Generated", Value: c.date()},
				{Label: "Verdict", Value: th.VerdictLabel(res.Verdict)},
			})
		}},
		{"confidence", func(ctx *section.Context) error {
			return section.ScorePanel(ctx, &section.Score{
				Score:      score,
				RingColor:  th.VerdictColor(res.Verdict),
				Caption:    "Confidence",
				Badge:      th.VerdictLabel(res.Verdict),
				BadgeColor: th.VerdictColor(res.Verdict),
				Headline:   th.PathwayLabel(res.RecommendedPathway),
				Detail:     "Recommended pathway",
			})
		}},
		{"coordinator report", func(ctx *section.Context) error {
			return section.SummaryPanel(ctx, "Coordinator Report", res.CoordinatorReport)
		}},
		{"participant report", func(ctx *section.Context) error {
			return section.SummaryPanel(ctx, "Participant Report", res.ParticipantReport)
		}},
		{"evidence", func(ctx *section.Context) error {
			return section.EvidenceSuggestions(ctx, res.EvidenceSuggestions)
		}},
		{"timeline", func(ctx *section.Context) error {
			return section.Timeline(ctx, res.NextSteps)
		}},
		{"references", func(ctx *section.Context) error {
			return section.References(ctx, res.References)
		}},
		{"glossary", func(ctx *section.Context) error {
			return section.Glossary(ctx, c.glossary(EligibilityGlossary))
		}},
	}
	return c.run(steps)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
