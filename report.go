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

package auditreport

import (
	"go.uber.org/zap"

	"seehuhn.de/go/auditreport/compose"
	"seehuhn.de/go/auditreport/export"
	"seehuhn.de/go/auditreport/model"
)

// Options control the rendering of a report.
type Options = compose.Options

// Output is a rendered report, together with its suggested file name.
type Output = export.Output

// ErrNilResult is returned when there is no result to render.
var ErrNilResult = compose.ErrNilResult

// RenderAudit renders the result of a compliance audit.
// The options may be nil.
func RenderAudit(res *model.AuditResult, documentName, typeLabel string, opt *Options) (*Output, error) {
	desc := model.Descriptor{
		DocumentName: documentName,
		TypeLabel:    typeLabel,
		Kind:         model.KindAudit,
	}
	doc, err := compose.Audit(res, desc, opt)
	if err != nil {
		return nil, err
	}
	return finalize(doc, opt)
}

// RenderEligibility renders the result of an eligibility assessment.
// The options may be nil.
func RenderEligibility(res *model.EligibilityResult, documentName, typeLabel string, opt *Options) (*Output, error) {
	desc := model.Descriptor{
		DocumentName: documentName,
		TypeLabel:    typeLabel,
		Kind:         model.KindEligibility,
	}
	doc, err := compose.Eligibility(res, desc, opt)
	if err != nil {
		return nil, err
	}
	return finalize(doc, opt)
}

func finalize(doc *compose.Document, opt *Options) (*Output, error) {
	out, err := export.Finalize(doc)
	if err != nil {
		return nil, err
	}
	if opt != nil && opt.Logger != nil {
		opt.Logger.Info("report rendered",
			zap.String("kind", string(doc.Descriptor.Kind)),
			zap.Int("pages", out.Pages),
			zap.Int("bytes", len(out.Data)),
			zap.String("file", out.FileName))
	}
	return out, nil
}
