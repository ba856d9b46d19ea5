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

// Package auditreport renders compliance audit results and eligibility
// assessment results as paginated PDF reports.
//
// The reports are drawn with low-level primitives onto fixed A4 pages:
// a title bar, score gauges, coloured lists of findings, a two-column
// table of language corrections, a timeline of next steps and a glossary.
// Every page carries a footer of the form "Page k of N".
//
// A minimal use looks as follows:
//
//	out, err := auditreport.RenderAudit(res, "Plan review", "NDIS Report", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = os.WriteFile(out.FileName, out.Data, 0o644)
//
// Rendering is deterministic: the same result, rendered with the same
// generation time, gives byte-identical output.  Independent reports can
// be rendered concurrently.
package auditreport
