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

// Package theme holds the fixed palette and type sizes of the reports.
//
// All lookups from enumerated values to colours are exhaustive switches
// with a default arm, so that unknown values are drawn in neutral colours.
package theme

import (
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/auditreport/model"
)

// RGB is an sRGB colour with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Color converts c to a PDF colour.
func (c RGB) Color() color.Color {
	return color.DeviceRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// Lighten mixes c with white.  The amount t ranges from 0 (no change) to 1
// (white).
func (c RGB) Lighten(t float64) RGB {
	t = min(max(t, 0), 1)
	mix := func(x uint8) uint8 {
		return uint8(float64(x) + (255-float64(x))*t + 0.5)
	}
	return RGB{mix(c.R), mix(c.G), mix(c.B)}
}

// Sizes lists the font sizes in PDF points.
type Sizes struct {
	Title   float64
	Heading float64
	Body    float64
	Small   float64
	Badge   float64
	Footer  float64
	Score   float64
}

// Theme is the set of colours and sizes used by the section renderers.
// A Theme is never modified during rendering and can be shared between
// concurrent renders.
type Theme struct {
	Primary    RGB // header bar and section headings
	Text       RGB
	Muted      RGB
	Border     RGB
	Track      RGB // unfilled part of gauges
	Panel      RGB // background of summary panels
	White      RGB
	Excellent  RGB
	Good       RGB
	Warning    RGB
	Danger     RGB
	Restricted RGB
	Neutral    RGB
	Info       RGB

	Sizes Sizes
}

// Default returns the standard report theme.
func Default() *Theme {
	return &Theme{
		Primary:    RGB{0x1e, 0x3a, 0x5f},
		Text:       RGB{0x1f, 0x29, 0x37},
		Muted:      RGB{0x6b, 0x72, 0x80},
		Border:     RGB{0xd1, 0xd5, 0xdb},
		Track:      RGB{0xe5, 0xe7, 0xeb},
		Panel:      RGB{0xf3, 0xf4, 0xf6},
		White:      RGB{0xff, 0xff, 0xff},
		Excellent:  RGB{0x05, 0x96, 0x69},
		Good:       RGB{0x0d, 0x94, 0x88},
		Warning:    RGB{0xd9, 0x77, 0x06},
		Danger:     RGB{0xdc, 0x26, 0x26},
		Restricted: RGB{0x7c, 0x3a, 0xed},
		Neutral:    RGB{0x6b, 0x72, 0x80},
		Info:       RGB{0x25, 0x63, 0xeb},
		Sizes: Sizes{
			Title:   18,
			Heading: 13,
			Body:    9.5,
			Small:   8,
			Badge:   7,
			Footer:  7.5,
			Score:   22,
		},
	}
}

// StatusColor returns the badge colour for an audit status.
// The statuses "excellent" and "good" share a lodgement label but are
// drawn in different colours.
func (t *Theme) StatusColor(s model.Status) RGB {
	switch s {
	case model.StatusExcellent:
		return t.Excellent
	case model.StatusGood:
		return t.Good
	case model.StatusNeedsImprovement:
		return t.Warning
	case model.StatusCritical:
		return t.Danger
	case model.StatusContentRestricted:
		return t.Restricted
	default:
		return t.Neutral
	}
}

// StatusLabel returns the badge text for an audit status.
func (t *Theme) StatusLabel(s model.Status) string {
	switch s {
	case model.StatusExcellent:
		return "Excellent"
	case model.StatusGood:
		return "Good"
	case model.StatusNeedsImprovement:
		return "Needs improvement"
	case model.StatusCritical:
		return "Critical"
	case model.StatusContentRestricted:
		return "Content restricted"
	default:
		return "Unknown"
	}
}

// ReadinessLabel describes whether an audited report can be lodged.
func (t *Theme) ReadinessLabel(s model.Status) string {
	switch s {
	case model.StatusExcellent, model.StatusGood:
		return "Ready for lodgement"
	case model.StatusNeedsImprovement:
		return "Revise before lodgement"
	case model.StatusCritical:
		return "Not ready for lodgement"
	case model.StatusContentRestricted:
		return "Review unavailable"
	default:
		return "Status unknown"
	}
}

// ScoreColor returns the colour of the tier a score falls into.
// The tiers use the same colours as the matching audit statuses.
func (t *Theme) ScoreColor(score int) RGB {
	switch {
	case score >= 85:
		return t.Excellent
	case score >= 70:
		return t.Good
	case score >= 50:
		return t.Warning
	default:
		return t.Danger
	}
}

// SeverityStyle gives the colours of a list row.
type SeverityStyle struct {
	Background RGB
	Accent     RGB
	Label      string
}

// Severity returns the row style for a finding severity.
func (t *Theme) Severity(s model.Severity) SeverityStyle {
	var accent RGB
	var label string
	switch s {
	case model.SeverityCritical:
		accent, label = t.Danger, "Critical"
	case model.SeverityHigh:
		accent, label = RGB{0xea, 0x58, 0x0c}, "High"
	case model.SeverityMedium:
		accent, label = t.Warning, "Medium"
	case model.SeverityLow:
		accent, label = t.Info, "Low"
	default:
		accent, label = t.Neutral, "Unknown"
	}
	return SeverityStyle{
		Background: accent.Lighten(0.9),
		Accent:     accent,
		Label:      label,
	}
}

// VerdictColor returns the panel colour for an eligibility verdict.
func (t *Theme) VerdictColor(v model.Verdict) RGB {
	switch v {
	case model.VerdictLikely:
		return t.Excellent
	case model.VerdictPossibly:
		return t.Warning
	case model.VerdictNotEligible:
		return t.Danger
	case model.VerdictContentRestricted:
		return t.Restricted
	default:
		return t.Neutral
	}
}

// VerdictLabel returns the text shown for an eligibility verdict.
func (t *Theme) VerdictLabel(v model.Verdict) string {
	switch v {
	case model.VerdictLikely:
		return "Likely eligible"
	case model.VerdictPossibly:
		return "Possibly eligible"
	case model.VerdictNotEligible:
		return "Not eligible"
	case model.VerdictContentRestricted:
		return "Content restricted"
	default:
		return "Unknown"
	}
}

// PathwayLabel returns the name of a funding pathway.
// Unknown pathways are shown verbatim.
func (t *Theme) PathwayLabel(p model.Pathway) string {
	switch p {
	case model.PathwaySDA:
		return "Specialist Disability Accommodation"
	case model.PathwaySIL:
		return "Supported Independent Living"
	case model.PathwayILO:
		return "Individualised Living Options"
	case model.PathwayHomeModifications:
		return "Home Modifications"
	case model.PathwayAssistiveTechnology:
		return "Assistive Technology"
	case model.PathwayCapacityBuilding:
		return "Capacity Building"
	case "":
		return "Not specified"
	default:
		return string(p)
	}
}

// PriorityColor returns the badge colour for an evidence priority.
func (t *Theme) PriorityColor(p model.Priority) RGB {
	switch p {
	case model.PriorityEssential:
		return t.Danger
	case model.PriorityRecommended:
		return t.Warning
	case model.PriorityOptional:
		return t.Info
	default:
		return t.Neutral
	}
}

// PartyColor returns the badge colour for the party responsible for a
// next step.
func (t *Theme) PartyColor(p model.Party) RGB {
	switch p {
	case model.PartyParticipant:
		return t.Excellent
	case model.PartyCoordinator:
		return t.Primary
	case model.PartyProvider:
		return t.Info
	case model.PartyAuthority:
		return t.Restricted
	default:
		return t.Neutral
	}
}
