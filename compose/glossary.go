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

import "seehuhn.de/go/auditreport/section"

// AuditGlossary is the default glossary of audit reports.
var AuditGlossary = []section.Term{
	{Term: "NDIS", Definition: "National Disability Insurance Scheme, which funds supports for people with permanent and significant disability."},
	{Term: "Reasonable and necessary", Definition: "The test a support must meet to be funded: it relates to the disability, represents value for money and is likely to be effective."},
	{Term: "Nexus", Definition: "The link between a recommended support and the functional impact of the participant's disability."},
	{Term: "Value for money", Definition: "Whether the benefit of a support is reasonable compared to its cost and to alternative supports."},
	{Term: "Significant change", Definition: "A change in circumstances or needs which justifies a plan reassessment."},
	{Term: "Mainstream interface", Definition: "The boundary between supports funded by the scheme and services provided by health, education, justice and other systems."},
	{Term: "Functional capacity", Definition: "The participant's ability to carry out everyday activities, described in terms of support needs."},
	{Term: "Lodgement", Definition: "Submission of a report to the agency as part of a plan review or access request."},
	{Term: "Red flag", Definition: "A finding which is likely to cause a report to be rejected unless it is addressed."},
	{Term: "Planner", Definition: "The agency staff member who reviews evidence and makes funding decisions."},
}

// EligibilityGlossary is the default glossary of eligibility reports.
var EligibilityGlossary = []section.Term{
	{Term: "SDA", Definition: "Specialist Disability Accommodation: housing designed for people with extreme functional impairment or very high support needs."},
	{Term: "SIL", Definition: "Supported Independent Living: help with daily tasks in a shared or individual living arrangement."},
	{Term: "ILO", Definition: "Individualised Living Options: flexible, person-centred living arrangements outside group homes."},
	{Term: "Home modifications", Definition: "Changes to the structure or fixtures of a home which allow safe access and use."},
	{Term: "Assistive technology", Definition: "Equipment or devices which help a person do things they otherwise could not do, or do them more safely."},
	{Term: "Capacity building", Definition: "Supports which develop a participant's independence and skills over time."},
	{Term: "Verdict", Definition: "The assessed likelihood that the participant meets the criteria for the recommended pathway."},
	{Term: "Confidence", Definition: "How strongly the available evidence supports the verdict, from 0 to 100."},
	{Term: "Support coordinator", Definition: "A person who helps the participant use their plan and connect with providers."},
}
