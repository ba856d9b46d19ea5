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

// Package model describes the results which can be rendered into reports.
//
// All types in this package are read-only inputs.  Enumerations are string
// types, so that values outside the known set survive decoding; the
// renderers map such values to neutral default styles.
package model

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Status is the overall outcome of a compliance audit.
type Status string

// These are the known audit statuses.
const (
	StatusExcellent         Status = "excellent"
	StatusGood              Status = "good"
	StatusNeedsImprovement  Status = "needs_improvement"
	StatusCritical          Status = "critical"
	StatusContentRestricted Status = "content_restricted"
)

// Severity classifies a finding.
type Severity string

// These are the known severities.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Verdict is the outcome of an eligibility assessment.
type Verdict string

// These are the known verdicts.
const (
	VerdictLikely            Verdict = "likely"
	VerdictPossibly          Verdict = "possibly"
	VerdictNotEligible       Verdict = "not_eligible"
	VerdictContentRestricted Verdict = "content_restricted"
)

// Pathway is the funding pathway recommended by an eligibility assessment.
type Pathway string

// These are the known pathways.
const (
	PathwaySDA                 Pathway = "sda"
	PathwaySIL                 Pathway = "sil"
	PathwayILO                 Pathway = "ilo"
	PathwayHomeModifications   Pathway = "home_modifications"
	PathwayAssistiveTechnology Pathway = "assistive_technology"
	PathwayCapacityBuilding    Pathway = "capacity_building"
)

// Priority ranks an evidence suggestion.
type Priority string

// These are the known priorities.
const (
	PriorityEssential   Priority = "essential"
	PriorityRecommended Priority = "recommended"
	PriorityOptional    Priority = "optional"
)

// Party is the party responsible for a next step.
type Party string

// These are the known responsible parties.
const (
	PartyParticipant Party = "participant"
	PartyCoordinator Party = "coordinator"
	PartyProvider    Party = "provider"
	PartyAuthority   Party = "authority"
)

// SubScoreKey names one of the audit sub-scores.
type SubScoreKey string

// These are the audit sub-scores.
const (
	SubScoreCompliance        SubScoreKey = "compliance"
	SubScoreNexus             SubScoreKey = "nexus"
	SubScoreValueForMoney     SubScoreKey = "valueForMoney"
	SubScoreEvidence          SubScoreKey = "evidence"
	SubScoreSignificantChange SubScoreKey = "significantChange"
)

// SubScoreKeys lists the sub-scores in presentation order.
var SubScoreKeys = []SubScoreKey{
	SubScoreCompliance,
	SubScoreNexus,
	SubScoreValueForMoney,
	SubScoreEvidence,
	SubScoreSignificantChange,
}

// Label returns the human readable name of the sub-score.
func (k SubScoreKey) Label() string {
	switch k {
	case SubScoreCompliance:
		return "Compliance"
	case SubScoreNexus:
		return "Nexus"
	case SubScoreValueForMoney:
		return "Value for money"
	case SubScoreEvidence:
		return "Evidence"
	case SubScoreSignificantChange:
		return "Significant change"
	default:
		return string(k)
	}
}

// SubScores maps sub-score names to values.  Keys outside [SubScoreKeys]
// are ignored when rendering.
type SubScores map[SubScoreKey]int

// SubScore is one entry of [SubScores].
type SubScore struct {
	Key   SubScoreKey
	Value int
}

// Ordered returns the sub-scores which are present, in presentation order.
func (s SubScores) Ordered() []SubScore {
	var res []SubScore
	for _, key := range SubScoreKeys {
		if v, ok := s[key]; ok {
			res = append(res, SubScore{Key: key, Value: v})
		}
	}
	return res
}

// LanguageFix is a suggested rewording of a passage.
type LanguageFix struct {
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason"`
	Category  string `json:"category"`
}

// MainstreamCheck records whether a plan crosses into services which
// mainstream systems are responsible for.
type MainstreamCheck struct {
	HealthSystem        bool   `json:"healthSystem"`
	EducationSystem     bool   `json:"educationSystem"`
	JusticeSystem       bool   `json:"justiceSystem"`
	EverydayLivingCosts bool   `json:"everydayLivingCosts"`
	Notes               string `json:"notes"`
}

// Flag is one of the risk flags of a [MainstreamCheck].
type Flag struct {
	Label  string
	Raised bool
}

// Flags returns the four risk flags in presentation order.
func (m *MainstreamCheck) Flags() []Flag {
	return []Flag{
		{"Health system", m.HealthSystem},
		{"Education system", m.EducationSystem},
		{"Justice system", m.JusticeSystem},
		{"Everyday living costs", m.EverydayLivingCosts},
	}
}

// AuditResult is the outcome of a compliance audit of a report.
type AuditResult struct {
	OverallScore             int              `json:"overallScore"`
	Status                   Status           `json:"status"`
	SubScores                SubScores        `json:"subScores,omitempty"`
	Summary                  string           `json:"summary"`
	Strengths                []Item           `json:"strengths,omitempty"`
	Improvements             []Item           `json:"improvements,omitempty"`
	RedFlags                 []Item           `json:"redFlags,omitempty"`
	LanguageFixes            []LanguageFix    `json:"languageFixes,omitempty"`
	PlannerQuestions         []string         `json:"plannerQuestions,omitempty"`
	MainstreamInterfaceCheck *MainstreamCheck `json:"mainstreamInterfaceCheck,omitempty"`
	GeneratedAt              time.Time        `json:"generatedAt"`
}

// EvidenceSuggestion names a piece of evidence which would strengthen an
// application.
type EvidenceSuggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Examples    []string `json:"examples,omitempty"`
}

// Reference points to a section of the legislation or the guidelines.
type Reference struct {
	Title     string `json:"title"`
	Section   string `json:"section"`
	Relevance string `json:"relevance"`
}

// NextStep is one entry of the action timeline.
type NextStep struct {
	Order            int    `json:"order"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Timeframe        string `json:"timeframe"`
	ResponsibleParty Party  `json:"responsibleParty"`
}

// EligibilityResult is the outcome of an eligibility assessment.
type EligibilityResult struct {
	ConfidenceScore     int                  `json:"confidenceScore"`
	Verdict             Verdict              `json:"verdict"`
	RecommendedPathway  Pathway              `json:"recommendedPathway"`
	CoordinatorReport   string               `json:"coordinatorReport"`
	ParticipantReport   string               `json:"participantReport"`
	EvidenceSuggestions []EvidenceSuggestion `json:"evidenceSuggestions,omitempty"`
	References          []Reference          `json:"references,omitempty"`
	NextSteps           []NextStep           `json:"nextSteps,omitempty"`
	GeneratedAt         time.Time            `json:"generatedAt"`
}

// SortedNextSteps returns a copy of the next steps, sorted by ascending
// order.
func (e *EligibilityResult) SortedNextSteps() []NextStep {
	return SortNextSteps(e.NextSteps)
}

// SortNextSteps returns a copy of steps, sorted by ascending order.
// Steps with equal order keep their relative position.
func SortNextSteps(steps []NextStep) []NextStep {
	steps = slices.Clone(steps)
	slices.SortStableFunc(steps, func(a, b NextStep) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return steps
}

// Kind distinguishes the two types of report.
type Kind string

// These are the supported report kinds.
const (
	KindAudit       Kind = "audit"
	KindEligibility Kind = "eligibility"
)

// Descriptor holds the labels which are used to name a rendered report.
type Descriptor struct {
	DocumentName string
	TypeLabel    string
	Kind         Kind
}

// Seed returns the base of the file name for the report.
// Empty parts are left out.
func (d Descriptor) Seed() string {
	var parts []string
	for _, p := range []string{d.DocumentName, d.TypeLabel, string(d.Kind)} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// Clamp restricts a score to the range [0, 100].
func Clamp(score int) int {
	return min(max(score, 0), 100)
}
