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

package model

import (
	"bytes"
	"encoding/json"
	"errors"
)

// DefaultCategory is the category of findings which do not specify one.
const DefaultCategory = "General"

// Finding is the structured form of a list [Item].
type Finding struct {
	Finding          string   `json:"finding"`
	Category         string   `json:"category,omitempty"`
	Severity         Severity `json:"severity,omitempty"`
	Quote            string   `json:"quote,omitempty"`
	SectionReference string   `json:"sectionReference,omitempty"`
	Remediation      string   `json:"remediation,omitempty"`
}

// Item is one entry of a strengths, improvements or red flags list.
// An item is either plain text or a structured [Finding].
//
// In JSON, plain text items are strings and structured items are objects.
type Item struct {
	structured bool
	text       string
	finding    Finding
}

// PlainText returns an item which consists of text only.
func PlainText(text string) Item {
	return Item{text: text}
}

// Structured returns an item holding a structured finding.
func Structured(f Finding) Item {
	return Item{structured: true, finding: f}
}

// IsPlainText reports whether the item was given as plain text.
func (it Item) IsPlainText() bool {
	return !it.structured
}

// Normalize returns the item as a finding.  Plain text becomes the text of
// the finding, and missing categories and severities are filled in with
// [DefaultCategory] and [SeverityMedium].
func (it Item) Normalize() Finding {
	f := it.finding
	if !it.structured {
		f = Finding{Finding: it.text}
	}
	if f.Category == "" {
		f.Category = DefaultCategory
	}
	if f.Severity == "" {
		f.Severity = SeverityMedium
	}
	return f
}

// MarshalJSON implements the [json.Marshaler] interface.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.structured {
		return json.Marshal(it.finding)
	}
	return json.Marshal(it.text)
}

var errBadItem = errors.New("list item must be a string or an object")

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (it *Item) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errBadItem
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*it = PlainText(s)
	case '{':
		var f Finding
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*it = Structured(f)
	case 'n':
		if string(data) != "null" {
			return errBadItem
		}
	default:
		return errBadItem
	}
	return nil
}
