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

package main

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	const name = "care-plan-audit-1.pdf"

	cases := []struct {
		dest     string
		terminal bool
		path     string
		stdout   bool
	}{
		{"", false, "", true},
		{"", true, name, false},
		{"-", true, "", true},
		{"out/", false, filepath.Join("out", name), false},
		{dir, false, filepath.Join(dir, name), false},
		{filepath.Join(dir, "x.pdf"), true, filepath.Join(dir, "x.pdf"), false},
	}
	for _, c := range cases {
		path, stdout := outputPath(c.dest, name, c.terminal)
		if path != c.path || stdout != c.stdout {
			t.Errorf("outputPath(%q, %t) = %q, %t; want %q, %t",
				c.dest, c.terminal, path, stdout, c.path, c.stdout)
		}
	}
}
