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

// Auditreport renders an audit or eligibility result, given as a JSON or
// YAML file, into a PDF report.
//
// Usage:
//
//	auditreport [-kind audit|eligibility] [-name N] [-type T] [-o out.pdf|dir/] input.json
//
// Without -o, the report is written to standard output if this is not a
// terminal, and to a file with the derived name in the current directory
// otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"seehuhn.de/go/auditreport"
	"seehuhn.de/go/auditreport/internal/config"
	"seehuhn.de/go/auditreport/internal/input"
	"seehuhn.de/go/auditreport/internal/logging"
	"seehuhn.de/go/auditreport/model"
)

var (
	kind       = flag.String("kind", "audit", "report kind (audit or eligibility)")
	docName    = flag.String("name", "", "name of the assessed document")
	typeLabel  = flag.String("type", "", "report type label (default from config)")
	outName    = flag.String("o", "", "output file, or directory ending in /")
	configFile = flag.String("config", "", "configuration file")
	verbose    = flag.Bool("v", false, "log page breaks and skipped sections")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.{json,yaml}\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	err := run(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "auditreport: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath string) error {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(level, "console")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	format, err := input.FormatFromPath(inPath)
	if err != nil {
		return err
	}
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	in, err := input.Decode(f, format, model.Kind(*kind))
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	label := *typeLabel
	if label == "" {
		label = cfg.Render.TypeLabel
	}
	opt := &auditreport.Options{
		Logger:        logger,
		OmitGlossary:  !cfg.Render.Glossary,
		UserPassword:  cfg.Render.UserPassword,
		OwnerPassword: cfg.Render.OwnerPassword,
	}
	var out *auditreport.Output
	switch in.Kind {
	case model.KindAudit:
		out, err = auditreport.RenderAudit(in.Audit, *docName, label, opt)
	case model.KindEligibility:
		out, err = auditreport.RenderEligibility(in.Eligibility, *docName, label, opt)
	}
	if err != nil {
		return err
	}

	isTerm := term.IsTerminal(int(os.Stdout.Fd()))
	path, toStdout := outputPath(*outName, out.FileName, isTerm)
	if toStdout {
		_, err = os.Stdout.Write(out.Data)
		return err
	}
	err = os.WriteFile(path, out.Data, 0o644)
	if err != nil {
		return err
	}
	logger.Info("report written", zap.String("file", path), zap.Int("pages", out.Pages))
	return nil
}

// outputPath decides where a report goes.  An empty destination means
// standard output, unless stdout is a terminal.  A destination ending in a
// path separator, or naming an existing directory, receives a file with
// the derived name.
func outputPath(dest, derived string, stdoutIsTerminal bool) (string, bool) {
	switch {
	case dest == "" && !stdoutIsTerminal:
		return "", true
	case dest == "":
		return derived, false
	case dest == "-":
		return "", true
	case strings.HasSuffix(dest, "/") || strings.HasSuffix(dest, string(filepath.Separator)):
		return filepath.Join(dest, derived), false
	}
	if st, err := os.Stat(dest); err == nil && st.IsDir() {
		return filepath.Join(dest, derived), false
	}
	return dest, false
}
