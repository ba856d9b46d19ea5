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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, int64(4<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "NDIS Report", cfg.Render.TypeLabel)
	assert.True(t, cfg.Render.Glossary)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := filepath.Join(dir, "custom.yaml")
	data := []byte("server:\n  addr: \":9000\"\n  read_timeout: 3s\nlog:\n  level: debug\nrender:\n  glossary: false\n")
	require.NoError(t, os.WriteFile(file, data, 0o644))
	t.Setenv("AUDITREPORT_LOG_FORMAT", "console")
	t.Setenv("AUDITREPORT_RENDER_TYPE_LABEL", "Eligibility")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "Eligibility", cfg.Render.TypeLabel)
	assert.False(t, cfg.Render.Glossary)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env", []byte("AUDITREPORT_SERVER_ADDR=:7070\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("AUDITREPORT_SERVER_ADDR") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Addr: "", MaxBodyBytes: 0},
		Log:    LogConfig{Level: "loud", Format: "xml"},
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"server.addr", "max_body_bytes", "log.level", "log.format"} {
		assert.Contains(t, err.Error(), key)
	}
}
