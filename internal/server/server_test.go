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

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"seehuhn.de/go/auditreport/internal/config"
)

var pinned = time.Date(2026, 10, 16, 14, 5, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Addr: ":0", MaxBodyBytes: 64 << 10},
		Log:    config.LogConfig{Level: "debug", Format: "console"},
		Render: config.RenderConfig{TypeLabel: "NDIS Report", Glossary: true},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	s := New(cfg, zaptest.NewLogger(t), prometheus.NewRegistry())
	s.now = func() time.Time { return pinned }
	return s.Handler()
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), body.RequestID)
	return body
}

func TestRenderAudit(t *testing.T) {
	h := newTestServer(t, testConfig())

	body := `{"documentName": "Care Plan", "result": {
		"overallScore": 81, "status": "good",
		"summary": "Solid report.",
		"strengths": ["Goals are clear"],
		"redFlags": [{"finding": "Missing quote", "severity": "high"}]}}`
	rec := post(t, h, "/v1/reports/audit", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))

	_, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	want := fmt.Sprintf("care-plan-ndis-report-audit-%d.pdf", pinned.UnixMilli())
	assert.Equal(t, want, params["filename"])

	_, err = uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestRenderEligibility(t *testing.T) {
	h := newTestServer(t, testConfig())

	body := `{"documentName": "Assessment", "typeLabel": "SDA", "result": {
		"confidenceScore": 64, "verdict": "possibly",
		"recommendedPathway": "sda",
		"nextSteps": [{"order": 1, "title": "Gather evidence", "responsibleParty": "coordinator"}],
		"generatedAt": "2026-10-16T14:05:00Z"}}`
	rec := post(t, h, "/v1/reports/eligibility", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	_, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(params["filename"], "assessment-sda-eligibility-"))
}

func TestRenderErrors(t *testing.T) {
	h := newTestServer(t, testConfig())

	cases := []struct {
		name string
		path string
		body string
	}{
		{"malformed", "/v1/reports/audit", `{"result": `},
		{"missing result", "/v1/reports/audit", `{"documentName": "x"}`},
		{"null result", "/v1/reports/eligibility", `{"result": null}`},
		{"schema", "/v1/reports/audit", `{"result": {"overallScore": "ninety"}}`},
		{"wrong kind", "/v1/reports/eligibility", `{"result": {"overallScore": 90, "status": "good"}}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := post(t, h, c.path, c.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestBodyTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.Server.MaxBodyBytes = 128
	h := newTestServer(t, cfg)

	summary := strings.Repeat("x", 1024)
	body := `{"result": {"overallScore": 1, "status": "critical", "summary": "` + summary + `"}}`
	rec := post(t, h, "/v1/reports/audit", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	decodeError(t, rec)
}

func TestRequestIDPropagated(t *testing.T) {
	h := newTestServer(t, testConfig())
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/audit", strings.NewReader("{"))
	req.Header.Set(RequestIDHeader, id)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, id, decodeError(t, rec).RequestID)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(t, testConfig())

	post(t, h, "/v1/reports/audit", `{"result": {"overallScore": 50, "status": "needs_improvement"}}`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `auditreport_reports_rendered_total{kind="audit"} 1`)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestServer(t, testConfig())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/audit", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
