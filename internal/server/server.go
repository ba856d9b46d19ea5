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

// Package server implements the HTTP interface of the report service.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"seehuhn.de/go/auditreport"
	"seehuhn.de/go/auditreport/internal/config"
	"seehuhn.de/go/auditreport/internal/input"
	"seehuhn.de/go/auditreport/internal/metrics"
	"seehuhn.de/go/auditreport/model"
)

// RequestIDHeader carries the identifier of a request in responses.
const RequestIDHeader = "X-Request-ID"

// Registry is both a metrics registerer and a gatherer, for example a
// [*prometheus.Registry].
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// Server renders reports on request.
type Server struct {
	server  config.ServerConfig
	render  config.RenderConfig
	log     *zap.Logger
	metrics *metrics.Metrics
	gather  prometheus.Gatherer

	// now is used for results without a generation time.
	now func() time.Time
}

// New returns a server using the given settings.  Metrics are registered
// with reg.
func New(cfg *config.Config, logger *zap.Logger, reg Registry) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		server:  cfg.Server,
		render:  cfg.Render,
		log:     logger,
		metrics: metrics.New(reg),
		gather:  reg,
		now:     time.Now,
	}
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/reports/audit", s.handleRender(model.KindAudit))
	mux.HandleFunc("POST /v1/reports/eligibility", s.handleRender(model.KindEligibility))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gather, promhttp.HandlerOpts{}))
	return s.withRequestID(mux)
}

// renderRequest is the body of a render request.
type renderRequest struct {
	DocumentName string          `json:"documentName"`
	TypeLabel    string          `json:"typeLabel"`
	Result       json.RawMessage `json:"result"`
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

func (s *Server) handleRender(kind model.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqID := w.Header().Get(RequestIDHeader)
		log := s.log.With(zap.String("requestId", reqID), zap.String("kind", string(kind)))

		r.Body = http.MaxBytesReader(w, r.Body, s.server.MaxBodyBytes)
		var req renderRequest
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(&req); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.writeError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
				return
			}
			s.writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
			return
		}
		if len(req.Result) == 0 || string(req.Result) == "null" {
			s.writeError(w, http.StatusBadRequest, auditreport.ErrNilResult.Error())
			return
		}

		in, err := input.DecodeJSON(req.Result, kind)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		typeLabel := req.TypeLabel
		if typeLabel == "" {
			typeLabel = s.render.TypeLabel
		}
		opt := &auditreport.Options{
			Logger:        log,
			OmitGlossary:  !s.render.Glossary,
			Now:           s.now,
			UserPassword:  s.render.UserPassword,
			OwnerPassword: s.render.OwnerPassword,
		}

		start := time.Now()
		var out *auditreport.Output
		switch kind {
		case model.KindAudit:
			out, err = auditreport.RenderAudit(in.Audit, req.DocumentName, typeLabel, opt)
		case model.KindEligibility:
			out, err = auditreport.RenderEligibility(in.Eligibility, req.DocumentName, typeLabel, opt)
		}
		pages := 0
		if out != nil {
			pages = out.Pages
		}
		s.metrics.Observe(string(kind), pages, time.Since(start), err)
		if err != nil {
			log.Error("rendering failed", zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "rendering failed")
			return
		}

		h := w.Header()
		h.Set("Content-Type", "application/pdf")
		h.Set("Content-Length", strconv.Itoa(len(out.Data)))
		h.Set("Content-Disposition",
			mime.FormatMediaType("attachment", map[string]string{"filename": out.FileName}))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(out.Data); err != nil {
			log.Warn("writing response failed", zap.Error(err))
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := errorBody{
		Error:     msg,
		RequestID: w.Header().Get(RequestIDHeader),
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Debug("writing error response failed", zap.Error(err))
	}
}

// statusWriter records the status code of a response.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	if sw.status == 0 {
		sw.status = http.StatusOK
	}
	return sw.ResponseWriter.Write(b)
}

// withRequestID assigns an identifier to every request and logs the
// request once it has been served.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		sw := &statusWriter{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(sw, r)
		s.log.Info("request served",
			zap.String("requestId", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Duration("duration", time.Since(start)))
	})
}
