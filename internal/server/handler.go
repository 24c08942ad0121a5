package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/piwi3910/PlanterCut/internal/diagram"
	"github.com/piwi3910/PlanterCut/internal/engine"
	"github.com/piwi3910/PlanterCut/internal/export"
	"github.com/piwi3910/PlanterCut/internal/model"
	"github.com/piwi3910/PlanterCut/internal/share"
)

const maxBodySize = 1 << 20 // 1MB

type layoutResponse struct {
	Computed bool         `json:"computed"`
	Layout   model.Layout `json:"layout"`
	Text     string       `json:"text"`
}

type shareResponse struct {
	Link string `json:"link"`
}

// decodeConfig reads a PlanterConfig from the request body. It writes a 400
// and returns false on failure.
func decodeConfig(w http.ResponseWriter, r *http.Request) (model.PlanterConfig, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	var cfg model.PlanterConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return model.PlanterConfig{}, false
	}
	return cfg, true
}

// compute runs the planner and maps infeasible or oversized configs to 422.
func compute(w http.ResponseWriter, cfg model.PlanterConfig) (model.Layout, bool) {
	layout, err := engine.ComputeLayout(cfg)
	if err != nil {
		if errors.Is(err, engine.ErrPartExceedsStock) || errors.Is(err, engine.ErrTooManyPieces) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return model.Layout{}, false
		}
		slog.Error("compute layout failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return model.Layout{}, false
	}
	return layout, true
}

func (s *Server) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.defaults)
}

// Layout computes the cut list for the posted config. Incomplete configs
// come back with computed=false rather than an error.
func (s *Server) Layout(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	layout, ok := compute(w, cfg)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{
		Computed: layout.Computed(),
		Layout:   layout,
		Text:     export.RenderText(layout),
	})
}

func (s *Server) Diagram(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	layout, ok := compute(w, cfg)
	if !ok {
		return
	}
	scene, err := diagram.Compose(layout)
	if err != nil {
		if errors.Is(err, diagram.ErrNotComputed) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		slog.Error("compose diagram failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSVG(&buf, scene); err != nil {
		slog.Error("render svg failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (s *Server) Share(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	link, err := share.Link(s.cfg.ShareBaseURL, cfg)
	if err != nil {
		slog.Error("build share link failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, shareResponse{Link: link})
}

// ShareQR renders the share link for the config query parameter as a PNG.
func (s *Server) ShareQR(w http.ResponseWriter, r *http.Request) {
	encoded := r.URL.Query().Get(share.QueryParam)
	if encoded == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing config parameter"})
		return
	}
	cfg, err := share.Decode(encoded, s.defaults)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	link, err := share.Link(s.cfg.ShareBaseURL, cfg)
	if err != nil {
		slog.Error("build share link failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	png, err := share.QRCode(link, share.DefaultQRSize)
	if err != nil {
		slog.Error("render qr code failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
