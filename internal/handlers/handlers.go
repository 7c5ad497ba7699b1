package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/render"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/service"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
)

// Pinger checks a dependency, e.g. the Redis cache
type Pinger func(ctx context.Context) error

// Handler contains dependencies for HTTP handlers
type Handler struct {
	svc    *service.Service
	ping   Pinger
	logger *logrus.Logger
	now    func() time.Time
}

// NewHandler creates a new handler. ping may be nil when no cache is configured.
func NewHandler(svc *service.Service, ping Pinger, logger *logrus.Logger) *Handler {
	return &Handler{
		svc:    svc,
		ping:   ping,
		logger: logger,
		now:    time.Now,
	}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			h.logger.WithError(err).Warn("cache health check failed")
			respondError(w, http.StatusServiceUnavailable, "cache unhealthy")
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": h.now().UTC(),
		"service":   "player-report-service",
	})
}

// GetPlayerReport builds the report of one player
// Query params: name (required), season, locale, format
func (h *Handler) GetPlayerReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("name"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	format, ok := h.format(w, r)
	if !ok {
		return
	}

	bundle, err := h.svc.Report(r.Context(), service.Request{
		Name:   name,
		Season: q.Get("season"),
		Locale: q.Get("locale"),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := http.StatusOK
	switch bundle.Status {
	case publisher.StatusInvalidSeason:
		status = http.StatusBadRequest
	case publisher.StatusNotFound:
		status = http.StatusNotFound
	case publisher.StatusFailed:
		status = http.StatusBadGateway
	}

	h.respondRendered(w, status, format, func(buf *bytes.Buffer) error {
		return render.Report(buf, format, bundle)
	})
}

// ListPlayers returns the roster of a team, or every player
// Query params: team, format
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	format, ok := h.format(w, r)
	if !ok {
		return
	}

	players, err := h.svc.Players(r.Context(), r.URL.Query().Get("team"))
	if errors.Is(err, contracts.ErrUnknownTeam) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("listing players failed")
		respondError(w, http.StatusBadGateway, "failed to list players")
		return
	}

	h.respondRendered(w, http.StatusOK, format, func(buf *bytes.Buffer) error {
		return render.Players(buf, format, players)
	})
}

// ListTeams returns the team directory
// Query params: locale, format
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	format, ok := h.format(w, r)
	if !ok {
		return
	}

	teams, err := h.svc.Teams(r.Context(), r.URL.Query().Get("locale"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondRendered(w, http.StatusOK, format, func(buf *bytes.Buffer) error {
		return render.Teams(buf, format, teams)
	})
}

// GetScoreboard returns the games of one day
// Query params: date (YYYY-MM-DD, default today), format
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	format, ok := h.format(w, r)
	if !ok {
		return
	}

	date := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	board, err := h.svc.Scoreboard(r.Context(), date)
	if err != nil {
		h.logger.WithError(err).Error("scoreboard failed")
		respondError(w, http.StatusBadGateway, "failed to load scoreboard")
		return
	}

	h.respondRendered(w, http.StatusOK, format, func(buf *bytes.Buffer) error {
		return render.Scoreboard(buf, format, board)
	})
}

// format reads the format query param; JSON is the API default
func (h *Handler) format(w http.ResponseWriter, r *http.Request) (render.Format, bool) {
	raw := r.URL.Query().Get("format")
	if raw == "" {
		return render.FormatJSON, true
	}
	f, err := render.ParseFormat(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return f, true
}

// respondRendered renders into a buffer first so a render error can still become a 500
func (h *Handler) respondRendered(w http.ResponseWriter, status int, f render.Format, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		h.logger.WithError(err).Error("render failed")
		respondError(w, http.StatusInternalServerError, "failed to render response")
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
