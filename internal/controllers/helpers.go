package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"skillbot/internal/providers"
	"skillbot/internal/services"
)

const (
	maxRequestBodySize = 1 << 20 // 1 MB
	UserIDHeader       = "X-User-ID"
)

var errMissingUser = errors.New("missing " + UserIDHeader + " header")

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// requireUser resolves the caller identity or answers 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if id == "" {
		writeError(w, r, http.StatusUnauthorized, errMissingUser.Error())
		return "", false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// checkInput runs gookit rules against already decoded fields and returns
// the first failure.
func checkInput(data map[string]any, rules map[string]string) error {
	v := validate.Map(data)
	for field, rule := range rules {
		v.StringRule(field, rule)
	}
	if !v.Validate() {
		return errors.New(v.Errors.One())
	}
	return nil
}

// checkMinutes bounds a decoded int. A missing field decodes to 0 and fails
// the lower bound like an explicit zero.
func checkMinutes(minutes, lo, hi int) error {
	if minutes < lo || minutes > hi {
		return fmt.Errorf("minutes must be between %d and %d", lo, hi)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, gson)
}

func writeRaw(w http.ResponseWriter, status int, gson []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorResponse{
		Error:     message,
		RequestID: providers.RequestIDFromContext(r.Context()),
	})
}

// writeServiceError maps service sentinels to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger providers.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrSkillNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidGoal), errors.Is(err, services.ErrEmptyMessage):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAccessDenied):
		writeError(w, r, http.StatusForbidden, "access denied")
	default:
		logger.Errorf(providers.TypeApp, "%s %s failed: %s", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
