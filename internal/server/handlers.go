// internal/server/handlers.go
package server

import (
	"encoding/json"
	"net/http"

	"college-compass/internal/catalog"
	"college-compass/internal/common/errors"
	"college-compass/internal/common/metrics"
	"college-compass/internal/insights"
	"college-compass/internal/models"

	"github.com/google/uuid"
)

type errorResponse struct {
	Error       string              `json:"error"`
	FieldErrors []errors.FieldError `json:"fieldErrors,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	resp := errorResponse{Error: err.Error()}
	if se, ok := errors.AsStandardError(err); ok {
		resp.Error = se.UserMessage()
		resp.FieldErrors = se.FieldErrors
	}
	s.writeJSON(w, code, resp)
}

func (s *Server) handleListColleges(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cat := models.Category(q.Get("category"))
	if cat == "" {
		cat = models.CategoryAll
	}
	if cat != models.CategoryAll && !cat.IsConcrete() {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown category"})
		return
	}

	opts := catalog.ListOptions{Category: cat}
	switch q.Get("sort") {
	case "", string(catalog.SortByRanking):
		opts.SortBy = catalog.SortByRanking
	case string(catalog.SortByHighestPackage):
		opts.SortBy = catalog.SortByHighestPackage
	default:
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown sort key"})
		return
	}
	opts.Descending = q.Get("order") == "desc"

	metrics.CatalogRequestsTotal.WithLabelValues(string(cat)).Inc()
	s.writeJSON(w, http.StatusOK, s.catalog.List(opts))
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats := append([]models.Category{models.CategoryAll}, models.Categories()...)
	s.writeJSON(w, http.StatusOK, cats)
}

// handleSubmitInsights is the stateless form of the presentation boundary:
// one synchronous submit/await cycle.
func (s *Server) handleSubmitInsights(w http.ResponseWriter, r *http.Request) {
	var input insights.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	result := s.service.Submit(r.Context(), input)

	code := http.StatusOK
	if !result.Success {
		if len(result.FieldErrors) > 0 {
			code = http.StatusUnprocessableEntity
		} else if result.Error == errors.GenericGenerationFailure {
			code = http.StatusBadGateway
		} else {
			code = http.StatusNotFound
		}
	}
	s.writeJSON(w, code, result)
}

func (s *Server) handleCreateDialog(w http.ResponseWriter, r *http.Request) {
	d := insights.NewDialog(s.service, s.logger)
	s.registerDialog(d)
	s.writeJSON(w, http.StatusCreated, map[string]string{
		"dialogId": d.ID.String(),
		"state":    string(d.State()),
	})
}

func (s *Server) lookupDialog(w http.ResponseWriter, r *http.Request) (*insights.Dialog, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed dialog id"})
		return nil, false
	}
	d, ok := s.dialog(id)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "dialog not found"})
		return nil, false
	}
	return d, true
}

func (s *Server) handleDialogSubmit(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookupDialog(w, r)
	if !ok {
		return
	}

	var input insights.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	if err := d.Submit(input); err != nil {
		switch err {
		case insights.ErrSubmissionPending:
			s.writeJSON(w, http.StatusConflict, errorResponse{Error: "a submission is already pending"})
		case insights.ErrNotIdle:
			s.writeJSON(w, http.StatusConflict, errorResponse{Error: "dialog must be reset before resubmitting"})
		default:
			s.writeError(w, http.StatusUnprocessableEntity, err)
		}
		return
	}

	s.writeJSON(w, http.StatusAccepted, map[string]string{
		"state": string(d.State()),
	})
}

func (s *Server) handleDialogState(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookupDialog(w, r)
	if !ok {
		return
	}

	resp := map[string]interface{}{
		"state": string(d.State()),
	}
	if result := d.Result(); result != nil {
		resp["result"] = result
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDialogReset(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookupDialog(w, r)
	if !ok {
		return
	}
	d.Reset()
	s.writeJSON(w, http.StatusOK, map[string]string{
		"state": string(d.State()),
	})
}

func (s *Server) handleDialogClose(w http.ResponseWriter, r *http.Request) {
	d, ok := s.lookupDialog(w, r)
	if !ok {
		return
	}
	// An in-flight request keeps running; its reply fails the session token
	// check and is dropped.
	d.Reset()
	s.removeDialog(d.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"colleges": s.catalog.Len(),
	})
}
