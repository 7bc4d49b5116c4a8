package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/doeshing/calchub/internal/domain"
	"github.com/doeshing/calchub/internal/services"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ComputeRequest is the body of POST /calculators/{id}/compute.
type ComputeRequest struct {
	Inputs domain.Inputs `json:"inputs"`
	Record *bool         `json:"record,omitempty"` // default true
}

// ComputeResponse carries the outputs and, when recorded, the history id.
type ComputeResponse struct {
	Results   domain.Results `json:"results"`
	HistoryID int            `json:"historyId,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListCalculators(w http.ResponseWriter, r *http.Request) {
	catalog := s.container.Catalog
	if q := r.URL.Query().Get("q"); q != "" {
		s.container.Searches.Remember(q)
		writeJSON(w, http.StatusOK, catalog.Search(q))
		return
	}
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, catalog.ByCategory(domain.Category(category)))
		return
	}
	writeJSON(w, http.StatusOK, catalog.All())
}

func (s *Server) handleGetCalculator(w http.ResponseWriter, r *http.Request) {
	def := s.container.Catalog.ByID(chi.URLParam(r, "id"))
	if def == nil {
		writeError(w, http.StatusNotFound, "calculator not found")
		return
	}
	writeJSON(w, http.StatusOK, def)
}

// handleCompute runs the calculator and, unless record=false, stores the
// calculation in history. Unknown ids still return 200 with the
// not-implemented sentinel, matching the registry contract.
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Inputs == nil {
		req.Inputs = domain.Inputs{}
	}

	results := s.container.Registry.Compute(id, req.Inputs)

	resp := ComputeResponse{Results: results}
	if req.Record == nil || *req.Record {
		name := id
		if def := s.container.Catalog.ByID(id); def != nil {
			name = def.Name
		}
		rec := s.container.History.Create(domain.HistoryRecord{
			CalculatorID:   id,
			CalculatorName: name,
			Inputs:         req.Inputs,
			Results:        results,
		})
		resp.HistoryID = rec.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	def := s.container.Catalog.ByID(id)
	if def == nil {
		writeError(w, http.StatusNotFound, "calculator not found")
		return
	}

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Inputs == nil {
		req.Inputs = domain.Inputs{}
	}

	results := s.container.Registry.Compute(id, req.Inputs)
	projection := services.ProjectionFor(def, req.Inputs, results)
	if projection == nil {
		writeError(w, http.StatusUnprocessableEntity, "calculator has no data series")
		return
	}
	writeJSON(w, http.StatusOK, projection)
}

func (s *Server) handleCalculatorHistory(w http.ResponseWriter, r *http.Request) {
	records := s.container.History.ByCalculator(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, emptyAsList(records))
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	history := s.container.History
	if q := r.URL.Query().Get("q"); q != "" {
		writeJSON(w, http.StatusOK, emptyAsList(history.Search(q)))
		return
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		writeJSON(w, http.StatusOK, emptyAsList(history.Recent(limit)))
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(history.All()))
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	rec := s.container.History.ByID(id)
	if rec == nil {
		writeError(w, http.StatusNotFound, "history record not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// UpdateRequest is the body of PUT /history/{id}; absent fields keep
// their stored values.
type UpdateRequest struct {
	CalculatorID   *string        `json:"calculatorId,omitempty"`
	CalculatorName *string        `json:"calculatorName,omitempty"`
	Inputs         domain.Inputs  `json:"inputs,omitempty"`
	Results        domain.Results `json:"results,omitempty"`
}

func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated := s.container.History.Update(id, domain.HistoryPatch{
		CalculatorID:   req.CalculatorID,
		CalculatorName: req.CalculatorName,
		Inputs:         req.Inputs,
		Results:        req.Results,
	})
	if updated == nil {
		writeError(w, http.StatusNotFound, "history record not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	removed := s.container.History.Delete(id)
	if removed == nil {
		writeError(w, http.StatusNotFound, "history record not found")
		return
	}
	writeJSON(w, http.StatusOK, removed)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.container.History.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}

// handleExportHistory streams the pretty-printed history document as a
// download with its date-stamped filename.
func (s *Server) handleExportHistory(w http.ResponseWriter, r *http.Request) {
	data, name, err := s.container.Export.HistoryDocument()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleRecentSearches(w http.ResponseWriter, r *http.Request) {
	recent := s.container.Searches.Recent()
	if recent == nil {
		recent = []string{}
	}
	writeJSON(w, http.StatusOK, recent)
}

func recordID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid history id")
		return 0, false
	}
	return id, true
}

func emptyAsList(records []domain.HistoryRecord) []domain.HistoryRecord {
	if records == nil {
		return []domain.HistoryRecord{}
	}
	return records
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
