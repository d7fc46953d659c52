package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/resume-manager/internal/types"
)

// NotFoundBody is the sentinel body returned by GET /resume/{id} for an
// unknown ID. The legacy API answers 200 with a found flag there while DELETE
// answers 404; both behaviors are kept.
type NotFoundBody struct {
	Found   bool   `json:"found"`
	Message string `json:"message"`
}

// handleListResumes returns the full collection in insertion order
func (s *Server) handleListResumes(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.repo.List())
}

// handleGetResume returns a single resume by ID
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume ID is required")
		return
	}

	rec, found := s.repo.Get(id)
	if !found {
		s.jsonResponse(w, http.StatusOK, NotFoundBody{Found: false, Message: "Resume not found"})
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteResume removes a resume by ID and persists the collection
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume ID is required")
		return
	}

	if err := s.repo.Delete(id); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusNotFound {
			s.errorResponse(w, status, "Resume not found")
			return
		}
		log.Printf("Delete %s failed: %v", id, err)
		s.errorResponse(w, status, "Error deleting resume")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleSaveResume creates or fully replaces a resume keyed by its ID
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	var rec types.Resume
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if _, err := s.repo.Upsert(rec); err != nil {
		status := HTTPStatus(err)
		if status == http.StatusBadRequest {
			s.errorResponse(w, status, "Resume ID and name are required")
			return
		}
		log.Printf("Save %s failed: %v", rec.ID, err)
		s.errorResponse(w, status, "Error saving resume")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}
