package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/resume-manager/internal/enhance"
	"github.com/jonathan/resume-manager/internal/ingestion"
	"github.com/jonathan/resume-manager/internal/parsing"
)

// maxUploadBytes caps /extract-text uploads.
const maxUploadBytes = 10 << 20

// ParseRequest represents the request body for /parse-resume
type ParseRequest struct {
	Content string `json:"content"`
}

// EnhanceRequest represents the request body for /ai-enhance
type EnhanceRequest struct {
	Content string `json:"content"`
	Section string `json:"section"`
}

// SuggestRequest represents the request body for /ai-enhance-suggestions
type SuggestRequest struct {
	Content string `json:"content"`
}

// handleParseResume extracts structured resume data from free text
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		s.errorResponse(w, http.StatusBadRequest, "No text content could be extracted from the file.")
		return
	}

	parsed, err := parsing.ParseResume(r.Context(), s.llm, content)
	if err != nil {
		log.Printf("Parse resume failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Error processing resume text: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"parsed_data": parsed})
}

// handleEnhance rewrites one resume section through the LLM
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	section := strings.ToLower(strings.TrimSpace(req.Section))
	if section != enhance.SectionSummary && section != enhance.SectionExperience {
		s.errorResponse(w, http.StatusBadRequest, "Section must be 'summary' or 'experience'")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Content cannot be empty")
		return
	}

	enhanced, err := enhance.EnhanceSection(r.Context(), s.llm, section, req.Content)
	if err != nil {
		log.Printf("Enhance %s failed: %v", section, err)
		s.errorResponse(w, HTTPStatus(err), "Enhancement failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"section":  section,
		"original": req.Content,
		"enhanced": enhanced,
	})
}

// handleSuggestions produces display-ready improvement suggestions
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	suggestions, err := enhance.Suggest(r.Context(), s.llm, req.Content)
	if err != nil {
		log.Printf("Suggestions failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Error generating suggestions: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"content":     req.Content,
		"suggestions": suggestions,
	})
}

// handleExtractText extracts plain text from an uploaded PDF/DOCX/TXT file
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "A 'file' upload is required")
		return
	}
	defer file.Close()

	data, err := ingestion.ReadLimited(file, maxUploadBytes)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := ingestion.ExtractText(header.Filename, data)
	if err != nil {
		log.Printf("Extract %s failed: %v", header.Filename, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if strings.TrimSpace(content) == "" {
		s.errorResponse(w, http.StatusBadRequest, "No text content could be extracted from the file.")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"filename": header.Filename,
		"content":  content,
	})
}
