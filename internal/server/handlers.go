package server

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-autofill/internal/dom"
	"github.com/jonathan/resume-autofill/internal/fetch"
	"github.com/jonathan/resume-autofill/internal/fill"
	"github.com/jonathan/resume-autofill/internal/llm"
	"github.com/jonathan/resume-autofill/internal/types"
)

// FillRequest represents the request body for /fill. Exactly one of html and
// url must be set.
type FillRequest struct {
	HTML string `json:"html,omitempty"`
	URL  string `json:"url,omitempty"`

	// Remote requests LLM suggestions for fields the heuristics don't
	// cover. It is silently ignored when no credential is stored.
	Remote bool `json:"remote,omitempty"`
}

// FillResponse represents the response for /fill
type FillResponse struct {
	types.FillOutcome
	// HTML is the document after filling, re-serialized.
	HTML string `json:"html"`
}

// APIKeyRequest represents the request body for PUT /apikey
type APIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// handleFill fills a form document with the stored profile
func (s *Server) handleFill(w http.ResponseWriter, r *http.Request) {
	var req FillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if (req.HTML == "") == (req.URL == "") {
		s.errorResponse(w, http.StatusBadRequest, "Exactly one of html or url is required")
		return
	}

	profile, err := s.store.LoadProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile.IsEmpty() {
		s.errorResponse(w, http.StatusConflict, "No profile stored; save one via PUT /profile first")
		return
	}

	html := req.HTML
	if req.URL != "" {
		result, err := fetch.Page(r.Context(), req.URL, nil, s.useBrowser, s.log)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch page: "+err.Error())
			return
		}
		html = result.HTML
	}

	doc, err := dom.ParseString(html)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to parse document: "+err.Error())
		return
	}

	var suggester llm.Suggester
	if req.Remote {
		apiKey, err := s.store.LoadAPIKey(r.Context())
		if err != nil {
			s.log.Warn("failed to load api key", zap.Error(err))
		} else if apiKey != "" {
			suggester = llm.NewSuggester(&llm.Config{
				Provider: s.provider,
				Endpoint: s.endpoint,
				Model:    s.model,
			}, apiKey)
		}
	}

	outcome := fill.Run(r.Context(), doc, profile, fill.Options{
		Suggester: suggester,
		Log:       s.log,
	})

	rendered, err := doc.Render()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render document: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, FillResponse{
		FillOutcome: *outcome,
		HTML:        rendered,
	})
}

// handleGetProfile returns the stored profile
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.LoadProfile(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handlePutProfile validates and stores a profile
func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	var profile types.Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile JSON: "+err.Error())
		return
	}

	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile: "+err.Error())
		return
	}

	if err := s.store.SaveProfile(r.Context(), &profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handlePutAPIKey stores the remote-provider credential
func (s *Server) handlePutAPIKey(w http.ResponseWriter, r *http.Request) {
	var req APIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.APIKey == "" {
		s.errorResponse(w, http.StatusBadRequest, "apiKey is required")
		return
	}

	if err := s.store.SaveAPIKey(r.Context(), req.APIKey); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "saved"})
}

// handleDeleteAPIKey removes the stored credential
func (s *Server) handleDeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearAPIKey(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}
