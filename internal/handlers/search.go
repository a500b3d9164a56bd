package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"molecuview/internal/chem"
	"molecuview/internal/contextutil"
	"molecuview/internal/service"
)

// MoleculePresenter receives the resolved molecule for display. This is
// the viewer controller in production.
type MoleculePresenter interface {
	ShowMolecule(mol *chem.Molecule) error
}

// SearchHandler handles HTTP requests for molecule searches.
type SearchHandler struct {
	searchService service.SearchService
	presenter     MoleculePresenter
}

// NewSearchHandler creates a new SearchHandler. presenter may be nil when
// no viewer is attached.
func NewSearchHandler(searchService service.SearchService, presenter MoleculePresenter) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		presenter:     presenter,
	}
}

// SearchRequest represents the HTTP request payload for a search.
type SearchRequest struct {
	Query string `json:"query"`
}

// InsightResponse carries the enrichment record, with description and fun
// fact additionally rendered to HTML for the info panel.
type InsightResponse struct {
	Description      string   `json:"description"`
	DescriptionHTML  string   `json:"descriptionHtml"`
	MolecularFormula string   `json:"molecularFormula"`
	MolarMass        string   `json:"molarMass"`
	CommonUses       []string `json:"commonUses"`
	SafetyProfile    string   `json:"safetyProfile"`
	FunFact          string   `json:"funFact"`
	FunFactHTML      string   `json:"funFactHtml"`
}

// SearchResponse represents the HTTP response payload for a search.
type SearchResponse struct {
	CID           int             `json:"cid"`
	Name          string          `json:"name"`
	SDF           string          `json:"sdf"`
	CorrectedFrom string          `json:"correctedFrom,omitempty"`
	Insight       InsightResponse `json:"insight"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for molecule searches.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.searchService.Search(ctx, req.Query)
	if err != nil {
		h.handleServiceError(w, ctx, err)
		return
	}

	if h.presenter != nil {
		if err := h.presenter.ShowMolecule(result.Molecule); err != nil {
			// Display failure doesn't invalidate the search result.
			logger.WarnContext(ctx, "failed to present molecule", "cid", result.Molecule.CID, "error", err)
		}
	}

	resp := SearchResponse{
		CID:           result.Molecule.CID,
		Name:          result.Molecule.Name,
		SDF:           result.Molecule.SDF,
		CorrectedFrom: result.CorrectedFrom,
		Insight: InsightResponse{
			Description:      result.Insight.Description,
			DescriptionHTML:  renderMarkdown(result.Insight.Description),
			MolecularFormula: result.Insight.MolecularFormula,
			MolarMass:        result.Insight.MolarMass,
			CommonUses:       result.Insight.CommonUses,
			SafetyProfile:    result.Insight.SafetyProfile,
			FunFact:          result.Insight.FunFact,
			FunFactHTML:      renderMarkdown(result.Insight.FunFact),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// handleServiceError maps search errors to HTTP status codes. The message
// for a not-found failure is the resolver's own, which always references
// the query that was actually searched.
func (h *SearchHandler) handleServiceError(w http.ResponseWriter, ctx context.Context, err error) {
	logger := contextutil.LoggerFromContext(ctx)

	if errors.Is(err, service.ErrInvalidInput) {
		logger.WarnContext(ctx, "invalid search request", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if errors.Is(err, service.ErrSearchInFlight) {
		writeError(w, http.StatusConflict, "A search is already in progress")
		return
	}

	var notFound *chem.NotFoundError
	if errors.As(err, &notFound) {
		logger.InfoContext(ctx, "molecule not found", "query", notFound.Query)
		writeError(w, http.StatusNotFound, notFound.Error())
		return
	}

	if errors.Is(err, service.ErrExternalService) {
		logger.ErrorContext(ctx, "chemistry database unavailable", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to communicate with the chemistry database")
		return
	}

	logger.ErrorContext(ctx, "search failed", "error", err)
	writeError(w, http.StatusInternalServerError, "Search failed")
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
