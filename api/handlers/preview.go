// ABOUTME: Preview handlers for resolving link metadata from untrusted URLs
// ABOUTME: Validation failures return 400; every downstream failure degrades to a null thumbnail

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"linkpreview-api/api/dto/requests"
	"linkpreview-api/api/dto/responses"
	"linkpreview-api/core/domain"
	coreerrors "linkpreview-api/core/errors"
	"linkpreview-api/core/interfaces"
)

// batchConcurrency bounds how many URLs a batch request resolves in parallel
const batchConcurrency = 10

// Resolver turns a validated URL into preview metadata without ever failing
type Resolver interface {
	Resolve(ctx context.Context, targetURL string) domain.ResolutionResult
}

// PreviewHandler handles preview resolution endpoints
type PreviewHandler struct {
	resolver Resolver
	logger   interfaces.Logger
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(resolver Resolver, logger interfaces.Logger) *PreviewHandler {
	return &PreviewHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// RegisterRoutes registers preview routes on the mux
func (h *PreviewHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /preview", h.Preview)
	mux.HandleFunc("POST /previews", h.PreviewBatch)
}

// Preview handles the POST /preview endpoint
func (h *PreviewHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req requests.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Debug("Rejected preview request", map[string]interface{}{
			"url":   req.URL,
			"error": err.Error(),
		})
		writeValidationError(w, err)
		return
	}

	result := h.resolver.Resolve(r.Context(), req.URL)

	writeJSON(w, http.StatusOK, responses.PreviewResponse{
		ThumbnailURL: result.ThumbnailURL,
	})
}

// PreviewBatch handles the POST /previews endpoint. Entries that fail
// validation degrade to a null thumbnail instead of failing the batch.
func (h *PreviewHandler) PreviewBatch(w http.ResponseWriter, r *http.Request) {
	var req requests.BatchPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Debug("Rejected batch preview request", map[string]interface{}{
			"error": err.Error(),
		})
		writeValidationError(w, err)
		return
	}

	entries := make([]responses.BatchPreviewEntry, len(req.URLs))
	semaphore := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup

	for i, rawURL := range req.URLs {
		wg.Add(1)
		go func(idx int, targetURL string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			entry := responses.BatchPreviewEntry{URL: targetURL}
			if requests.IsResolvable(targetURL) {
				result := h.resolver.Resolve(r.Context(), targetURL)
				entry.ThumbnailURL = result.ThumbnailURL
			}
			entries[idx] = entry
		}(i, rawURL)
	}

	wg.Wait()

	writeJSON(w, http.StatusOK, responses.BatchPreviewResponse{Results: entries})
}

// writeValidationError maps a validation failure to a 400 with its short
// message; anything else is an internal error, which should not happen on
// this path
func writeValidationError(w http.ResponseWriter, err error) {
	if coreerrors.IsValidation(err) {
		var ve *coreerrors.ValidationError
		errors.As(err, &ve)
		writeError(w, http.StatusBadRequest, ve.Message)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
