package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/feedloop/feedloop/pkg/domain"
)

// fetchResponse is the payload of single- and multi-feed fetch operations.
// Partial failures still report success, only total infrastructure failure
// produces a non-success response.
type fetchResponse struct {
	Success        bool `json:"success"`
	TotalFetched   int  `json:"total_fetched"`
	TotalErrors    int  `json:"total_errors"`
	FeedsProcessed int  `json:"feeds_processed"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listFeedsHandler returns all registered feeds
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.feeds.GetFeeds(r.Context(), false)
	if err != nil {
		log.Printf("[ERROR] failed to list feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// createFeedHandler validates a feed URL and registers it. Transient
// validation failures still register the feed, with placeholder metadata
// and a warning in the response.
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		URL           string `json:"url"`
		FetchInterval int    `json:"fetch_interval"` // seconds
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}

	validation, err := s.validator.Validate(ctx, req.URL)
	if err != nil {
		renderError(w, r, fmt.Errorf("feed validation failed: %w", err), http.StatusUnprocessableEntity)
		return
	}

	f := &domain.Feed{
		URL:           req.URL,
		Title:         validation.Title,
		Description:   validation.Description,
		Link:          validation.Link,
		Language:      validation.Language,
		Enabled:       true,
		FetchInterval: time.Duration(req.FetchInterval) * time.Second,
	}
	if err := s.feeds.CreateFeed(ctx, f); err != nil {
		log.Printf("[ERROR] failed to create feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{"feed": f}
	if validation.Warning != "" {
		resp["warning"] = validation.Warning
	}
	renderJSON(w, r, http.StatusCreated, resp)
}

// fetchFeedHandler triggers a fetch of a single feed
func (s *Server) fetchFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	inserted, err := s.orchestrator.FetchFeed(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			renderError(w, r, fmt.Errorf("feed %d not found", id), http.StatusNotFound)
			return
		}
		// the feed-level error is already recorded on the feed row,
		// report it without failing the request
		renderJSON(w, r, http.StatusOK, fetchResponse{Success: true, TotalErrors: 1, FeedsProcessed: 1})
		return
	}
	renderJSON(w, r, http.StatusOK, fetchResponse{Success: true, TotalFetched: inserted, FeedsProcessed: 1})
}

// fetchAllHandler triggers a full fetch run over all enabled feeds
func (s *Server) fetchAllHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.orchestrator.FetchAll(r.Context())
	if err != nil {
		log.Printf("[ERROR] fetch-all failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, fetchResponse{
		Success:        true,
		TotalFetched:   summary.TotalFetched,
		TotalErrors:    summary.TotalErrors,
		FeedsProcessed: summary.FeedsProcessed,
	})
}

// feedStatusHandler enables or disables a feed
func (s *Server) feedStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.feeds.UpdateFeedStatus(r.Context(), id, req.Enabled); err != nil {
		log.Printf("[ERROR] failed to update feed status: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"enabled": req.Enabled})
}

// deleteFeedHandler removes a feed and its articles
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.feeds.DeleteFeed(r.Context(), id); err != nil {
		log.Printf("[ERROR] failed to delete feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// schedulerStatusHandler reports scheduler and job state
func (s *Server) schedulerStatusHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduler.GetStatus())
}

// triggerFetchHandler runs the fetch job immediately
func (s *Server) triggerFetchHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := s.scheduler.TriggerFetch(r.Context())
	if err != nil {
		log.Printf("[ERROR] triggered fetch failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, fetchResponse{
		Success:        true,
		TotalFetched:   summary.TotalFetched,
		TotalErrors:    summary.TotalErrors,
		FeedsProcessed: summary.FeedsProcessed,
	})
}

// triggerCleanupHandler runs the cleanup job immediately
func (s *Server) triggerCleanupHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DaysToKeep int `json:"days_to_keep"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // empty body keeps the configured default
	}

	deleted, err := s.scheduler.TriggerCleanup(r.Context(), req.DaysToKeep)
	if err != nil {
		log.Printf("[ERROR] triggered cleanup failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"success": true, "deleted": deleted})
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid feed ID")
	}
	return id, nil
}

// renderJSON sends data as JSON
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
