package handlers

import (
	"net/http"
	"time"

	"freight-quotation-service/internal/cache"
)

type HealthHandler struct {
	Cache *cache.DatasetCache
}

type healthResponse struct {
	Status string `json:"status"`
	Cache  struct {
		Records   int   `json:"records"`
		AgeMs     int64 `json:"age_ms"`
		Hits      int64 `json:"hits"`
		Misses    int64 `json:"misses"`
		Refreshes int64 `json:"refreshes"`
		Failures  int64 `json:"failures"`
	} `json:"cache"`
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	stats := h.Cache.Stats()

	var res healthResponse
	res.Status = "ok"
	res.Cache.Records = stats.Records
	if !stats.FetchedAt.IsZero() {
		res.Cache.AgeMs = time.Since(stats.FetchedAt).Milliseconds()
	}
	res.Cache.Hits = stats.Hits
	res.Cache.Misses = stats.Misses
	res.Cache.Refreshes = stats.Refreshes
	res.Cache.Failures = stats.Failures

	writeJSON(w, r, http.StatusOK, res)
}
