package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"freight-quotation-service/internal/api/dto"
	"freight-quotation-service/internal/cache"
	"freight-quotation-service/internal/domain"
	"freight-quotation-service/internal/ports"
)

type RateHandler struct {
	Provider ports.DatasetProvider
	Source   ports.RateSource
	Cache    *cache.DatasetCache
}

func (h *RateHandler) List(w http.ResponseWriter, r *http.Request) {
	records := h.Provider.Current(r.Context())
	writeJSON(w, r, http.StatusOK, dto.ListRatesResponse{
		Rates: rateResponses(records),
		Count: len(records),
	})
}

// Update writes one row back to the rate source, keyed by its zero-based
// position in the dataset. The body is a column-to-value object in the
// source's own column names. A successful write invalidates the cache so
// the next read refetches.
func (h *RateHandler) Update(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		writeError(w, r, http.StatusBadRequest, "index must be a non-negative integer")
		return
	}

	var row domain.RawRow

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&row); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}
	if len(row) == 0 {
		writeError(w, r, http.StatusBadRequest, "body must not be empty")
		return
	}

	updated, err := h.Source.UpdateRow(r.Context(), row, index)
	if err != nil {
		log.Printf("update rate row failed: index=%d err=%v", index, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !updated {
		writeError(w, r, http.StatusNotFound, "rate row not found")
		return
	}

	h.Cache.Invalidate()

	writeJSON(w, r, http.StatusOK, dto.UpdateRateResponse{Updated: true})
}
