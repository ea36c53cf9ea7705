package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"freight-quotation-service/internal/api/dto"
	"freight-quotation-service/internal/match"
	"freight-quotation-service/internal/ports"
	"freight-quotation-service/internal/services"
)

type QuotationHandler struct {
	Provider ports.DatasetProvider
	Matcher  *match.LocationMatcher
}

// Search finds the cheapest quotation for a route plus the remaining
// matching rates, using fuzzy location matching on both endpoints.
func (h *QuotationHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	from := strings.TrimSpace(req.FromLocation)
	to := strings.TrimSpace(req.ToLocation)
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from_location and to_location are required")
		return
	}
	if req.MaxResults < 0 {
		writeError(w, r, http.StatusBadRequest, "max_results must not be negative")
		return
	}

	svcReq := services.SearchRequest{
		Origin:      from,
		Destination: to,
		VehicleType: strings.TrimSpace(req.VehicleType),
		MaxResults:  req.MaxResults,
	}

	result := services.SearchQuotations(r.Context(), svcReq, h.Provider, h.Matcher)

	res := dto.SearchResponse{
		OtherRates: rateResponses(result.OtherRates),
		TotalFound: result.TotalFound,
	}
	if result.BestRate != nil {
		best := rateResponse(*result.BestRate)
		res.BestRate = &best
	}

	writeJSON(w, r, http.StatusOK, res)
}
