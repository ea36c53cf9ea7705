package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"freight-quotation-service/internal/api/dto"
	"freight-quotation-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func rateResponse(rec domain.RouteRecord) dto.RateResponse {
	return dto.RateResponse{
		FromOrigin:   rec.Origin,
		Area:         rec.Area,
		VehicleType:  rec.VehicleType,
		Rate:         rec.Rate,
		VendorName:   rec.VendorName,
		Pincode:      rec.Pincode,
		ReceiverName: rec.ReceiverName,
		VehicleNo:    rec.VehicleNo,
	}
}

func rateResponses(recs []domain.RouteRecord) []dto.RateResponse {
	out := make([]dto.RateResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rateResponse(rec))
	}
	return out
}
