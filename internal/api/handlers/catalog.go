package handlers

import (
	"net/http"

	"freight-quotation-service/internal/api/dto"
	"freight-quotation-service/internal/dataset"
	"freight-quotation-service/internal/ports"
)

type CatalogHandler struct {
	Provider ports.DatasetProvider
}

func (h *CatalogHandler) Vendors(w http.ResponseWriter, r *http.Request) {
	vendors := dataset.Vendors(h.Provider.Current(r.Context()))
	writeJSON(w, r, http.StatusOK, dto.VendorsResponse{Vendors: vendors})
}

func (h *CatalogHandler) VehicleTypes(w http.ResponseWriter, r *http.Request) {
	types := dataset.VehicleTypes(h.Provider.Current(r.Context()))
	writeJSON(w, r, http.StatusOK, dto.VehicleTypesResponse{VehicleTypes: types})
}

func (h *CatalogHandler) Locations(w http.ResponseWriter, r *http.Request) {
	set := dataset.Locations(h.Provider.Current(r.Context()))
	writeJSON(w, r, http.StatusOK, dto.LocationsResponse{
		Origins:      set.Origins,
		Destinations: set.Destinations,
		AllLocations: set.All,
	})
}
