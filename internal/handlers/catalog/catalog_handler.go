// internal/handlers/catalog/catalog_handler.go
package catalog

import (
	"net/http"
	"strconv"

	"rainerio-service/internal/domain/vehicle"
	"rainerio-service/internal/pkg/response"
	service "rainerio-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	store *service.Store
}

func NewCatalogHandler(store *service.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ListVehicles returns the filtered, ordered public catalog.
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	var filters vehicle.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	vehicles := service.ApplyFilters(h.store.Vehicles(), filters)
	vehicles = service.ApplySort(vehicles, filters.Sort)

	response.Success(c, http.StatusOK, "vehicles retrieved", vehicles)
}

// GetFacets returns the filter domains derived from the current collection.
func (h *CatalogHandler) GetFacets(c *gin.Context) {
	response.Success(c, http.StatusOK, "facets retrieved", service.Facets(h.store.Vehicles()))
}

// GetFeatured returns the highlights rail selection.
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	limit := 3
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Error(c, http.StatusBadRequest, "invalid limit", err)
			return
		}
		limit = n
	}

	response.Success(c, http.StatusOK, "featured vehicles retrieved", service.PickFeatured(h.store.Vehicles(), limit))
}

// ListSpecialists returns the public seller list: active, non-admin sellers.
func (h *CatalogHandler) ListSpecialists(c *gin.Context) {
	response.Success(c, http.StatusOK, "specialists retrieved", h.store.Specialists())
}
