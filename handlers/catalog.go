package handlers

import (
	"net/http"

	"doctorportal/services/catalog"
	"doctorportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultAvailabilityDate is used when the client omits the date query
// parameter, matching the behavior the frontend was built against.
const defaultAvailabilityDate = "May 11, 2022"

// CatalogHandler serves the treatment catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListServices handles GET /service: all services, name only.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	names, err := h.Service.ListNames()
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", "")
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetAvailable handles GET /available: full service documents with the
// slot lists filtered down to what is still open on the requested date.
func (h *CatalogHandler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = defaultAvailabilityDate
	}

	services, err := h.Service.Availability(date)
	if err != nil {
		utils.GetLogger().Error("Failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
		return
	}
	c.JSON(http.StatusOK, services)
}
