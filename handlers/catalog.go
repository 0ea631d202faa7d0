package handlers

import (
	"net/http"

	"medibook/services/catalog"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the bookable-test catalog.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Logger: logger}
}

// ListTestsHandler handles GET /api/catalog/tests.
func (h *CatalogHandler) ListTestsHandler(c *gin.Context) {
	services, err := h.CatalogSvc.ListServices()
	if err != nil {
		h.Logger.Error("ListTestsHandler: failed to load catalog", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load tests", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tests": services})
}

// GetTestHandler handles GET /api/catalog/tests/:testID.
func (h *CatalogHandler) GetTestHandler(c *gin.Context) {
	testID := c.Param("testID")

	service, err := h.CatalogSvc.GetServiceByID(testID)
	if err != nil {
		h.Logger.Error("GetTestHandler: failed to fetch test", zap.String("testID", testID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load test", "")
		return
	}
	if service == nil {
		utils.JSONError(c, http.StatusNotFound, "Test not found", testID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"test": service})
}
