package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/services/catalog"
)

// CatalogHandler exposes service and staff management for the authenticated
// tenant.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := businessID(c)
	if !ok {
		return
	}

	var req models.ServiceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.CreateService(id, req)
	if err != nil {
		logger.Error("Service creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}
	services, err := h.Service.ListServices(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := businessID(c)
	if !ok {
		return
	}

	var req models.ServiceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(id, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteService(id, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (h *CatalogHandler) CreateStaffHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := businessID(c)
	if !ok {
		return
	}

	var req models.StaffCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid staff payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	member, err := h.Service.CreateStaff(id, req)
	if err != nil {
		logger.Error("Staff creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *CatalogHandler) ListStaffHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}
	staff, err := h.Service.ListStaff(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list staff"})
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *CatalogHandler) UpdateStaffHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := businessID(c)
	if !ok {
		return
	}

	var req models.StaffCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid staff payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	member, err := h.Service.UpdateStaff(id, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *CatalogHandler) DeleteStaffHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteStaff(id, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
