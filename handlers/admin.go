package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/services/admin"
)

// AdminHandler exposes the superadmin surface.
type AdminHandler struct {
	Service admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func adminEmail(c *gin.Context) string {
	if v, exists := c.Get("userEmail"); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

func (h *AdminHandler) StatsHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.Service.PlatformStats()
	if err != nil {
		logger.Error("Failed to compute platform stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListBusinessesHandler(c *gin.Context) {
	logger := getLogger(c)

	details, err := h.Service.ListBusinessDetails()
	if err != nil {
		logger.Error("Failed to list business details", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}

// SuspendBusinessHandler toggles a tenant's active flag.
func (h *AdminHandler) SuspendBusinessHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	biz, err := h.Service.SetBusinessActive(adminEmail(c), c.Param("id"), *req.IsActive)
	if err != nil {
		logger.Error("Failed to update business active flag", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, biz)
}

func (h *AdminHandler) UpdateSubscriptionHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SubscriptionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	biz, err := h.Service.UpdateSubscription(adminEmail(c), c.Param("id"), req)
	if err != nil {
		logger.Error("Failed to update subscription", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// DeleteBusinessHandler cascade-deletes a tenant and everything it owns.
func (h *AdminHandler) DeleteBusinessHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Service.DeleteBusiness(adminEmail(c), c.Param("id")); err != nil {
		logger.Error("Failed to delete business", zap.String("businessId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business deleted"})
}

func (h *AdminHandler) LogsHandler(c *gin.Context) {
	logger := getLogger(c)

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	logs, err := h.Service.Logs(limit, c.Query("type"))
	if err != nil {
		logger.Error("Failed to list audit logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
