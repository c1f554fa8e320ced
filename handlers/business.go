package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotwise/middleware"
	"slotwise/models"
	"slotwise/services/business"
)

// BusinessHandler exposes tenant profile management and the public booking
// pages.
type BusinessHandler struct {
	Service business.BusinessService
}

func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// businessID returns the tenant bound to the authenticated account, aborting
// with 403 when the account owns no business yet.
func businessID(c *gin.Context) (string, bool) {
	v, exists := c.Get("businessID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "No business linked to this account"})
		return "", false
	}
	return id, true
}

// CreateBusinessHandler registers a new tenant for the authenticated owner.
func (h *BusinessHandler) CreateBusinessHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.BusinessCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid business payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	biz, err := h.Service.CreateBusiness(userID.(string), req)
	if err != nil {
		logger.Error("Business creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The cached account still carries an empty business id.
	middleware.InvalidateUserCache(userID.(string))

	c.JSON(http.StatusCreated, biz)
}

// GetMyBusinessHandler returns the authenticated tenant's profile.
func (h *BusinessHandler) GetMyBusinessHandler(c *gin.Context) {
	id, ok := businessID(c)
	if !ok {
		return
	}
	biz, err := h.Service.GetBusinessByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// UpdateMyBusinessHandler applies profile changes to the authenticated tenant.
func (h *BusinessHandler) UpdateMyBusinessHandler(c *gin.Context) {
	logger := getLogger(c)

	id, ok := businessID(c)
	if !ok {
		return
	}

	var req models.BusinessCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid business payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	biz, err := h.Service.UpdateBusiness(id, req)
	if err != nil {
		logger.Error("Business update failed", zap.String("businessId", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, biz)
}

// PublicPageHandler resolves a booking-page slug for customers.
func (h *BusinessHandler) PublicPageHandler(c *gin.Context) {
	page, err := h.Service.GetPublicPage(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListPublicHandler returns the directory of bookable businesses.
func (h *BusinessHandler) ListPublicHandler(c *gin.Context) {
	logger := getLogger(c)

	businesses, err := h.Service.ListPublic()
	if err != nil {
		logger.Error("Failed to list businesses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list businesses"})
		return
	}
	c.JSON(http.StatusOK, businesses)
}
