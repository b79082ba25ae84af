package handlers

import (
	"net/http"

	"careconnect/models"
	"careconnect/services/resource"

	"github.com/gin-gonic/gin"
)

// ResourceHandler exposes the care resource catalog endpoints.
type ResourceHandler struct {
	Service resource.ResourceService
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(svc resource.ResourceService) *ResourceHandler {
	return &ResourceHandler{Service: svc}
}

// ListResources handles GET /api/resources with optional category/city filters.
func (h *ResourceHandler) ListResources(c *gin.Context) {
	resources, err := h.Service.ListResources(c.Query("category"), c.Query("city"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}
	c.JSON(http.StatusOK, resources)
}

// GetResource handles GET /api/resources/:id.
func (h *ResourceHandler) GetResource(c *gin.Context) {
	res, err := h.Service.GetResourceByID(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListMyResources handles GET /api/resources/mine for providers.
func (h *ResourceHandler) ListMyResources(c *gin.Context) {
	resources, err := h.Service.ListProviderResources(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if resources == nil {
		resources = []models.Resource{}
	}
	c.JSON(http.StatusOK, resources)
}

// CreateResource handles POST /api/resources for providers.
func (h *ResourceHandler) CreateResource(c *gin.Context) {
	var req resource.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Service.CreateResource(c.GetString("userID"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateResource handles PUT /api/resources/:id for the owning provider.
func (h *ResourceHandler) UpdateResource(c *gin.Context) {
	var req resource.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Service.UpdateResource(c.Param("id"), c.GetString("userID"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteResource handles DELETE /api/resources/:id for the owning provider.
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	if err := h.Service.DeleteResource(c.Param("id"), c.GetString("userID")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resource deleted"})
}
