package handlers

import (
	"net/http"

	"github.com/careerpilot/careerpilot/internal/auth"
	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/services"
	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	Offers *services.OfferService
}

func NewOfferHandler(offers *services.OfferService) *OfferHandler {
	return &OfferHandler{Offers: offers}
}

// Create is the POST /applications/:id/offer endpoint
func (h *OfferHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	applicationID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dtos.OfferCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Status != "" && !auth.ValidateOfferStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer status"})
		return
	}

	offer, err := h.Offers.Create(userID, applicationID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

// Get is the GET /applications/:id/offer endpoint
func (h *OfferHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	applicationID, ok := idParam(c, "id")
	if !ok {
		return
	}

	offer, err := h.Offers.GetForApplication(userID, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Update is the PATCH /offers/:id endpoint
func (h *OfferHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dtos.OfferUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Status != nil && !auth.ValidateOfferStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer status"})
		return
	}

	offer, err := h.Offers.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Delete is the DELETE /offers/:id endpoint
func (h *OfferHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Offers.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
