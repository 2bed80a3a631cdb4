package handlers

import (
	"net/http"

	"github.com/careerpilot/careerpilot/internal/auth"
	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/services"
	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	Email *services.EmailService
}

func NewEmailHandler(email *services.EmailService) *EmailHandler {
	return &EmailHandler{Email: email}
}

// Connect is the POST /email/connect endpoint
func (h *EmailHandler) Connect(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dtos.EmailConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if !auth.ValidateEmailProvider(req.Provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider"})
		return
	}

	conn, err := h.Email.Connect(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conn)
}

// List is the GET /email/connections endpoint
func (h *EmailHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	conns, err := h.Email.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conns)
}

// Disconnect is the DELETE /email/connections/:id endpoint
func (h *EmailHandler) Disconnect(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Email.Disconnect(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
