package handlers

import (
	"net/http"

	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/services"
	"github.com/gin-gonic/gin"
)

type AttachmentHandler struct {
	Attachments *services.AttachmentService
}

func NewAttachmentHandler(attachments *services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{Attachments: attachments}
}

// Create is the POST /applications/:id/attachments endpoint (metadata only;
// the upload itself goes straight to object storage).
func (h *AttachmentHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	applicationID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dtos.AttachmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	attachment, err := h.Attachments.Create(userID, applicationID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// List is the GET /applications/:id/attachments endpoint
func (h *AttachmentHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	applicationID, ok := idParam(c, "id")
	if !ok {
		return
	}

	attachments, err := h.Attachments.List(userID, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// Delete is the DELETE /attachments/:id endpoint
func (h *AttachmentHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Attachments.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
