package handlers

import (
	"net/http"
	"strconv"

	"github.com/careerpilot/careerpilot/internal/services"
	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	Activities *services.ActivityService
}

func NewActivityHandler(activities *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{Activities: activities}
}

// List is the GET /activities endpoint; ?limit= caps the page, default 50.
func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = v
	}

	activities, err := h.Activities.ListForUser(userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
