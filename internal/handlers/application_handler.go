package handlers

import (
	"net/http"
	"strconv"

	"github.com/careerpilot/careerpilot/internal/auth"
	"github.com/careerpilot/careerpilot/internal/dtos"
	"github.com/careerpilot/careerpilot/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Activities   *services.ActivityService
}

func NewApplicationHandler(applications *services.ApplicationService, activities *services.ActivityService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications, Activities: activities}
}

// Create is the POST /applications endpoint
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Stage != "" && !auth.ValidateStage(req.Stage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage"})
		return
	}

	app, err := h.Applications.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// List is the GET /applications endpoint; ?stage= and ?company_id= filter.
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stage := c.Query("stage")
	if stage != "" && !auth.ValidateStage(stage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage"})
		return
	}
	var companyID uint
	if raw := c.Query("company_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company_id"})
			return
		}
		companyID = uint(v)
	}

	apps, err := h.Applications.List(userID, stage, companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Board is the GET /applications/board endpoint feeding the kanban view.
func (h *ApplicationHandler) Board(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	board, err := h.Applications.Board(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// Get is the GET /applications/:id endpoint
func (h *ApplicationHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	app, err := h.Applications.Get(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Update is the PATCH /applications/:id endpoint. A stage change here is
// what drives the pipeline timestamps and the STAGE_CHANGED audit trail.
func (h *ApplicationHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dtos.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Stage != nil && !auth.ValidateStage(*req.Stage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage"})
		return
	}

	app, err := h.Applications.Update(userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Delete is the DELETE /applications/:id endpoint
func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Applications.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListActivities is the GET /applications/:id/activities endpoint
func (h *ApplicationHandler) ListActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	activities, err := h.Activities.ListForApplication(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
