package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-users-tasks-api/internal/application"
	"github.com/oksasatya/go-users-tasks-api/pkg/response"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type listTasksQuery struct {
	pageQuery
	Name string `form:"name"`
}

// List GET /api/tasks. Without ?page it returns every task of the caller.
func (h *TaskHandler) List(c *gin.Context) {
	var q listTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	uid := currentUserID(c)
	if !paged(c) {
		tasks, err := h.Svc.GetAll(c.Request.Context(), uid)
		if err != nil {
			respondError(c, h.Logger, err)
			return
		}
		response.Success(c, http.StatusOK, tasks, "", nil)
		return
	}
	status, err := statusQuery(c)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	res, err := h.Svc.GetTasksByPage(c.Request.Context(), uid, q.Page, q.PerPage, q.Name, status)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res.Items, "", res.Pagination)
}

// Search GET /api/tasks/search/:query[?status=]
func (h *TaskHandler) Search(c *gin.Context) {
	status, err := statusQuery(c)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	tasks, err := h.Svc.Search(c.Request.Context(), currentUserID(c), c.Param("query"), status)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "", nil)
}

// GetOne GET /api/tasks/:id
func (h *TaskHandler) GetOne(c *gin.Context) {
	t, err := h.Svc.GetOne(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "", nil)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var in application.CreateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "", nil)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var in application.UpdateTaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), currentUserID(c), c.Param("id"), in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "", nil)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}
