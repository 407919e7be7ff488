package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-users-tasks-api/internal/application"
	"github.com/oksasatya/go-users-tasks-api/pkg/response"
)

const maxAvatarBytes = 2 << 20

type UserHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type listUsersQuery struct {
	pageQuery
	Name  string `form:"name"`
	Email string `form:"email"`
}

type lookupQuery struct {
	Q    string `form:"q" binding:"required"`
	Size int    `form:"size" binding:"omitempty,gte=0"`
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var in application.CreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, u, "", nil)
}

// List GET /api/users. Without ?page it returns every user.
func (h *UserHandler) List(c *gin.Context) {
	var q listUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	if !paged(c) {
		users, err := h.Svc.GetAll(c.Request.Context())
		if err != nil {
			respondError(c, h.Logger, err)
			return
		}
		response.Success(c, http.StatusOK, users, "", nil)
		return
	}
	res, err := h.Svc.GetUsersByPage(c.Request.Context(), q.Page, q.PerPage, q.Name, q.Email)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res.Items, "", res.Pagination)
}

// Search GET /api/users/search/:query
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.Svc.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users, "", nil)
}

// Lookup GET /api/users/lookup?q=&size=
func (h *UserHandler) Lookup(c *gin.Context) {
	var q lookupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	users, err := h.Svc.Lookup(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users, "", nil)
}

// GetOne GET /api/users/:id
func (h *UserHandler) GetOne(c *gin.Context) {
	u, err := h.Svc.GetOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "", nil)
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	if err := requireSelf(c, h.Svc); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	var in application.UpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), in, c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "", nil)
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := requireSelf(c, h.Svc); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// UploadAvatar POST /api/users/:id/avatar (multipart field "avatar")
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	if err := requireSelf(c, h.Svc); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAvatarBytes)
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "avatar file is required (max 2MB)", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	defer f.Close()

	u, err := h.Svc.UploadAvatar(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "avatar updated", nil)
}
