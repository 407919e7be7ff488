package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-users-tasks-api/internal/application"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
	"github.com/oksasatya/go-users-tasks-api/pkg/response"
	"github.com/oksasatya/go-users-tasks-api/pkg/validation"
)

// respondError writes err with the status of its kind. Unclassified errors
// are logged and reported as a generic 500.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	if errors.Is(err, application.ErrStorageUnavailable) {
		response.Error[any](c, http.StatusServiceUnavailable, err.Error(), nil)
		return
	}
	var ae *apperror.Error
	if errors.As(err, &ae) {
		var detail any
		if ae.Field != "" {
			detail = map[string]string{ae.Field: ae.Message}
		}
		response.Error[any](c, ae.Kind.Status(), ae.Message, detail)
		return
	}
	logger.WithError(err).WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	}).Error("request failed")
	response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
}

func respondBindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}

// requireSelf rejects requests that act on an account other than the caller's.
// A missing account is reported as not found before ownership is checked.
func requireSelf(c *gin.Context, svc *application.Service) error {
	id := c.Param("id")
	if _, err := svc.GetOne(c.Request.Context(), id); err != nil {
		return err
	}
	if id != currentUserID(c) {
		return apperror.Forbidden("you can only modify your own account")
	}
	return nil
}

// pageQuery holds the paging parameters shared by the list endpoints.
// Out of range values below the minimum are normalized by the services.
type pageQuery struct {
	Page    int `form:"page"`
	PerPage int `form:"perPage" binding:"omitempty,lte=100"`
}

// paged reports whether the client asked for a specific page.
func paged(c *gin.Context) bool {
	_, ok := c.GetQuery("page")
	return ok
}

func statusQuery(c *gin.Context) (*int, error) {
	raw, ok := c.GetQuery("status")
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperror.InvalidArgument("status", "the status of the task must be 0 or 1")
	}
	return &v, nil
}
