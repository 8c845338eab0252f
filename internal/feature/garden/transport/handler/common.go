// Package handler provides the HTTP handlers of the garden feature.
package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/oapi-codegen/runtime"

	"garden_backend/internal/api"
	"garden_backend/internal/feature/garden/transport/http/dto"
	"garden_backend/internal/shared/apperror"
)

// headerHXTrigger tells htmx clients which collection changed.
const headerHXTrigger = "HX-Trigger"

// parseID binds the {id} path parameter. Ids that cannot exist are reported as not found.
func parseID(c *gin.Context, resource string) (uint, error) {
	var id int64
	err := runtime.BindStyledParameterWithLocation("simple", false, "id", runtime.ParamLocationPath, c.Param("id"), &id)
	if err != nil {
		return 0, apperror.Wrap(apperror.KindValidation, err, "id must be an integer")
	}
	if id <= 0 {
		return 0, apperror.NotFoundf("%s with ID %d not found", resource, id)
	}
	return uint(id), nil
}

// bindList reads offset and limit from the query string.
func bindList(c *gin.Context) (dto.ListQuery, error) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, apperror.Wrap(apperror.KindValidation, err, "offset and limit must be integers")
	}
	return q, nil
}

// formRequest is a create body that can drop the blank fields an HTML form
// submits for unselected inputs.
type formRequest interface {
	DropBlank()
}

// bindCreate binds a JSON or form body. Blank optional form fields are unset.
func bindCreate(c *gin.Context, req formRequest) error {
	if err := c.ShouldBind(req); err != nil {
		return invalidBody(err)
	}
	if c.ContentType() != binding.MIMEJSON {
		req.DropBlank()
	}
	return nil
}

// bindPatch binds a JSON patch. An empty body is an empty patch.
func bindPatch(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		return invalidBody(err)
	}
	return nil
}

// invalidBody wraps a binding error as a validation failure.
func invalidBody(err error) error {
	return apperror.Wrap(apperror.KindValidation, err, err.Error())
}

// respondError writes err with the status its kind maps to.
func respondError(c *gin.Context, msg string, err error) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error(msg, "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	} else {
		slog.Warn(msg, "error", err, "status", status, "path", c.FullPath(), "remote_addr", c.ClientIP())
	}
	c.JSON(status, api.ErrorResponse{Error: apperror.Detail(err)})
}

func respondDeleted(c *gin.Context, trigger string) {
	c.Header(headerHXTrigger, trigger)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
