package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/dto/response"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/middleware"
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func success(c *gin.Context, code int, data any) {
	c.JSON(code, response.Response{
		Meta: response.Meta{Code: code, Message: http.StatusText(code)},
		Data: data,
	})
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, response.Response{
		Meta: response.Meta{Code: code, Message: message},
	})
}

// badRequest reports binding failures, listing each failed field rule.
func badRequest(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	details := make([]response.ErrorDetail, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, response.ErrorDetail{
			Path: fieldErr.Field(),
			Info: validationMessage(fieldErr),
		})
	}
	c.JSON(http.StatusBadRequest, response.Response{
		Meta: response.Meta{
			Code:    http.StatusBadRequest,
			Message: "validation failed",
			Details: details,
		},
	})
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "max":
		return fieldErr.Field() + " must be at most " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}

// HTTPStatus maps usecase status codes onto HTTP statuses.
func HTTPStatus(err error) int {
	switch status.Code(err) {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.FailedPrecondition, codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	code := HTTPStatus(err)
	message := status.Convert(err).Message()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	_ = c.Error(err)
	fail(c, code, message)
}

func actorOf(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "unauthenticated")
	}
	return actor, ok
}
