package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/access"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/api/middleware"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/jwt"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

func init() {
	// report validation failures under the json names clients send
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	}
}

// ── context ──

// MustGetPrincipal returns the caller stored by middleware.JWTAuth.
// It writes a 401 and returns false when there is none.
func MustGetPrincipal(c *gin.Context) (access.Principal, bool) {
	v, exists := c.Get(middleware.PrincipalKey)
	p, ok := v.(access.Principal)
	if !exists || !ok || p.UserID == 0 {
		response.Unauthorized(c, 10002, "authentication credentials were not provided")
		return access.Principal{}, false
	}
	return p, true
}

// claimsFrom returns the access token claims, if any.
func claimsFrom(c *gin.Context) *jwt.Claims {
	v, _ := c.Get(middleware.ClaimsKey)
	claims, _ := v.(*jwt.Claims)
	return claims
}

// clientActor describes an anonymous caller for audit entries.
func clientActor(c *gin.Context) audit.Actor {
	return audit.Actor{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()}
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// ── binding ──

// bindJSON decodes and validates the body into req, writing a 400 (or
// 413) on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		renderBindError(c, err)
		return false
	}
	return true
}

// bindList reads the common list query parameters.
func bindList(c *gin.Context) (*dto.ListQuery, bool) {
	var q dto.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		renderBindError(c, err)
		return nil, false
	}
	q.SetFilters(c.Request.URL.Query())
	return &q, true
}

func renderBindError(c *gin.Context, err error) {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		numErr    *strconv.NumError
		tooLarge  *http.MaxBytesError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &tooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		response.ValidationFailed(c, 10001, fields)
	case errors.As(err, &typeErr):
		response.ValidationFailed(c, 10001, map[string]string{
			typeErr.Field: fmt.Sprintf("expected %s", typeErr.Type.String()),
		})
	case errors.As(err, &numErr):
		response.BadRequest(c, 10001, "invalid number in query")
	case errors.As(err, &syntaxErr):
		response.BadRequest(c, 10001, "malformed JSON body")
	default:
		response.BadRequest(c, 10001, "invalid request body")
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "datetime":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

// renderFieldError writes a 400 for *apperrors.FieldError and reports
// whether err was one.
func renderFieldError(c *gin.Context, err error, code int) bool {
	fe, ok := apperrors.AsFieldError(err)
	if !ok {
		return false
	}
	response.ValidationFailed(c, code, map[string]string{fe.Field: fe.Message})
	return true
}

// renderPage writes a paginated list.
func renderPage[T any](c *gin.Context, page *dto.Page[T]) {
	list := page.List
	if list == nil {
		list = []T{}
	}
	response.OKPage(c, list, page.Total, page.Page, page.PageSize)
}
