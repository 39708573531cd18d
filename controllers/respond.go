package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// report validation failures by form field name, not Go field name
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	var dup *services.DuplicateError

	switch {
	case errors.As(err, &verr):
		utils.JSONFieldError(c, http.StatusBadRequest, "error.validation", verr.Field, verr.Field+" "+verr.Message)
	case errors.As(err, &dup):
		utils.JSONFieldError(c, http.StatusConflict, "error.duplicateIdentity", dup.Field, dup.Error())
	case errors.Is(err, services.ErrDuplicateIdentity):
		utils.JSONError(c, http.StatusConflict, "error.duplicateIdentity", services.ErrDuplicateIdentity.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", services.ErrInvalidCredentials.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", err.Error())
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.JSONFieldError(c, http.StatusBadRequest, "error.invalidDateRange", "check_out_date", services.ErrInvalidDateRange.Error())
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, "error.roomUnavailable", err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", err.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthenticated", err.Error())
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal error")
	}
}

// respondBindError names the first offending field when it can.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := "is required"
		switch fe.Tag() {
		case "required":
		case "email":
			msg = "must be a valid email address"
		default:
			msg = fmt.Sprintf("failed %q validation", fe.Tag())
		}
		utils.JSONFieldError(c, http.StatusBadRequest, "error.validation", fe.Field(), fe.Field()+" "+msg)
		return
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		utils.JSONFieldError(c, http.StatusBadRequest, "error.validation", typeErr.Field,
			fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
		return
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		msg := fmt.Sprintf("invalid number %q", numErr.Num)
		if field := formFieldWithValue(c, numErr.Num); field != "" {
			utils.JSONFieldError(c, http.StatusBadRequest, "error.validation", field, field+" must be a number")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", msg)
		return
	}
	utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "invalid request payload")
}

// formFieldWithValue finds the query or form key that carried raw. gin's form
// mapping drops the key from its parse errors.
func formFieldWithValue(c *gin.Context, raw string) string {
	var keys []string
	seen := map[string]bool{}
	for _, values := range []url.Values{c.Request.URL.Query(), c.Request.PostForm} {
		for key, vs := range values {
			if seen[key] || !slices.Contains(vs, raw) {
				continue
			}
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return strings.TrimSuffix(keys[0], "[]")
}

// wantsJSON separates API clients from browser form posts, which get redirects.
func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), binding.MIMEJSON) || c.ContentType() == binding.MIMEJSON
}

// respondCreated sends JSON to API clients and a 303 to form posts.
func respondCreated(c *gin.Context, status int, data any, location string) {
	if wantsJSON(c) {
		utils.JSONSuccess(c, status, data)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &services.ValidationError{Field: field, Message: "is required"}
	}
	t, err := time.Parse(services.DateLayout, raw)
	if err != nil {
		return time.Time{}, &services.ValidationError{Field: field, Message: "must be a date in YYYY-MM-DD format"}
	}
	return t, nil
}

func parseOptionalDate(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := parseDate(field, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// pathID reads a numeric path parameter. Anything else cannot name a record.
func pathID(c *gin.Context, name, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusNotFound, "error.notFound", fmt.Sprintf("%s %s: %s", what, c.Param(name), services.ErrNotFound))
		return 0, false
	}
	return uint(id), true
}
