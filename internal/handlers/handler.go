package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"impact-log/internal/auth"
	"impact-log/internal/middleware"
	"impact-log/internal/models"
	"impact-log/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	store  *store.Store
	hasher *auth.Hasher
	tokens *auth.TokenIssuer
}

var registerTagNames sync.Once

func New(st *store.Store, hasher *auth.Hasher, tokens *auth.TokenIssuer) *Handler {
	registerTagNames.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
			_ = v.RegisterValidation("notblank", validators.NotBlank)
		}
	})
	return &Handler{
		store:  st,
		hasher: hasher,
		tokens: tokens,
	}
}

// jsonFieldName makes validation errors report the wire name of a field.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func fail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// bindJSON decodes the body and runs binding tags. Failures are answered with 422.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		fail(c, http.StatusUnprocessableEntity, validationDetail(err))
		return false
	}
	return true
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Malformed request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required", "notblank":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email address")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "datetime":
			msgs = append(msgs, field+" must be a date in YYYY-MM-DD format")
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func internalError(c *gin.Context, op string, err error) {
	middleware.AbortWithError(c, op, err)
}

// account returns the caller resolved by middleware.RequireAuth.
func account(c *gin.Context) *models.Account {
	acc, ok := middleware.CurrentAccount(c)
	if !ok {
		panic("handlers: route is missing middleware.RequireAuth")
	}
	return acc
}
