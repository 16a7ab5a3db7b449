package handlers

import (
	"errors"
	"testing"
	"time"

	"impact-log/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestValidationDetail_UsesJSONNames(t *testing.T) {
	New(nil, nil, nil)

	err := binding.Validator.ValidateStruct(&signupRequest{Email: "nope", Password: "123"})
	assert.Error(t, err)

	detail := validationDetail(err)
	assert.Contains(t, detail, "email must be a valid email address")
	assert.Contains(t, detail, "password must be at least 6 characters")
	assert.Contains(t, detail, "name is required")
}

func TestValidationDetail_BlankText(t *testing.T) {
	New(nil, nil, nil)

	err := binding.Validator.ValidateStruct(&signupRequest{Email: "a@x.com", Password: "secret1", Name: "   "})
	assert.Error(t, err)
	assert.Equal(t, "name is required", validationDetail(err))

	lat, lon, desc := 1.0, 2.0, ""
	err = binding.Validator.ValidateStruct(&createLogRequest{
		Name:         "Pothole",
		Locality:     " \t ",
		GPSLatitude:  &lat,
		GPSLongitude: &lon,
		ImpactDate:   "2024-01-01",
		Category:     models.CategoryRoad,
		Description:  &desc,
	})
	assert.Error(t, err)
	assert.Equal(t, "locality is required", validationDetail(err))
}

func TestValidationDetail_NonValidationError(t *testing.T) {
	assert.Equal(t, "Malformed request body", validationDetail(errors.New("unexpected EOF")))
}

func TestRenderLog(t *testing.T) {
	owner := &models.Account{ID: uuid.New(), Name: "A", Email: "a@x.com"}
	l := &models.ImpactLog{
		ID:          uuid.New(),
		AccountID:   owner.ID,
		Account:     owner,
		Name:        "Pothole",
		ImpactDate:  datatypes.Date(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Category:    models.CategoryRoad,
		Status:      models.StatusSolving,
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Description: "...",
	}

	resp := renderLog(l, false)
	assert.Equal(t, "2024-01-01", resp.ImpactDate)
	assert.Equal(t, "2024-01-02T03:04:05Z", resp.CreatedAt)
	assert.Equal(t, owner.ID.String(), resp.UserID)
	assert.Nil(t, resp.Profile)

	withOwner := renderLog(l, true)
	if assert.NotNil(t, withOwner.Profile) {
		assert.Equal(t, "a@x.com", withOwner.Profile.Email)
	}
}

func TestRenderLogs_NeverNil(t *testing.T) {
	assert.NotNil(t, renderLogs(nil, false))
}
