package handlers

import (
	"time"

	"impact-log/internal/models"
)

type userResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

type tokenResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type profileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type logResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user_id"`
	Name         string           `json:"name"`
	Locality     string           `json:"locality"`
	GPSLatitude  float64          `json:"gps_latitude"`
	GPSLongitude float64          `json:"gps_longitude"`
	ImpactDate   string           `json:"impact_date"`
	Category     models.Category  `json:"category"`
	Description  string           `json:"description"`
	Status       models.Status    `json:"status"`
	CreatedAt    string           `json:"created_at"`
	Profile      *profileResponse `json:"profile"`
}

func renderUser(a *models.Account) userResponse {
	return userResponse{
		ID:    a.ID.String(),
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

// renderLog serializes l; the owner profile is included only when withOwner is set and loaded.
func renderLog(l *models.ImpactLog, withOwner bool) logResponse {
	resp := logResponse{
		ID:           l.ID.String(),
		UserID:       l.AccountID.String(),
		Name:         l.Name,
		Locality:     l.Locality,
		GPSLatitude:  l.GPSLatitude,
		GPSLongitude: l.GPSLongitude,
		ImpactDate:   time.Time(l.ImpactDate).Format(dateLayout),
		Category:     l.Category,
		Description:  l.Description,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if withOwner && l.Account != nil {
		resp.Profile = &profileResponse{Name: l.Account.Name, Email: l.Account.Email}
	}
	return resp
}

func renderLogs(logs []models.ImpactLog, withOwner bool) []logResponse {
	out := make([]logResponse, 0, len(logs))
	for i := range logs {
		out = append(out, renderLog(&logs[i], withOwner))
	}
	return out
}
