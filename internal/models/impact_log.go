package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Category string
type Status string

const (
	CategoryRoad        Category = "Road"
	CategoryWater       Category = "Water"
	CategorySanitation  Category = "Sanitation"
	CategoryElectricity Category = "Electricity"
	CategoryOther       Category = "Other"

	StatusSolving Status = "Solving"
	StatusSolved  Status = "Solved"
	StatusFake    Status = "Fake"
)

// ImpactLog is a single field report owned by one account.
type ImpactLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	Account   *Account  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`

	Name         string         `gorm:"size:255;not null"`
	Locality     string         `gorm:"size:255;not null"`
	GPSLatitude  float64        `gorm:"column:gps_latitude;type:numeric;not null"`
	GPSLongitude float64        `gorm:"column:gps_longitude;type:numeric;not null"`
	ImpactDate   datatypes.Date `gorm:"not null;index:idx_impact_logs_impact_date"`
	Category     Category       `gorm:"type:varchar(50);not null;index:idx_impact_logs_category;check:chk_impact_logs_category,category IN ('Road', 'Water', 'Sanitation', 'Electricity', 'Other')"`
	Description  string         `gorm:"type:text;not null"`
	Status       Status         `gorm:"type:varchar(50);not null;default:'Solving';index:idx_impact_logs_status;check:chk_impact_logs_status,status IN ('Solving', 'Solved', 'Fake')"`
	CreatedAt    time.Time      `gorm:"index"`
}

func (ImpactLog) TableName() string {
	return "impact_logs"
}

func (l *ImpactLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = StatusSolving
	}
	return nil
}
