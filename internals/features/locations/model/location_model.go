package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRadiusMeters dipakai kalau admin tidak mengisi radius.
const DefaultRadiusMeters = 100.0

// LocationModel = office location / site yang jadi pusat geofence.
type LocationModel struct {
	LocationID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:location_id" json:"location_id"`
	LocationName      string    `gorm:"not null;column:location_name" json:"location_name"`
	LocationLatitude  float64   `gorm:"not null;column:location_latitude" json:"location_latitude"`
	LocationLongitude float64   `gorm:"not null;column:location_longitude" json:"location_longitude"`
	LocationRadius    float64   `gorm:"not null;default:100;column:location_radius" json:"location_radius"`

	LocationCreatedAt time.Time      `gorm:"column:location_created_at;autoCreateTime" json:"location_created_at"`
	LocationUpdatedAt *time.Time     `gorm:"column:location_updated_at;autoUpdateTime" json:"location_updated_at,omitempty"`
	LocationDeletedAt gorm.DeletedAt `gorm:"column:location_deleted_at;index" json:"location_deleted_at,omitempty"`
}

func (LocationModel) TableName() string { return "locations" }

// BeforeSave jaga default radius kalau 0/negatif.
func (m *LocationModel) BeforeSave(tx *gorm.DB) error {
	if m.LocationRadius <= 0 {
		m.LocationRadius = DefaultRadiusMeters
	}
	return nil
}
