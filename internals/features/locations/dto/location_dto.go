package dto

import (
	"inout_backend/internals/features/locations/model"
)

type CreateLocationRequest struct {
	LocationName      string  `json:"location_name" validate:"required,min=2,max=100"`
	LocationLatitude  float64 `json:"location_latitude" validate:"required,latitude"`
	LocationLongitude float64 `json:"location_longitude" validate:"required,longitude"`
	LocationRadius    float64 `json:"location_radius" validate:"omitempty,gt=0"`
}

type UpdateLocationRequest struct {
	LocationName      *string  `json:"location_name" validate:"omitempty,min=2,max=100"`
	LocationLatitude  *float64 `json:"location_latitude" validate:"omitempty,latitude"`
	LocationLongitude *float64 `json:"location_longitude" validate:"omitempty,longitude"`
	LocationRadius    *float64 `json:"location_radius" validate:"omitempty,gt=0"`
}

func (r CreateLocationRequest) ToModel() model.LocationModel {
	radius := r.LocationRadius
	if radius <= 0 {
		radius = model.DefaultRadiusMeters
	}
	return model.LocationModel{
		LocationName:      r.LocationName,
		LocationLatitude:  r.LocationLatitude,
		LocationLongitude: r.LocationLongitude,
		LocationRadius:    radius,
	}
}

// ApplyTo meng-update field yang dikirim saja (partial update).
func (r UpdateLocationRequest) ApplyTo(m *model.LocationModel) {
	if r.LocationName != nil {
		m.LocationName = *r.LocationName
	}
	if r.LocationLatitude != nil {
		m.LocationLatitude = *r.LocationLatitude
	}
	if r.LocationLongitude != nil {
		m.LocationLongitude = *r.LocationLongitude
	}
	if r.LocationRadius != nil {
		m.LocationRadius = *r.LocationRadius
	}
}
