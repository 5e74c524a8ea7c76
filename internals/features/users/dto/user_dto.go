package dto

import (
	"time"

	"github.com/google/uuid"

	"inout_backend/internals/features/users/model"
)

// Batch ops admin: satu request, banyak user, satu transaksi.
type BulkDeleteRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"required,min=1,dive,required"`
}

type BulkAssignRequest struct {
	UserIDs    []uuid.UUID `json:"user_ids" validate:"required,min=1,dive,required"`
	LocationID uuid.UUID   `json:"location_id" validate:"required"`
}

type SetEmployeeIDRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=1,max=50"`
}

type UpdateProfileRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=2,max=100"`
}

type UserResponse struct {
	UserID                 uuid.UUID  `json:"user_id"`
	UserEmail              string     `json:"user_email"`
	UserName               string     `json:"user_name"`
	UserRole               string     `json:"user_role"`
	UserEmployeeID         *string    `json:"user_employee_id,omitempty"`
	UserApproved           bool       `json:"user_approved"`
	UserAssignedLocationID *uuid.UUID `json:"user_assigned_location_id,omitempty"`
	UserCreatedAt          time.Time  `json:"user_created_at"`
}

func NewUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:                 m.UserID,
		UserEmail:              m.UserEmail,
		UserName:               m.UserName,
		UserRole:               m.UserRole,
		UserEmployeeID:         m.UserEmployeeID,
		UserApproved:           m.UserApproved,
		UserAssignedLocationID: m.UserAssignedLocationID,
		UserCreatedAt:          m.UserCreatedAt,
	}
}

func NewUserResponses(models []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(models))
	for _, m := range models {
		out = append(out, NewUserResponse(m))
	}
	return out
}
