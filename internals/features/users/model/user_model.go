package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel menyimpan akun admin & employee. Employee dibuat unapproved;
// baru bisa absen setelah approved dan punya assigned location.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserEmail    string    `gorm:"uniqueIndex;not null;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"column:user_password" json:"-"`
	UserName     string    `gorm:"not null;column:user_name" json:"user_name"`
	UserRole     string    `gorm:"not null;default:'employee';column:user_role" json:"user_role"`

	// Business identifier, diisi admin setelah approval (boleh kosong dulu)
	UserEmployeeID *string `gorm:"uniqueIndex;column:user_employee_id" json:"user_employee_id,omitempty"`

	UserApproved           bool       `gorm:"not null;default:false;column:user_approved" json:"user_approved"`
	UserAssignedLocationID *uuid.UUID `gorm:"type:uuid;column:user_assigned_location_id" json:"user_assigned_location_id,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
