package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TenantConfigModel = konfigurasi tenant hasil decode provisioning token.
// Satu row per projectId; decode ulang dengan projectId sama = update.
type TenantConfigModel struct {
	TenantConfigID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tenant_config_id" json:"tenant_config_id"`
	TenantConfigProjectID string    `gorm:"uniqueIndex;not null;column:tenant_config_project_id" json:"tenant_config_project_id"`
	TenantConfigCompanyName string  `gorm:"not null;column:tenant_config_company_name" json:"tenant_config_company_name"`

	// Connection descriptor mentah (opaque string dari payload)
	TenantConfigFirebaseConfig string `gorm:"type:text;not null;column:tenant_config_firebase_config" json:"tenant_config_firebase_config"`

	// Snapshot payload tervalidasi (JSONB), untuk audit & re-issue token
	TenantConfigPayload datatypes.JSON `gorm:"type:jsonb;column:tenant_config_payload" json:"tenant_config_payload,omitempty"`

	TenantConfigCreatedAt time.Time      `gorm:"column:tenant_config_created_at;autoCreateTime" json:"tenant_config_created_at"`
	TenantConfigUpdatedAt *time.Time     `gorm:"column:tenant_config_updated_at;autoUpdateTime" json:"tenant_config_updated_at,omitempty"`
	TenantConfigDeletedAt gorm.DeletedAt `gorm:"column:tenant_config_deleted_at;index" json:"tenant_config_deleted_at,omitempty"`
}

func (TenantConfigModel) TableName() string { return "tenant_configs" }
