package dto

import (
	"time"

	"inout_backend/internals/features/provisioning/model"
)

// Request dari aplikasi yang baru scan QR
type ProvisionRequest struct {
	Token string `json:"token" validate:"required"`
}

// Hasil decode yang dikirim balik ke device (tanpa internal id)
type ProvisionResponse struct {
	FirebaseConfig string `json:"firebaseConfig"`
	CompanyName    string `json:"companyName"`
	ProjectID      string `json:"projectId"`
}

// Admin minta token QR baru untuk tenant yang sudah tersimpan
type IssueTokenRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
}

type IssueTokenResponse struct {
	ProjectID string `json:"project_id"`
	Token     string `json:"token"`
}

type TenantConfigResponse struct {
	TenantConfigID string     `json:"tenant_config_id"`
	ProjectID      string     `json:"project_id"`
	CompanyName    string     `json:"company_name"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

func NewTenantConfigResponse(m model.TenantConfigModel) TenantConfigResponse {
	return TenantConfigResponse{
		TenantConfigID: m.TenantConfigID.String(),
		ProjectID:      m.TenantConfigProjectID,
		CompanyName:    m.TenantConfigCompanyName,
		CreatedAt:      m.TenantConfigCreatedAt,
		UpdatedAt:      m.TenantConfigUpdatedAt,
	}
}
