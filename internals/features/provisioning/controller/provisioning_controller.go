package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inout_backend/internals/features/provisioning/dto"
	"inout_backend/internals/features/provisioning/model"
	"inout_backend/internals/features/provisioning/service"
	helper "inout_backend/internals/helpers"
)

type ProvisioningController struct {
	DB      *gorm.DB
	Service *service.ProvisioningService
}

func NewProvisioningController(db *gorm.DB, svc *service.ProvisioningService) *ProvisioningController {
	return &ProvisioningController{DB: db, Service: svc}
}

// 📌 POST /api/provision — endpoint publik yang dipanggil device saat scan QR.
// Token tidak valid dan format payload salah dibalas dengan pesan berbeda
// supaya device bisa bedakan "QR bukan punya kita" vs "QR versi lama".
func (ctrl *ProvisioningController) Provision(c *fiber.Ctx) error {
	var req dto.ProvisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cfg, err := ctrl.Service.DecodeAndApply(c.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Invalid QR Code")
		case errors.Is(err, service.ErrUnsupportedFormat):
			return helper.Error(c, fiber.StatusUnprocessableEntity, "Unsupported QR Code format")
		default:
			log.Println("[ERROR] provisioning apply failed:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to apply configuration")
		}
	}

	return helper.Success(c, "Configuration applied", dto.ProvisionResponse{
		FirebaseConfig: cfg.TenantConfigFirebaseConfig,
		CompanyName:    cfg.TenantConfigCompanyName,
		ProjectID:      cfg.TenantConfigProjectID,
	})
}

// 📌 POST /api/a/provisioning/token — admin mint token QR untuk tenant
func (ctrl *ProvisioningController) IssueToken(c *fiber.Ctx) error {
	var req dto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := ctrl.Service.IssueToken(c.Context(), req.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Tenant config not found")
		}
		log.Println("[ERROR] issue provisioning token failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Token issued", dto.IssueTokenResponse{
		ProjectID: req.ProjectID,
		Token:     token,
	})
}

// 📌 GET /api/a/provisioning/configs — daftar tenant config tersimpan
func (ctrl *ProvisioningController) ListConfigs(c *fiber.Ctx) error {
	var configs []model.TenantConfigModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("tenant_config_created_at DESC").
		Find(&configs).Error; err != nil {
		log.Println("[ERROR] list tenant configs failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch tenant configs")
	}

	out := make([]dto.TenantConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, dto.NewTenantConfigResponse(cfg))
	}
	return helper.Success(c, "Tenant configs fetched", out)
}
