package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"inout_backend/internals/features/locations/dto"
	"inout_backend/internals/features/locations/model"
	helper "inout_backend/internals/helpers"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

// 📌 GET /api/a/locations — daftar semua site
func (ctrl *LocationController) GetAll(c *fiber.Ctx) error {
	var locations []model.LocationModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("location_created_at DESC").
		Find(&locations).Error; err != nil {
		log.Println("[ERROR] fetch locations failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch locations")
	}
	return helper.Success(c, "Locations fetched", locations)
}

// 📌 GET /api/a/locations/:id
func (ctrl *LocationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location ID")
	}

	var location model.LocationModel
	if err := ctrl.DB.WithContext(c.Context()).First(&location, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Location not found")
		}
		log.Println("[ERROR] fetch location failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch location")
	}
	return helper.Success(c, "Location fetched", location)
}

// 📌 POST /api/a/locations — admin tambah site baru
func (ctrl *LocationController) Create(c *fiber.Ctx) error {
	var req dto.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	location := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&location).Error; err != nil {
		log.Println("[ERROR] create location failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create location")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Location created", location)
}

// 📌 PUT /api/a/locations/:id — partial update
func (ctrl *LocationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location ID")
	}

	var req dto.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var location model.LocationModel
	if err := ctrl.DB.WithContext(c.Context()).First(&location, "location_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Location not found")
		}
		log.Println("[ERROR] fetch location failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch location")
	}

	req.ApplyTo(&location)
	if err := ctrl.DB.WithContext(c.Context()).Save(&location).Error; err != nil {
		log.Println("[ERROR] update location failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update location")
	}
	return helper.Success(c, "Location updated", location)
}

// 📌 DELETE /api/a/locations/:id — soft delete; assignment user yang masih
// menunjuk ke site ini dilepas supaya check-in berikutnya ditolak dengan
// "no site assigned", bukan verifikasi terhadap site mati.
func (ctrl *LocationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid location ID")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.LocationModel{}, "location_id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Table("users").
			Where("user_assigned_location_id = ?", id).
			Update("user_assigned_location_id", nil).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Location not found")
		}
		log.Println("[ERROR] delete location failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete location")
	}
	return helper.Success(c, "Location deleted", nil)
}
