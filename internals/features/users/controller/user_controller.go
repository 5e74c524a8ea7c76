package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"inout_backend/internals/constants"
	attendanceModel "inout_backend/internals/features/attendance/model"
	locationModel "inout_backend/internals/features/locations/model"
	"inout_backend/internals/features/users/dto"
	"inout_backend/internals/features/users/model"
	helper "inout_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* =========================================================
 * Self-service (employee)
 * ========================================================= */

// 📌 GET /api/u/users/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] fetch profile failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return helper.Success(c, "Profile fetched", dto.NewUserResponse(user))
}

// 📌 PUT /api/u/users/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] fetch profile failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	if req.UserName != nil {
		user.UserName = *req.UserName
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		log.Println("[ERROR] update profile failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.Success(c, "Profile updated", dto.NewUserResponse(user))
}

/* =========================================================
 * Admin surface
 * ========================================================= */

// 📌 GET /api/a/employees — daftar employee, filter ?approved=true|false
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	query := ctrl.DB.WithContext(c.Context()).
		Where("user_role = ?", constants.RoleEmployee).
		Order("user_created_at DESC")

	if approved := c.Query("approved"); approved != "" {
		query = query.Where("user_approved = ?", approved == "true")
	}

	var users []model.UserModel
	if err := query.Find(&users).Error; err != nil {
		log.Println("[ERROR] fetch users failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.Success(c, "Users fetched", dto.NewUserResponses(users))
}

// 📌 GET /api/a/employees/:id
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] fetch user failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.Success(c, "User fetched", dto.NewUserResponse(user))
}

// 📌 POST /api/a/employees/bulk-delete — batch delete. User dan seluruh attendance
// record-nya hilang dalam SATU transaksi; gagal sebagian = rollback total,
// tidak ada user terhapus yang recordnya masih nyangkut.
func (ctrl *UserController) BulkDelete(c *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ids := make([]string, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		ids = append(ids, id.String())
	}

	var deleted int64
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// Kumpulkan employee_id dulu — attendance di-key pakai business id,
		// bukan uuid user.
		var employeeIDs []string
		if err := tx.Model(&model.UserModel{}).
			Where("user_id = ANY(?)", pq.Array(ids)).
			Where("user_employee_id IS NOT NULL").
			Pluck("user_employee_id", &employeeIDs).Error; err != nil {
			return err
		}

		if len(employeeIDs) > 0 {
			if err := tx.
				Where("attendance_employee_id = ANY(?)", pq.Array(employeeIDs)).
				Delete(&attendanceModel.AttendanceRecordModel{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("user_id = ANY(?)", pq.Array(ids)).
			Where("user_role = ?", constants.RoleEmployee).
			Delete(&model.UserModel{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		log.Println("[ERROR] bulk delete users failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete users")
	}

	return helper.Success(c, "Users deleted", fiber.Map{
		"requested": len(ids),
		"deleted":   deleted,
	})
}

// 📌 POST /api/a/employees/bulk-assign — batch assign site + approve.
// Assignment dan approval atomik: tidak boleh ada user approved tanpa
// site, karena itu bikin dia lolos gate tanpa geofence terdefinisi.
func (ctrl *UserController) BulkAssignLocation(c *fiber.Ctx) error {
	var req dto.BulkAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ids := make([]string, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		ids = append(ids, id.String())
	}

	var updated int64
	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var location locationModel.LocationModel
		if err := tx.First(&location, "location_id = ?", req.LocationID).Error; err != nil {
			return err
		}

		result := tx.Model(&model.UserModel{}).
			Where("user_id = ANY(?)", pq.Array(ids)).
			Where("user_role = ?", constants.RoleEmployee).
			Updates(map[string]interface{}{
				"user_assigned_location_id": req.LocationID,
				"user_approved":             true,
			})
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Location not found")
		}
		log.Println("[ERROR] bulk assign location failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to assign location")
	}

	return helper.Success(c, "Location assigned and users approved", fiber.Map{
		"requested": len(ids),
		"updated":   updated,
	})
}

// 📌 PUT /api/a/employees/:id/employee-id — set business identifier.
// Wajib unik; tabrakan dibalas 409, bukan 500.
func (ctrl *UserController) SetEmployeeID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.SetEmployeeIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] fetch user failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{}).
		Where("user_employee_id = ? AND user_id <> ?", req.EmployeeID, id).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] check employee id failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to set employee ID")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Employee ID already in use")
	}

	user.UserEmployeeID = &req.EmployeeID
	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		log.Println("[ERROR] set employee id failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to set employee ID")
	}
	return helper.Success(c, "Employee ID set", dto.NewUserResponse(user))
}
