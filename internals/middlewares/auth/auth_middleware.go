// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"inout_backend/internals/configs"
	"inout_backend/internals/constants"
	authModel "inout_backend/internals/features/auth/model"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Cek blacklist (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token ditemukan di blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) Validasi exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) Simpan klaim penting ke locals
		storeClaimsToLocals(c, claims)

		return c.Next()
	}
}

// IsAdmin membatasi route khusus admin (dipasang setelah AuthMiddleware).
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin(c.Path()))
		}
		return c.Next()
	}
}

// IsEmployee membatasi route khusus employee.
func IsEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role != constants.RoleEmployee {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorEmployee(c.Path()))
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("Unauthorized - Invalid Authorization header")
	}
	// fallback cookie
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_id"].(string); ok {
		c.Locals("user_id", v)
	}
	if v, ok := claims["role"].(string); ok {
		c.Locals("role", v)
	}
	if v, ok := claims["employee_id"].(string); ok {
		c.Locals("employee_id", v)
	}
	if v, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", v)
	}
}
