package service

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inout_backend/internals/configs"
	"inout_backend/internals/constants"
	"inout_backend/internals/features/auth/dto"
	authModel "inout_backend/internals/features/auth/model"
	userModel "inout_backend/internals/features/users/model"
	helper "inout_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

/* ==========================
   REGISTER
========================== */

// Register membuat akun employee baru. Akun lahir unapproved tanpa
// employee_id — belum bisa absen sampai admin assign site + approve.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Gagal hash password:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: string(hashed),
		UserRole:     constants.RoleEmployee,
	}
	if err := db.WithContext(c.Context()).Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] Gagal create user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration successful, waiting for admin approval", fiber.Map{
		"user_id":    user.UserID,
		"user_email": user.UserEmail,
		"user_name":  user.UserName,
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := db.WithContext(c.Context()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] Gagal fetch user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return issueToken(c, user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	var user userModel.UserModel
	err = db.WithContext(c.Context()).
		Where("user_email = ?", strings.ToLower(claimSet.Email)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// User belum ada -> buat baru (tetap unapproved)
		user = userModel.UserModel{
			UserName:     claimSet.Name,
			UserEmail:    strings.ToLower(claimSet.Email),
			UserPassword: generateDummyPassword(),
			UserRole:     constants.RoleEmployee,
		}
		if err := db.WithContext(c.Context()).Create(&user).Error; err != nil {
			log.Println("[ERROR] Gagal create Google user:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
	} else if err != nil {
		log.Println("[ERROR] Gagal fetch user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to login")
	}

	return issueToken(c, user)
}

/* ==========================
   LOGOUT
========================== */

// Logout mem-blacklist access token sampai exp-nya lewat, lalu clear cookie.
// Idempotent: logout tanpa token tetap 200.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := rawAccessToken(c)

	if accessToken != "" {
		entry := authModel.TokenBlacklistModel{
			Token:     accessToken,
			ExpiresAt: time.Now().Add(resolveBlacklistTTL(accessToken)),
		}
		if err := db.WithContext(c.Context()).Create(&entry).Error; err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout tanpa access token; lanjut clear cookie (idempotent)")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
	})

	return helper.Success(c, "Logout successful", nil)
}

/* ==========================
   HELPERS
========================== */

func issueToken(c *fiber.Ctx, user userModel.UserModel) error {
	if configs.JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET kosong")
		return helper.Error(c, fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"role":      user.UserRole,
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL()).Unix(),
	}
	if user.UserEmployeeID != nil {
		claims["employee_id"] = *user.UserEmployeeID
	}

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Println("[ERROR] Gagal membuat access token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTL()),
	})

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": accessToken,
		"user": fiber.Map{
			"user_id":     user.UserID,
			"user_name":   user.UserName,
			"user_email":  user.UserEmail,
			"user_role":   user.UserRole,
			"employee_id": user.UserEmployeeID,
			"approved":    user.UserApproved,
		},
	})
}

func accessTTL() time.Duration {
	if v := configs.GetEnv("ACCESS_TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return accessTTLDefault
}

func rawAccessToken(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}

// TTL blacklist mengikuti sisa umur token supaya row tidak hidup lebih
// lama dari tokennya.
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if accessToken == "" || configs.JWTSecret == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
					return until + time.Minute
				}
			}
		}
	}
	return ttl
}

// Akun Google tidak punya password lokal; isi hash acak supaya login
// email+password tidak pernah match.
func generateDummyPassword() string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return ""
	}
	return string(hashed)
}
