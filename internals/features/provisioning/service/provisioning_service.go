package service

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inout_backend/internals/features/provisioning/model"
)

// Satu-satunya trust boundary untuk input attacker-controlled di sistem
// ini. Semua failure path harus reachable dan bisa dibedakan:
// decrypt gagal ≠ format salah ≠ store gagal. Tidak boleh ada konfigurasi
// parsial yang aktif kalau salah satu step gagal.
var (
	ErrInvalidToken      = errors.New("invalid provisioning token")
	ErrUnsupportedFormat = errors.New("unsupported provisioning payload format")
)

// Payload hasil dekripsi token QR. Ephemeral — dipakai sekali untuk
// materialize tenant config, tidak disimpan mentah di memori lebih lama
// dari satu operasi.
type Payload struct {
	FirebaseConfig string `json:"firebaseConfig"`
	CompanyName    string `json:"companyName"`
	ProjectID      string `json:"projectId"`
}

/* =========================================================
 * Codec: AES-256-GCM, key = SHA-256(app secret)
 * Token = base64(nonce ‖ ciphertext)
 * ========================================================= */

type Codec struct {
	aead cipher.AEAD
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("provisioning secret is empty")
	}
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Codec{aead: aead}, nil
}

// Encrypt membungkus payload jadi token QR.
func (c *Codec) Encrypt(p Payload) (string, error) {
	plaintext, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt membuka token untrusted. Semua kegagalan kriptografik
// (base64 rusak, token kependekan, tag GCM salah) = ErrInvalidToken,
// tidak pernah panic atau hasil kosong diam-diam.
func (c *Codec) Decrypt(token string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if len(raw) < c.aead.NonceSize()+1 {
		return nil, ErrInvalidToken
	}

	nonce, ciphertext := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return plaintext, nil
}

// ParsePayload memvalidasi plaintext jadi Payload. Tiga field string
// wajib ada dan bertipe benar; selain itu = ErrUnsupportedFormat.
func ParsePayload(plaintext []byte) (*Payload, error) {
	var wrapper struct {
		FirebaseConfig *string `json:"firebaseConfig"`
		CompanyName    *string `json:"companyName"`
		ProjectID      *string `json:"projectId"`
	}
	if err := json.Unmarshal(plaintext, &wrapper); err != nil {
		return nil, ErrUnsupportedFormat
	}
	if wrapper.FirebaseConfig == nil || *wrapper.FirebaseConfig == "" ||
		wrapper.CompanyName == nil || *wrapper.CompanyName == "" ||
		wrapper.ProjectID == nil || *wrapper.ProjectID == "" {
		return nil, ErrUnsupportedFormat
	}
	return &Payload{
		FirebaseConfig: *wrapper.FirebaseConfig,
		CompanyName:    *wrapper.CompanyName,
		ProjectID:      *wrapper.ProjectID,
	}, nil
}

// Decode = Decrypt + ParsePayload.
func (c *Codec) Decode(token string) (*Payload, error) {
	plaintext, err := c.Decrypt(token)
	if err != nil {
		return nil, err
	}
	return ParsePayload(plaintext)
}

/* =========================================================
 * Service: persist tenant config
 * ========================================================= */

type ProvisioningService struct {
	DB    *gorm.DB
	Codec *Codec
}

func NewProvisioningService(db *gorm.DB, codec *Codec) *ProvisioningService {
	return &ProvisioningService{DB: db, Codec: codec}
}

// Apply mem-persist payload tervalidasi jadi tenant config, upsert by
// projectId, satu transaksi — gagal di tengah = tidak ada row parsial.
func (s *ProvisioningService) Apply(ctx context.Context, p Payload) (*model.TenantConfigModel, error) {
	snapshot, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	cfg := model.TenantConfigModel{
		TenantConfigProjectID:      p.ProjectID,
		TenantConfigCompanyName:    p.CompanyName,
		TenantConfigFirebaseConfig: p.FirebaseConfig,
		TenantConfigPayload:        datatypes.JSON(snapshot),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_config_project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"tenant_config_company_name",
				"tenant_config_firebase_config",
				"tenant_config_payload",
				"tenant_config_updated_at",
			}),
		}).Create(&cfg).Error
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DecodeAndApply: pipeline lengkap scan → config aktif.
func (s *ProvisioningService) DecodeAndApply(ctx context.Context, token string) (*model.TenantConfigModel, error) {
	payload, err := s.Codec.Decode(token)
	if err != nil {
		return nil, err
	}
	return s.Apply(ctx, *payload)
}

// IssueToken membuat token QR dari tenant config tersimpan.
func (s *ProvisioningService) IssueToken(ctx context.Context, projectID string) (string, error) {
	var cfg model.TenantConfigModel
	if err := s.DB.WithContext(ctx).
		Where("tenant_config_project_id = ?", projectID).
		First(&cfg).Error; err != nil {
		return "", err
	}
	return s.Codec.Encrypt(Payload{
		FirebaseConfig: cfg.TenantConfigFirebaseConfig,
		CompanyName:    cfg.TenantConfigCompanyName,
		ProjectID:      cfg.TenantConfigProjectID,
	})
}
