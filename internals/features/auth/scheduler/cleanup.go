package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	"inout_backend/internals/configs"
	"inout_backend/internals/features/auth/model"
)

// StartBlacklistCleanupScheduler menghapus entri blacklist yang sudah
// lewat expires_at. Interval default 1 jam, bisa dioverride lewat env.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		interval := time.Hour
		if val := configs.GetEnv("BLACKLIST_CLEANUP_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				interval = time.Duration(parsed) * time.Minute
			}
		}

		for {
			result := db.Unscoped().
				Where("expires_at < ?", time.Now()).
				Delete(&model.TokenBlacklistModel{})
			if result.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", result.Error)
			} else if result.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", result.RowsAffected)
			}

			time.Sleep(interval)
		}
	}()
}
