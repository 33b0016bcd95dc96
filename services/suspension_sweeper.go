package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tools-directory-api/config"
	"tools-directory-api/models"

	"gorm.io/gorm"
)

var ErrSuspensionSweepAlreadyRunning = errors.New("suspension sweep already running")

// SuspensionSweeper lifts suspensions whose window has elapsed. It is meant
// to be triggered by an external scheduler; an advisory lock keeps
// overlapping triggers from running the sweep twice, and the sweep itself is
// a single guarded update, so re-running it on already-cleared rows is a
// no-op.
type SuspensionSweeper struct {
	db  *gorm.DB
	now func() time.Time
}

type SuspensionSweepInput struct {
	LockName string
}

func NewSuspensionSweeper(db *gorm.DB) *SuspensionSweeper {
	if db == nil {
		db = config.DB
	}
	return &SuspensionSweeper{db: db, now: time.Now}
}

// ProcessExpiredSuspensions clears is_suspended on every row whose window
// has closed and returns how many rows were cleared. Bans and warning counts
// on the same rows are untouched.
//
// GET_LOCK is session scoped, so acquire, sweep and release run on one
// pinned connection; a release sent through the pool could land on a session
// that never held the lock. The detached context keeps the release from
// being skipped when the caller goes away mid-sweep.
func (s *SuspensionSweeper) ProcessExpiredSuspensions(ctx context.Context, input *SuspensionSweepInput) (int64, error) {
	lockName := "suspension_expiry_sweep"
	if input != nil && strings.TrimSpace(input.LockName) != "" {
		lockName = strings.TrimSpace(input.LockName)
	}

	now := s.now()
	var cleared int64

	err := s.db.WithContext(persistentContext(ctx)).Connection(func(conn *gorm.DB) error {
		var ok int
		if err := conn.Raw("SELECT GET_LOCK(?, 0)", lockName).Scan(&ok).Error; err != nil {
			return fmt.Errorf("failed to acquire sweep lock: %w", err)
		}
		if ok != 1 {
			return ErrSuspensionSweepAlreadyRunning
		}
		defer func() {
			var released int
			if err := conn.Raw("SELECT RELEASE_LOCK(?)", lockName).Scan(&released).Error; err != nil {
				log.Printf("Warning: failed to release sweep lock %q: %v", lockName, err)
			} else if released != 1 {
				log.Printf("Warning: release of sweep lock %q returned %d", lockName, released)
			}
		}()

		res := conn.Model(&models.UserModerationStatus{}).
			Where("is_suspended = ? AND suspension_ends_at IS NOT NULL AND suspension_ends_at <= ?", true, now).
			Updates(map[string]interface{}{
				"is_suspended": false,
				"updated_at":   now,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to sweep expired suspensions: %w", res.Error)
		}
		cleared = res.RowsAffected
		return nil
	})
	return cleared, err
}
