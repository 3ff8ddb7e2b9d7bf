package services

import (
	"context"
	"log"
	"time"

	"rolehub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CleanupService clears expired verification codes on a schedule so
// stale reset codes never linger on user rows.
type CleanupService struct {
	userRepo repositories.UserRepository
	cron     *cron.Cron
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(userRepo repositories.UserRepository) *CleanupService {
	return &CleanupService{
		userRepo: userRepo,
		cron:     cron.New(),
	}
}

// Start schedules the hourly purge and launches the cron runner
func (s *CleanupService) Start() {
	s.cron.AddFunc("@hourly", s.purgeExpiredVerificationCodes)
	s.cron.Start()
	log.Println("🚀 CleanupService started")
}

// Stop stops the cron runner
func (s *CleanupService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CleanupService stopped")
}

func (s *CleanupService) purgeExpiredVerificationCodes() {
	n, err := s.userRepo.PurgeExpiredVerificationCodes(context.Background(), time.Now())
	if err != nil {
		log.Printf("❌ Verification code purge error: %v", err)
		return
	}
	if n > 0 {
		log.Printf("🧹 Cleared %d expired verification codes", n)
	}
}
