package cron

import (
	"core/services"
	"log"

	"github.com/robfig/cron/v3"
)

// TokenCleaner purges expired refresh tokens; the auth package provides it
type TokenCleaner func() error

type Scheduler struct {
	cron         *cron.Cron
	housekeeping *services.HousekeepingService
	cleanTokens  TokenCleaner
}

func NewScheduler(housekeeping *services.HousekeepingService, cleanTokens TokenCleaner) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:         c,
		housekeeping: housekeeping,
		cleanTokens:  cleanTokens,
	}
}

// Start registers and starts all scheduled jobs
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// Hourly: past bookings, tournament statuses, expired refresh tokens
	if _, err := s.cron.AddFunc("0 0 * * * *", s.runHousekeeping); err != nil {
		log.Printf("Error scheduling housekeeping job: %v", err)
		return err
	}

	// Daily at 04:00: purge stale blocked-slot rules
	if _, err := s.cron.AddFunc("0 0 4 * * *", s.runPurge); err != nil {
		log.Printf("Error scheduling purge job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runHousekeeping() {
	log.Println("Running housekeeping job...")

	if err := s.housekeeping.CompletePastBookings(); err != nil {
		log.Printf("Error completing past bookings: %v", err)
	}
	if err := s.housekeeping.RollTournamentStatuses(); err != nil {
		log.Printf("Error rolling tournament statuses: %v", err)
	}
	if s.cleanTokens != nil {
		if err := s.cleanTokens(); err != nil {
			log.Printf("Error cleaning expired tokens: %v", err)
		}
	}

	log.Println("Housekeeping job completed")
}

func (s *Scheduler) runPurge() {
	if err := s.housekeeping.PurgeOldBlockedSlots(); err != nil {
		log.Printf("Error purging blocked slots: %v", err)
	}
}

// RunNow manually triggers the housekeeping job (useful for testing)
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering housekeeping job...")
	s.runHousekeeping()
}
