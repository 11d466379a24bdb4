package renewal

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/member"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/metrics"
)

const remindedKeyPrefix = "renewal:reminded:"

// Result is what a sweep reports. Matched counts query hits; Sent
// counts reminders actually handed to the relay. The two are kept
// separate on purpose.
type Result struct {
	Matched int `json:"matched"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Service finds members whose membership runs out on the reminder
// target day and emails each of them once.
type Service struct {
	store      member.Store
	mailer     member.Mailer
	rdb        *redis.Client
	windowDays int
}

// New builds a sweep service. rdb may be nil, which disables the
// duplicate-send guard (re-triggering the sweep then re-sends).
func New(store member.Store, mailer member.Mailer, rdb *redis.Client, windowDays int) *Service {
	return &Service{
		store:      store,
		mailer:     mailer,
		rdb:        rdb,
		windowDays: windowDays,
	}
}

// Run executes one sweep. A single member's send failure never stops
// the rest of the batch.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	metrics.RecordSweep()

	start, end := member.ReminderWindow(time.Now(), s.windowDays)

	expiring, err := s.store.FindExpiringBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	res := &Result{Matched: len(expiring)}
	if res.Matched == 0 {
		logger.Infof("Renewal sweep: no memberships expiring in %d days", s.windowDays)
		return res, nil
	}

	for _, m := range expiring {
		if s.alreadyReminded(ctx, m.ID.Hex()) {
			res.Skipped++
			metrics.RecordReminder("skipped")
			continue
		}

		if err := s.mailer.SendRenewalReminder(ctx, m.Email, m.Name, string(m.MembershipType), m.ExpiryDate); err != nil {
			logger.Errorf("Failed to send reminder to %s: %v", m.Email, err)
			res.Failed++
			metrics.RecordReminder("failed")
			continue
		}

		res.Sent++
		metrics.RecordReminder("sent")
	}

	logger.Infof("Renewal sweep: matched=%d sent=%d failed=%d skipped=%d",
		res.Matched, res.Sent, res.Failed, res.Skipped)
	return res, nil
}

// alreadyReminded marks the member as reminded for the next 24h and
// reports whether a previous run already did so. Guard errors fail
// open: better a duplicate email than a missed one.
func (s *Service) alreadyReminded(ctx context.Context, id string) bool {
	if s.rdb == nil {
		return false
	}

	set, err := s.rdb.SetNX(ctx, remindedKeyPrefix+id, 1, 24*time.Hour).Result()
	if err != nil {
		logger.Errorf("Reminder guard check failed for %s: %v", id, err)
		return false
	}
	return !set
}
