package renewal

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"
)

// Schedule runs the sweep on the given cron spec (e.g. "0 8 * * *")
// in addition to the HTTP trigger. Returns the started scheduler so
// the caller can Stop it on shutdown.
func Schedule(spec string, svc *Service) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		if _, err := svc.Run(context.Background()); err != nil {
			logger.Errorf("Scheduled renewal sweep failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logger.Infof("Renewal sweep scheduled: %q", spec)
	return c, nil
}
