package email

import (
	"context"
	"fmt"
	"time"
)

const (
	TypeRenewalReminder = "renewal_reminder"
	TypeWelcome         = "welcome"
)

func (s *Service) SendRenewalReminder(ctx context.Context, to, name, plan string, expiry time.Time) error {
	subject := "Gym Membership Renewal Reminder"
	body := fmt.Sprintf(`Hi %s,

Just a friendly reminder that your %s membership expires on %s.

Please visit the gym desk to renew and keep your streak alive!

Stay Strong,
%s Team`, name, plan, expiry.Format("Jan 2, 2006"), s.gymName)

	return s.Send(ctx, to, name, TypeRenewalReminder, subject, body)
}

func (s *Service) SendWelcome(ctx context.Context, to, name, plan string, expiry time.Time) error {
	subject := "Welcome to " + s.gymName
	body := fmt.Sprintf(`Hi %s,

Welcome aboard! Your %s membership is active and runs until %s.

See you at the gym!

%s Team`, name, plan, expiry.Format("Jan 2, 2006"), s.gymName)

	return s.Send(ctx, to, name, TypeWelcome, subject, body)
}
