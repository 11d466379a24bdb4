package member

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/logger"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/media"
	"github.com/Bhakat-Aditya/Biswajit-Gym/internal/metrics"
)

// ErrUpload marks a media-service failure during member creation.
var ErrUpload = errors.New("photo upload failed")

// Mailer is the slice of the email service member creation needs.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name, plan string, expiry time.Time) error
	SendRenewalReminder(ctx context.Context, to, name, plan string, expiry time.Time) error
}

type Service struct {
	store   Store
	storage media.Storage
	mailer  Mailer
}

func NewService(store Store, storage media.Storage, mailer Mailer) *Service {
	return &Service{
		store:   store,
		storage: storage,
		mailer:  mailer,
	}
}

type CreateInput struct {
	Name           string
	Email          string
	Phone          string
	Age            int
	HeightCm       float64
	WeightKg       float64
	MembershipType MembershipType
	JoiningDate    time.Time
}

// Create uploads the photo first and only then writes the record, so a
// rejected upload never leaves a member pointing at a missing photo.
func (s *Service) Create(ctx context.Context, in CreateInput, photo io.Reader) (*Member, error) {
	expiry, err := ExpiryDate(in.JoiningDate, in.MembershipType)
	if err != nil {
		return nil, err
	}

	asset, err := s.storage.Upload(ctx, photo, media.FolderMembers)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	m := &Member{
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Age:            in.Age,
		HeightCm:       in.HeightCm,
		WeightKg:       in.WeightKg,
		MembershipType: in.MembershipType,
		JoiningDate:    in.JoiningDate,
		ExpiryDate:     expiry,
		PhotoURL:       asset.URL,
		PhotoPublicID:  asset.PublicID,
	}

	if err := s.store.Insert(ctx, m); err != nil {
		// The record never existed, so clean up the uploaded photo.
		if derr := s.storage.Destroy(ctx, asset.PublicID); derr != nil {
			logger.Errorf("Failed to remove orphaned photo %s: %v", asset.PublicID, derr)
		}
		return nil, err
	}

	m.Status = m.StatusAt(time.Now())
	metrics.RecordMemberCreated(string(in.MembershipType))
	logger.Infof("Member created: %s (%s), expires %s", m.Name, m.MembershipType, m.ExpiryDate.Format("2006-01-02"))

	// Welcome mail is best-effort: a relay hiccup must not fail the
	// creation response.
	if err := s.mailer.SendWelcome(ctx, m.Email, m.Name, string(m.MembershipType), m.ExpiryDate); err != nil {
		logger.Errorf("Failed to queue welcome email for %s: %v", m.Email, err)
	}

	return m, nil
}

// Remind sends one manual renewal reminder, outside the sweep's window
// and cooldown. Failures surface to the caller.
func (s *Service) Remind(ctx context.Context, id string) (*Member, error) {
	m, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendRenewalReminder(ctx, m.Email, m.Name, string(m.MembershipType), m.ExpiryDate); err != nil {
		return nil, fmt.Errorf("failed to send reminder: %w", err)
	}

	metrics.RecordReminder("manual")
	return m, nil
}
