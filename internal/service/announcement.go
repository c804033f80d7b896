package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/store"
	"github.com/sumansi/storefront/pkg/idx"
)

type AnnouncementService struct {
	Store store.Store
}

func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return s.Store.Announcements().ListAnnouncements(ctx)
}

// CreateAnnouncement publishes a new banner. New announcements are active
// unless stated otherwise.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, text string, active bool) (domain.Announcement, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Announcement{}, ErrMissingFields
	}

	a := domain.Announcement{
		ID:        idx.New().String(),
		Text:      text,
		Active:    active,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Announcements().CreateAnnouncement(ctx, a); err != nil {
		return domain.Announcement{}, err
	}
	return a, nil
}

func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id, text string, active bool) (domain.Announcement, error) {
	text = strings.TrimSpace(text)
	if id == "" || text == "" {
		return domain.Announcement{}, ErrMissingFields
	}

	a := domain.Announcement{ID: id, Text: text, Active: active}
	if err := s.Store.Announcements().UpdateAnnouncement(ctx, a); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Announcement{}, ErrNotFound
		}
		return domain.Announcement{}, err
	}
	return a, nil
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.Store.Announcements().DeleteAnnouncement(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
