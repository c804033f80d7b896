package sqlite

import (
	"context"

	"github.com/sumansi/storefront/internal/domain"
)

type announcementsRepo struct {
	db dbtx
}

func (r *announcementsRepo) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, text, active, created_at FROM announcements ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.Text, &a.Active, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

func (r *announcementsRepo) CreateAnnouncement(ctx context.Context, a domain.Announcement) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO announcements (id, text, active, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Text, a.Active, a.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *announcementsRepo) UpdateAnnouncement(ctx context.Context, a domain.Announcement) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE announcements SET text = ?, active = ? WHERE id = ?`,
		a.Text, a.Active, a.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *announcementsRepo) DeleteAnnouncement(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
