package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
	FindAll(ctx context.Context) ([]*entity.ContactMessage, error)
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func (r *contactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Message,
		msg.CreatedAt,
	).Scan(&msg.ID)

	if err != nil {
		r.log.Error("Failed to create contact message",
			zap.Error(err),
			zap.String("email", msg.Email),
		)
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *contactRepository) FindAll(ctx context.Context) ([]*entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list contact messages", zap.Error(err))
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.ContactMessage
	for rows.Next() {
		var msg entity.ContactMessage
		err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Message,
			&msg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan contact message row", zap.Error(err))
			return nil, fmt.Errorf("scan contact message row: %w", err)
		}
		messages = append(messages, &msg)
	}

	return messages, nil
}
