// store/tags.go
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/thinkful-ei27/peter-noteful-v3/domain"
)

type TagStore struct {
	pool *pgxpool.Pool
}

func (s *TagStore) List(ctx context.Context, filter NameFilter) ([]domain.Tag, error) {
	where, args := filter.where()
	query := "SELECT id, name, created_at, updated_at FROM tags " + where + " ORDER BY name ASC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (s *TagStore) Get(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	var t domain.Tag
	err := s.pool.QueryRow(ctx,
		"SELECT id, name, created_at, updated_at FROM tags WHERE id = $1", id,
	).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TagStore) Create(ctx context.Context, name string) (*domain.Tag, error) {
	now := time.Now().UTC()
	t := &domain.Tag{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO tags (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)",
		t.ID, t.Name, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TagStore) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Tag, error) {
	var t domain.Tag
	err := s.pool.QueryRow(ctx,
		"UPDATE tags SET name = $1, updated_at = $2 WHERE id = $3 RETURNING id, name, created_at, updated_at",
		name, time.Now().UTC(), id,
	).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the tag and pulls it from the tag set of every note
// that carries it, leaving the notes' other tags intact. Same pairing
// contract as FolderStore.Delete.
func (s *TagStore) Delete(ctx context.Context, id uuid.UUID) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := s.pool.Exec(ctx, "DELETE FROM tags WHERE id = $1", id)
		return err
	})
	g.Go(func() error {
		_, err := s.pool.Exec(ctx, "DELETE FROM note_tags WHERE tag_id = $1", id)
		return err
	})

	return g.Wait()
}
