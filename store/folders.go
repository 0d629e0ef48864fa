// store/folders.go
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

type FolderStore struct {
	pool *pgxpool.Pool
}

func (s *FolderStore) List(ctx context.Context, filter NameFilter) ([]domain.Folder, error) {
	where, args := filter.where()
	query := "SELECT id, name, created_at, updated_at FROM folders " + where + " ORDER BY name ASC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	folders := []domain.Folder{}
	for rows.Next() {
		var f domain.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (s *FolderStore) Get(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	var f domain.Folder
	err := s.pool.QueryRow(ctx,
		"SELECT id, name, created_at, updated_at FROM folders WHERE id = $1", id,
	).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FolderStore) Create(ctx context.Context, name string) (*domain.Folder, error) {
	now := time.Now().UTC()
	f := &domain.Folder{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO folders (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)",
		f.ID, f.Name, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FolderStore) Update(ctx context.Context, id uuid.UUID, name string) (*domain.Folder, error) {
	var f domain.Folder
	err := s.pool.QueryRow(ctx,
		"UPDATE folders SET name = $1, updated_at = $2 WHERE id = $3 RETURNING id, name, created_at, updated_at",
		name, time.Now().UTC(), id,
	).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete removes the folder and clears the folder reference on every
// note inside it. Notes are orphaned, never deleted. The two mutations
// are issued concurrently and joined; if either fails the error is
// surfaced and the other's effect is left in place.
func (s *FolderStore) Delete(ctx context.Context, id uuid.UUID) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := s.pool.Exec(ctx, "DELETE FROM folders WHERE id = $1", id)
		return err
	})
	g.Go(func() error {
		_, err := s.pool.Exec(ctx, "UPDATE notes SET folder_id = NULL WHERE folder_id = $1", id)
		return err
	})

	return g.Wait()
}
