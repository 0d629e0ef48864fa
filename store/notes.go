// store/notes.go
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thinkful-ei27/peter-noteful-v3/domain"
)

type NoteStore struct {
	pool *pgxpool.Pool
}

// NoteData is the validated write model for a note. TagIDs and FolderID
// are weak references: they are stored as given, existence is not
// checked.
type NoteData struct {
	Title    string
	Content  string
	FolderID *uuid.UUID
	TagIDs   []uuid.UUID
}

func (s *NoteStore) List(ctx context.Context, filter NoteFilter) ([]domain.Note, error) {
	where, args := filter.where()
	query := "SELECT id, title, content, folder_id, created_at, updated_at FROM notes " +
		where + " ORDER BY updated_at DESC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.FolderID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.populateTags(ctx, notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteStore) Get(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	var n domain.Note
	err := s.pool.QueryRow(ctx,
		"SELECT id, title, content, folder_id, created_at, updated_at FROM notes WHERE id = $1", id,
	).Scan(&n.ID, &n.Title, &n.Content, &n.FolderID, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	notes := []domain.Note{n}
	if err := s.populateTags(ctx, notes); err != nil {
		return nil, err
	}
	return &notes[0], nil
}

func (s *NoteStore) Create(ctx context.Context, data NoteData) (*domain.Note, error) {
	now := time.Now().UTC()
	id := uuid.New()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		"INSERT INTO notes (id, title, content, folder_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)",
		id, data.Title, data.Content, data.FolderID, now, now)
	if err != nil {
		return nil, err
	}
	if err := insertNoteTags(ctx, tx, id, data.TagIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *NoteStore) Update(ctx context.Context, id uuid.UUID, data NoteData) (*domain.Note, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		"UPDATE notes SET title = $1, content = $2, folder_id = $3, updated_at = $4 WHERE id = $5",
		data.Title, data.Content, data.FolderID, time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	// Replace the tag set wholesale; a PUT carries the full set.
	_, err = tx.Exec(ctx, "DELETE FROM note_tags WHERE note_id = $1", id)
	if err != nil {
		return nil, err
	}
	if err := insertNoteTags(ctx, tx, id, data.TagIDs); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *NoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	// note_tags rows go with the note. Idempotent: deleting an absent
	// note is not an error.
	_, err := s.pool.Exec(ctx, "DELETE FROM notes WHERE id = $1", id)
	return err
}

func insertNoteTags(ctx context.Context, tx pgx.Tx, noteID uuid.UUID, tagIDs []uuid.UUID) error {
	for _, tagID := range dedupe(tagIDs) {
		_, err := tx.Exec(ctx,
			"INSERT INTO note_tags (note_id, tag_id) VALUES ($1, $2)", noteID, tagID)
		if err != nil {
			return err
		}
	}
	return nil
}

// populateTags resolves each note's tag references into full tag
// records, sorted by name for stable output.
func (s *NoteStore) populateTags(ctx context.Context, notes []domain.Note) error {
	ids := make([]uuid.UUID, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}

	byNote := map[uuid.UUID][]domain.Tag{}
	if len(ids) > 0 {
		rows, err := s.pool.Query(ctx,
			`SELECT nt.note_id, t.id, t.name, t.created_at, t.updated_at
			 FROM note_tags nt
			 JOIN tags t ON t.id = nt.tag_id
			 WHERE nt.note_id = ANY($1)
			 ORDER BY t.name ASC`, ids)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var noteID uuid.UUID
			var t domain.Tag
			if err := rows.Scan(&noteID, &t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
				return err
			}
			byNote[noteID] = append(byNote[noteID], t)
		}
		if err := rows.Err(); err != nil {
			return err
		}
	}

	for i := range notes {
		tags := byNote[notes[i].ID]
		if tags == nil {
			tags = []domain.Tag{}
		}
		notes[i].Tags = tags
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
