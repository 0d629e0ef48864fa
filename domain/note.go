// domain/note.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note references its folder and tags by id only. FolderID is omitted
// from the JSON entirely when the note is not in a folder, so a cleared
// reference is distinguishable from an empty one. Tags is populated
// with the full tag records at read time and is never nil.
type Note struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	FolderID  *uuid.UUID `json:"folderId,omitempty"`
	Tags      []Tag      `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Folder struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
