// store/query.go
package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NameFilter narrows a folder or tag listing to names containing the
// search term, case-insensitively. Empty means unfiltered.
type NameFilter struct {
	SearchTerm string
}

func (f NameFilter) where() (string, []any) {
	if f.SearchTerm == "" {
		return "", nil
	}
	return "WHERE name ILIKE $1", []any{likePattern(f.SearchTerm)}
}

// NoteFilter composes up to three independent constraints, ANDed
// together: a case-insensitive substring match on title or content, an
// exact folder match, and tag-set containment. All optional; no
// constraints means every note matches.
type NoteFilter struct {
	SearchTerm string
	FolderID   *uuid.UUID
	TagID      *uuid.UUID
}

func (f NoteFilter) where() (string, []any) {
	var conds []string
	var args []any

	if f.SearchTerm != "" {
		args = append(args, likePattern(f.SearchTerm))
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", len(args), len(args)))
	}
	if f.FolderID != nil {
		args = append(args, *f.FolderID)
		conds = append(conds, fmt.Sprintf("folder_id = $%d", len(args)))
	}
	if f.TagID != nil {
		args = append(args, *f.TagID)
		conds = append(conds, fmt.Sprintf("EXISTS (SELECT 1 FROM note_tags WHERE note_id = notes.id AND tag_id = $%d)", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// likePattern turns a search term into an ILIKE pattern that matches
// the term as a literal substring. LIKE metacharacters in the term are
// escaped so user input cannot widen the match.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
