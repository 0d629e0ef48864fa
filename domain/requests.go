// domain/requests.go
package domain

// Request bodies are decoded into typed DTOs and validated before any
// storage call. FolderID and Tags carry raw strings so that malformed
// identifiers can be rejected with a 400 instead of a decode error.

type UpsertFolderRequest struct {
	Name string `json:"name"`
}

type UpsertTagRequest struct {
	Name string `json:"name"`
}

type UpsertNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}
