// http/api_test.go
package http

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkful-ei27/peter-noteful-v3/store"
)

// End-to-end tests against a real database. Set TEST_DATABASE_URL to
// run them; without it they skip.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	st, err := store.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(st.Close)
	require.NoError(t, st.Reset(context.Background()))

	return NewServer(st, zerolog.Nop(), "test").App()
}

func createEntity(t *testing.T, app *fiber.App, path, body string) map[string]any {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, path, body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var entity map[string]any
	decodeBody(t, resp, &entity)
	return entity
}

func getJSON(t *testing.T, app *fiber.App, path string) map[string]any {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodGet, path, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entity map[string]any
	decodeBody(t, resp, &entity)
	return entity
}

func listJSON(t *testing.T, app *fiber.App, path string) []map[string]any {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodGet, path, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entities []map[string]any
	decodeBody(t, resp, &entities)
	return entities
}

func TestFolderRoundTrip(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/folders", `{"name": "Work"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var folder map[string]any
	decodeBody(t, resp, &folder)
	assert.Equal(t, "Work", folder["name"])
	assert.NotEmpty(t, folder["id"])
	assert.NotEmpty(t, folder["createdAt"])
	assert.NotEmpty(t, folder["updatedAt"])

	location := resp.Header.Get("Location")
	assert.Equal(t, fmt.Sprintf("/api/folders/%v", folder["id"]), location)

	fetched := getJSON(t, app, location)
	assert.Equal(t, folder["id"], fetched["id"])
	assert.Equal(t, "Work", fetched["name"])
}

func TestFolderDuplicateName(t *testing.T) {
	app := newTestApp(t)

	createEntity(t, app, "/api/folders", `{"name": "Work"}`)

	resp := doRequest(t, app, fiber.MethodPost, "/api/folders", `{"name": "Work"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The folder name already exists", message(t, resp))

	// no second record appeared
	assert.Len(t, listJSON(t, app, "/api/folders"), 1)
}

func TestFolderRenameToExistingName(t *testing.T) {
	app := newTestApp(t)

	createEntity(t, app, "/api/folders", `{"name": "Work"}`)
	drafts := createEntity(t, app, "/api/folders", `{"name": "Drafts"}`)

	resp := doRequest(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/folders/%v", drafts["id"]), `{"name": "Work"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "The folder name already exists", message(t, resp))
}

func TestFolderListSortedAndSearched(t *testing.T) {
	app := newTestApp(t)

	for _, name := range []string{"Work", "Archive", "Drafts"} {
		createEntity(t, app, "/api/folders", fmt.Sprintf(`{"name": %q}`, name))
	}

	folders := listJSON(t, app, "/api/folders")
	require.Len(t, folders, 3)
	assert.Equal(t, "Archive", folders[0]["name"])
	assert.Equal(t, "Drafts", folders[1]["name"])
	assert.Equal(t, "Work", folders[2]["name"])

	matches := listJSON(t, app, "/api/folders?searchTerm=arch")
	require.Len(t, matches, 1)
	assert.Equal(t, "Archive", matches[0]["name"])
}

func TestFolderGetMissing(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodGet,
		"/api/folders/f47ac10b-58cc-4372-a567-0e02b2c3d479", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found", message(t, resp))
}

func TestFolderDeleteIsIdempotent(t *testing.T) {
	app := newTestApp(t)

	folder := createEntity(t, app, "/api/folders", `{"name": "Work"}`)
	path := fmt.Sprintf("/api/folders/%v", folder["id"])

	resp := doRequest(t, app, fiber.MethodDelete, path, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodDelete, path, "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDeleteFolderOrphansNotes(t *testing.T) {
	app := newTestApp(t)

	folder := createEntity(t, app, "/api/folders", `{"name": "Work"}`)
	note := createEntity(t, app, "/api/notes",
		fmt.Sprintf(`{"title": "standup", "folderId": %q}`, folder["id"]))
	assert.Equal(t, folder["id"], note["folderId"])

	resp := doRequest(t, app, fiber.MethodDelete,
		fmt.Sprintf("/api/folders/%v", folder["id"]), "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// the note survives, with the folderId key gone entirely
	fetched := getJSON(t, app, fmt.Sprintf("/api/notes/%v", note["id"]))
	assert.Equal(t, "standup", fetched["title"])
	_, present := fetched["folderId"]
	assert.False(t, present, "folderId should be absent, not null")
}

func TestDeleteTagUntagsNotes(t *testing.T) {
	app := newTestApp(t)

	feral := createEntity(t, app, "/api/tags", `{"name": "feral"}`)
	breed := createEntity(t, app, "/api/tags", `{"name": "breed"}`)
	note := createEntity(t, app, "/api/notes",
		fmt.Sprintf(`{"title": "cats", "tags": [%q, %q]}`, feral["id"], breed["id"]))

	resp := doRequest(t, app, fiber.MethodDelete,
		fmt.Sprintf("/api/tags/%v", feral["id"]), "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	fetched := getJSON(t, app, fmt.Sprintf("/api/notes/%v", note["id"]))
	tags, ok := fetched["tags"].([]any)
	require.True(t, ok)
	require.Len(t, tags, 1)
	remaining := tags[0].(map[string]any)
	assert.Equal(t, breed["id"], remaining["id"])
	assert.Equal(t, "breed", remaining["name"])
}

func TestTagDuplicateName(t *testing.T) {
	app := newTestApp(t)

	createEntity(t, app, "/api/tags", `{"name": "hybrid"}`)

	resp := doRequest(t, app, fiber.MethodPost, "/api/tags", `{"name": "hybrid"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Tag name already exists", message(t, resp))
}

func TestTagUpdateMissing(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPut,
		"/api/tags/f47ac10b-58cc-4372-a567-0e02b2c3d479", `{"name": "feral"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNoteSearchCaseInsensitive(t *testing.T) {
	app := newTestApp(t)

	createEntity(t, app, "/api/notes", `{"title": "7 things Lady GAGA has in common with cats"}`)
	createEntity(t, app, "/api/notes", `{"title": "unrelated"}`)

	matches := listJSON(t, app, "/api/notes?searchTerm=gaga")
	require.Len(t, matches, 1)
	assert.Equal(t, "7 things Lady GAGA has in common with cats", matches[0]["title"])
}

func TestNoteSearchMatchesContent(t *testing.T) {
	app := newTestApp(t)

	createEntity(t, app, "/api/notes", `{"title": "plain", "content": "Posuere SOLLICITUDIN aliquam"}`)

	matches := listJSON(t, app, "/api/notes?searchTerm=sollicitudin")
	assert.Len(t, matches, 1)
}

func TestNoteSearchNoMatchesIsEmptyArray(t *testing.T) {
	app := newTestApp(t)

	createEntity(t, app, "/api/notes", `{"title": "something"}`)

	resp := doRequest(t, app, fiber.MethodGet, "/api/notes?searchTerm=zzz", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var notes []map[string]any
	decodeBody(t, resp, &notes)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteFilterIntersection(t *testing.T) {
	app := newTestApp(t)

	work := createEntity(t, app, "/api/folders", `{"name": "Work"}`)
	archive := createEntity(t, app, "/api/folders", `{"name": "Archive"}`)
	tag := createEntity(t, app, "/api/tags", `{"name": "domestic"}`)

	both := createEntity(t, app, "/api/notes",
		fmt.Sprintf(`{"title": "both", "folderId": %q, "tags": [%q]}`, work["id"], tag["id"]))
	createEntity(t, app, "/api/notes",
		fmt.Sprintf(`{"title": "folder only", "folderId": %q}`, work["id"]))
	createEntity(t, app, "/api/notes",
		fmt.Sprintf(`{"title": "tag only", "folderId": %q, "tags": [%q]}`, archive["id"], tag["id"]))

	matches := listJSON(t, app,
		fmt.Sprintf("/api/notes?folderId=%v&tagId=%v", work["id"], tag["id"]))
	require.Len(t, matches, 1)
	assert.Equal(t, both["id"], matches[0]["id"])
}

func TestNotesSortedByUpdatedAtDesc(t *testing.T) {
	app := newTestApp(t)

	first := createEntity(t, app, "/api/notes", `{"title": "first"}`)
	createEntity(t, app, "/api/notes", `{"title": "second"}`)

	// touching the oldest note moves it to the front
	resp := doRequest(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/notes/%v", first["id"]), `{"title": "first, touched"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	notes := listJSON(t, app, "/api/notes")
	require.Len(t, notes, 2)
	assert.Equal(t, "first, touched", notes[0]["title"])
	assert.Equal(t, "second", notes[1]["title"])
}

func TestNoteRoundTripWithPopulatedTags(t *testing.T) {
	app := newTestApp(t)

	tag := createEntity(t, app, "/api/tags", `{"name": "breed"}`)
	note := createEntity(t, app, "/api/notes",
		fmt.Sprintf(`{"title": "cats", "content": "all about cats", "tags": [%q]}`, tag["id"]))

	fetched := getJSON(t, app, fmt.Sprintf("/api/notes/%v", note["id"]))
	assert.Equal(t, "cats", fetched["title"])
	assert.Equal(t, "all about cats", fetched["content"])

	tags, ok := fetched["tags"].([]any)
	require.True(t, ok)
	require.Len(t, tags, 1)
	assert.Equal(t, "breed", tags[0].(map[string]any)["name"])
}

func TestNoteUpdateClearsFolder(t *testing.T) {
	app := newTestApp(t)

	folder := createEntity(t, app, "/api/folders", `{"name": "Work"}`)
	note := createEntity(t, app, "/api/notes",
		fmt.Sprintf(`{"title": "standup", "folderId": %q}`, folder["id"]))

	resp := doRequest(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/notes/%v", note["id"]), `{"title": "standup", "folderId": ""}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated map[string]any
	decodeBody(t, resp, &updated)
	_, present := updated["folderId"]
	assert.False(t, present)
}

func TestNoteUpdateReplacesTagSet(t *testing.T) {
	app := newTestApp(t)

	old := createEntity(t, app, "/api/tags", `{"name": "old"}`)
	fresh := createEntity(t, app, "/api/tags", `{"name": "fresh"}`)
	note := createEntity(t, app, "/api/notes",
		fmt.Sprintf(`{"title": "n", "tags": [%q]}`, old["id"]))

	resp := doRequest(t, app, fiber.MethodPut,
		fmt.Sprintf("/api/notes/%v", note["id"]),
		fmt.Sprintf(`{"title": "n", "tags": [%q]}`, fresh["id"]))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated map[string]any
	decodeBody(t, resp, &updated)
	tags := updated["tags"].([]any)
	require.Len(t, tags, 1)
	assert.Equal(t, "fresh", tags[0].(map[string]any)["name"])
}

func TestNoteUpdateMissing(t *testing.T) {
	app := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPut,
		"/api/notes/f47ac10b-58cc-4372-a567-0e02b2c3d479", `{"title": "ghost"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found", message(t, resp))
}
