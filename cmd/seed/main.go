// cmd/seed/main.go
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/thinkful-ei27/peter-noteful-v3/config"
	"github.com/thinkful-ei27/peter-noteful-v3/domain"
	"github.com/thinkful-ei27/peter-noteful-v3/store"
)

// Seeds the development database with sample data. Existing data is
// wiped first.
func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load("noteful.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer st.Close()

	if err := st.Reset(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to reset database")
	}

	folders := map[string]*domain.Folder{}
	for _, name := range []string{"Archive", "Drafts", "Personal", "Work"} {
		f, err := st.Folders.Create(ctx, name)
		if err != nil {
			log.Fatal().Err(err).Str("folder", name).Msg("failed to seed folder")
		}
		folders[name] = f
	}

	tags := map[string]*domain.Tag{}
	for _, name := range []string{"breed", "domestic", "feral", "hybrid"} {
		t, err := st.Tags.Create(ctx, name)
		if err != nil {
			log.Fatal().Err(err).Str("tag", name).Msg("failed to seed tag")
		}
		tags[name] = t
	}

	notes := []struct {
		title   string
		content string
		folder  string
		tags    []string
	}{
		{
			title:   "5 life lessons learned from cats",
			content: "Posuere sollicitudin aliquam ultrices sagittis orci a scelerisque purus semper.",
			folder:  "Personal",
			tags:    []string{"domestic"},
		},
		{
			title:   "What the government doesn't want you to know about cats",
			content: "Lobortis elementum nibh tellus molestie nunc non blandit massa enim.",
			folder:  "Work",
			tags:    []string{"domestic", "feral"},
		},
		{
			title:   "The most boring article about cats you'll ever read",
			content: "Sagittis id consectetur purus ut faucibus pulvinar elementum integer enim.",
			folder:  "Drafts",
		},
		{
			title:   "7 things Lady Gaga has in common with cats",
			content: "Eros donec ac odio tempor orci dapibus ultrices in iaculis.",
			tags:    []string{"breed", "hybrid"},
		},
		{
			title:   "10 ways cats can help you live to 100",
			content: "Sociis natoque penatibus et magnis dis parturient montes nascetur.",
			folder:  "Archive",
			tags:    []string{"breed"},
		},
	}

	for _, n := range notes {
		data := store.NoteData{Title: n.title, Content: n.content}
		if n.folder != "" {
			id := folders[n.folder].ID
			data.FolderID = &id
		}
		for _, name := range n.tags {
			data.TagIDs = append(data.TagIDs, tags[name].ID)
		}
		if _, err := st.Notes.Create(ctx, data); err != nil {
			log.Fatal().Err(err).Str("note", n.title).Msg("failed to seed note")
		}
	}

	log.Info().
		Int("folders", len(folders)).
		Int("tags", len(tags)).
		Int("notes", len(notes)).
		Msg("database seeded")
}
