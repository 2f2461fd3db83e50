package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/n0roo/workshop/internal/config"
	"github.com/n0roo/workshop/internal/db"
	"github.com/n0roo/workshop/internal/idea"
)

const fixture = `ideas:
  - id: "10"
    image_url: https://example.com/a.jpg
    description: Верстак из бука
    status: processed
    tags:
      productType: [Верстак]
      finish: [Масло, Воск]
  - id: "11"
    description: Полка для стамесок
    status: inbox
`

func ideaIDs(ideas []idea.Idea) []string {
	out := make([]string, 0, len(ideas))
	for _, it := range ideas {
		out = append(out, it.ID)
	}
	return out
}

func TestStaticLoad(t *testing.T) {
	s := NewStatic()

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(ideaIDs(got), []string{"1", "2", "3"}) {
		t.Errorf("ids = %v", ideaIDs(got))
	}

	got[0].Tags[idea.TagMaterial][0] = "Сосна"
	again, _ := s.Load(context.Background())
	if again[0].Tags[idea.TagMaterial][0] != "Дуб" {
		t.Error("Load must return copies")
	}
}

func TestStaticRejectsInvalid(t *testing.T) {
	s := &Static{Ideas: []idea.Idea{{ID: "1", Status: "archived"}}}

	if _, err := s.Load(context.Background()); !errors.Is(err, idea.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestStaticCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewStatic().Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	got, err := ParseYAML([]byte(fixture))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if !slices.Equal(ideaIDs(got), []string{"10", "11"}) {
		t.Fatalf("ids = %v", ideaIDs(got))
	}

	if got[0].ImageURL != "https://example.com/a.jpg" {
		t.Errorf("image url = %q", got[0].ImageURL)
	}
	finish, ok := got[0].Tags.Get("finish")
	if !ok || !slices.Equal(finish, []string{"Масло", "Воск"}) {
		t.Errorf("finish tags = %v", finish)
	}
	if _, ok := got[1].Tags.Get(idea.TagProductType); ok {
		t.Error("idea without tags should report no productType")
	}
}

func TestParseYAMLRejectsDuplicates(t *testing.T) {
	doc := "ideas:\n  - {id: a, status: inbox}\n  - {id: a, status: processed}\n"
	if _, err := ParseYAML([]byte(doc)); !errors.Is(err, idea.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestYAMLRoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideas.yaml")
	data, err := MarshalYAML(idea.Seed())
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewYAMLFile(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := idea.Seed()
	if len(got) != len(want) || got[1].Tags[idea.TagTechnique][1] != "Mortise & Tenon" {
		t.Errorf("unexpected ideas: %+v", got)
	}
}

func TestYAMLMissingFile(t *testing.T) {
	_, err := NewYAMLFile(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "ideas.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestImportAndLoadSQL(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	if err := Import(ctx, database, idea.Seed()); err != nil {
		t.Fatalf("Import: %v", err)
	}

	got, err := NewSQL(database).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(ideaIDs(got), []string{"1", "2", "3"}) {
		t.Fatalf("ids = %v", ideaIDs(got))
	}

	seed := idea.Seed()
	for i := range seed {
		if got[i].Description != seed[i].Description || got[i].Status != seed[i].Status {
			t.Errorf("idea %s differs: %+v", seed[i].ID, got[i])
		}
		for cat, values := range seed[i].Tags {
			if !slices.Equal(got[i].Tags[cat], values) {
				t.Errorf("idea %s tags[%s] = %v, want %v", seed[i].ID, cat, got[i].Tags[cat], values)
			}
		}
	}
}

func TestImportPreservesOrder(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	ideas := []idea.Idea{
		{ID: "z", Status: idea.StatusInbox},
		{ID: "a", Status: idea.StatusProcessed},
		{ID: "m", Status: idea.StatusInbox},
	}
	if err := Import(ctx, database, ideas); err != nil {
		t.Fatalf("Import: %v", err)
	}

	got, err := NewSQL(database).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(ideaIDs(got), []string{"z", "a", "m"}) {
		t.Errorf("ids = %v, want source order", ideaIDs(got))
	}
}

func TestImportReplaces(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	if err := Import(ctx, database, idea.Seed()); err != nil {
		t.Fatal(err)
	}
	if err := Import(ctx, database, []idea.Idea{{ID: "only", Status: idea.StatusInbox}}); err != nil {
		t.Fatal(err)
	}

	got, err := NewSQL(database).Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ideaIDs(got), []string{"only"}) {
		t.Errorf("ids = %v", ideaIDs(got))
	}
}

func TestImportRejectsInvalid(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	if err := Import(ctx, database, idea.Seed()); err != nil {
		t.Fatal(err)
	}
	bad := []idea.Idea{{ID: "x", Status: "done"}}
	if err := Import(ctx, database, bad); !errors.Is(err, idea.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}

	got, _ := NewSQL(database).Load(ctx)
	if len(got) != 3 {
		t.Errorf("invalid import must not touch existing data, got %v", ideaIDs(got))
	}
}

func TestNewFromConfig(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	cfg := config.Default()
	src, closeFn, err := New(cfg, root, config.DefaultDBPath(root))
	if err != nil {
		t.Fatalf("New static: %v", err)
	}
	if _, ok := src.(*Static); !ok {
		t.Errorf("expected *Static, got %T", src)
	}
	closeFn()

	if err := os.WriteFile(filepath.Join(root, "ideas.yaml"), []byte(fixture), 0644); err != nil {
		t.Fatal(err)
	}
	cfg.Source = config.SourceConfig{Type: config.SourceYAML, Path: "ideas.yaml"}
	src, closeFn, err = New(cfg, root, "")
	if err != nil {
		t.Fatalf("New yaml: %v", err)
	}
	got, err := src.Load(ctx)
	closeFn()
	if err != nil || len(got) != 2 {
		t.Fatalf("yaml load = %v, %v", ideaIDs(got), err)
	}

	cfg.Source = config.SourceConfig{Type: config.SourceSQLite}
	src, closeFn, err = New(cfg, root, config.DefaultDBPath(root))
	if err != nil {
		t.Fatalf("New sqlite: %v", err)
	}
	defer closeFn()
	got, err = src.Load(ctx)
	if err != nil || len(got) != 0 {
		t.Errorf("fresh sqlite load = %v, %v", ideaIDs(got), err)
	}

	cfg.Source = config.SourceConfig{Type: "postgres"}
	if _, _, err := New(cfg, root, ""); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestDBType(t *testing.T) {
	tests := []struct {
		in   config.SourceType
		want db.DBType
	}{
		{config.SourceSQLite, db.TypeSQLite},
		{config.SourceDuckDB, db.TypeDuckDB},
		{config.SourceStatic, ""},
		{config.SourceYAML, ""},
	}
	for _, tt := range tests {
		if got := DBType(tt.in); got != tt.want {
			t.Errorf("DBType(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
