// Package source supplies the read-only idea collection the catalog browses.
// Every source validates its records before handing them out; a malformed
// record fails the whole load.
package source

import (
	"context"
	"fmt"

	"github.com/n0roo/workshop/internal/config"
	"github.com/n0roo/workshop/internal/db"
	"github.com/n0roo/workshop/internal/idea"
)

// Source loads an ordered idea collection
type Source interface {
	Load(ctx context.Context) ([]idea.Idea, error)
}

// Static serves a fixed collection, the built-in seed by default
type Static struct {
	Ideas []idea.Idea
}

// NewStatic returns a source over the built-in seed
func NewStatic() *Static {
	return &Static{Ideas: idea.Seed()}
}

// Load returns a copy of the collection
func (s *Static) Load(ctx context.Context) ([]idea.Idea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := idea.ValidateAll(s.Ideas); err != nil {
		return nil, err
	}
	out := make([]idea.Idea, len(s.Ideas))
	for i, it := range s.Ideas {
		out[i] = it.Clone()
	}
	return out, nil
}

// DBType maps a database source type to its backend. Other source types
// map to "".
func DBType(t config.SourceType) db.DBType {
	switch t {
	case config.SourceSQLite:
		return db.TypeSQLite
	case config.SourceDuckDB:
		return db.TypeDuckDB
	}
	return ""
}

// New builds the source described by cfg. root resolves relative paths and
// dbPath is used for the database sources when the config has no path. The
// returned close func releases the database, if one was opened.
func New(cfg *config.Config, root, dbPath string) (Source, func() error, error) {
	noop := func() error { return nil }

	path := cfg.ResolvePath(root)
	if path == "" {
		path = dbPath
	}

	switch cfg.Source.Type {
	case config.SourceStatic, "":
		return NewStatic(), noop, nil
	case config.SourceYAML:
		return NewYAMLFile(path), noop, nil
	case config.SourceSQLite, config.SourceDuckDB:
		database, err := db.OpenType(path, DBType(cfg.Source.Type))
		if err != nil {
			return nil, nil, err
		}
		return NewSQL(database), database.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: source.type %q", config.ErrInvalidConfig, cfg.Source.Type)
	}
}
