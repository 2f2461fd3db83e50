package source

import (
	"context"
	"fmt"

	"github.com/n0roo/workshop/internal/db"
	"github.com/n0roo/workshop/internal/idea"
)

// SQL reads ideas from a SQLite or DuckDB database
type SQL struct {
	db db.Database
}

// NewSQL creates a source over database
func NewSQL(database db.Database) *SQL {
	return &SQL{db: database}
}

// Load reads every idea ordered by position, then its tags
func (s *SQL) Load(ctx context.Context) ([]idea.Idea, error) {
	sqlDB := s.db.GetDB()

	rows, err := sqlDB.QueryContext(ctx, `
		SELECT id, image_url, description, status
		FROM ideas
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить идеи: %w", err)
	}

	var ideas []idea.Idea
	index := make(map[string]int)
	for rows.Next() {
		var it idea.Idea
		var status string
		if err := rows.Scan(&it.ID, &it.ImageURL, &it.Description, &status); err != nil {
			rows.Close()
			return nil, fmt.Errorf("не удалось прочитать идею: %w", err)
		}
		it.Status = idea.Status(status)
		index[it.ID] = len(ideas)
		ideas = append(ideas, it)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	tagRows, err := sqlDB.QueryContext(ctx, `
		SELECT idea_id, category, value
		FROM idea_tags
		ORDER BY idea_id, category, position
	`)
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить теги: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var ideaID, category, value string
		if err := tagRows.Scan(&ideaID, &category, &value); err != nil {
			return nil, fmt.Errorf("не удалось прочитать тег: %w", err)
		}
		n, ok := index[ideaID]
		if !ok {
			continue // 고아 태그
		}
		if ideas[n].Tags == nil {
			ideas[n].Tags = idea.Tags{}
		}
		ideas[n].Tags[category] = append(ideas[n].Tags[category], value)
	}
	if err := tagRows.Err(); err != nil {
		return nil, err
	}

	if err := idea.ValidateAll(ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// Import replaces the database contents with ideas in one transaction.
// The collection is validated first; nothing is written if it is invalid.
func Import(ctx context.Context, database db.Database, ideas []idea.Idea) error {
	if err := idea.ValidateAll(ideas); err != nil {
		return err
	}

	tx, err := database.GetDB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM idea_tags`); err != nil {
		return fmt.Errorf("не удалось очистить теги: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ideas`); err != nil {
		return fmt.Errorf("не удалось очистить идеи: %w", err)
	}

	for pos, it := range ideas {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ideas (id, image_url, description, status, position)
			VALUES (?, ?, ?, ?, ?)
		`, it.ID, it.ImageURL, it.Description, string(it.Status), pos)
		if err != nil {
			return fmt.Errorf("не удалось записать идею %s: %w", it.ID, err)
		}

		for category, values := range it.Tags {
			for n, v := range values {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO idea_tags (idea_id, category, position, value)
					VALUES (?, ?, ?, ?)
				`, it.ID, category, n, v)
				if err != nil {
					return fmt.Errorf("не удалось записать тег %s/%s: %w", it.ID, category, err)
				}
			}
		}
	}

	return tx.Commit()
}
