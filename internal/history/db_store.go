package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jmoiron/sqlx"
)

const upsertDefinitionQuery = `INSERT INTO definitions (word, meaning) VALUES (?, ?)
	ON DUPLICATE KEY UPDATE meaning = VALUES(meaning)`

// DBStore implements Store on MySQL using the settings and definitions tables.
type DBStore struct {
	db *sqlx.DB
}

type definitionRow struct {
	Word    string `db:"word"`
	Meaning string `db:"meaning"`
}

func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Setting(ctx context.Context) (Setting, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE name = ?", SettingKey)
	if errors.Is(err, sql.ErrNoRows) {
		return Setting{}, false, nil
	}
	if err != nil {
		return Setting{}, false, fmt.Errorf("db.GetContext(settings) > %w", err)
	}

	var setting Setting
	if err := json.Unmarshal(value, &setting); err != nil {
		return Setting{}, false, fmt.Errorf("json.Unmarshal(settings) > %w", err)
	}
	return setting, true, nil
}

func (s *DBStore) SaveSetting(ctx context.Context, setting Setting) error {
	value, err := json.Marshal(setting)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO settings (name, value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE value = VALUES(value)`,
		SettingKey, value)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert settings) > %w", err)
	}
	return nil
}

func (s *DBStore) Definitions(ctx context.Context) (map[string]string, error) {
	var rows []definitionRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT word, meaning FROM definitions ORDER BY word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(definitions) > %w", err)
	}

	definitions := make(map[string]string, len(rows))
	for _, row := range rows {
		definitions[row.Word] = row.Meaning
	}
	return definitions, nil
}

// SaveDefinitions upserts every pair in one transaction, one statement per
// word. Words missing from the mapping are left in place.
func (s *DBStore) SaveDefinitions(ctx context.Context, definitions map[string]string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, word := range slices.Sorted(maps.Keys(definitions)) {
		_, err := tx.ExecContext(ctx, upsertDefinitionQuery, word, definitions[word])
		if err != nil {
			return fmt.Errorf("tx.ExecContext(upsert definitions %s) > %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit > %w", err)
	}
	return nil
}

// SaveDefinition upserts a single pair.
func (s *DBStore) SaveDefinition(ctx context.Context, word, meaning string) error {
	if _, err := s.db.ExecContext(ctx, upsertDefinitionQuery, word, meaning); err != nil {
		return fmt.Errorf("db.ExecContext(upsert definition %s) > %w", word, err)
	}
	return nil
}
