package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"github.com/orian/studysearch/search"
)

// SavedSearch is a named, persisted study filter query.
type SavedSearch struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Query     string       `json:"query"`
	CreatedAt time.Time    `json:"createdAt"`
	Tags      []*SearchTag `json:"tags,omitempty"`
}

// DuckDBStorage persists saved searches and their tags in a local
// DuckDB file.
type DuckDBStorage struct {
	db     *sql.DB
	parser *search.Parser
}

func NewDuckDBStorage(dbPath string) (*DuckDBStorage, error) {
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	storage := &DuckDBStorage{db: db, parser: search.DefaultParser()}
	if err := storage.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	// Run migrations
	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

func (s *DuckDBStorage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saved_searches (
			id VARCHAR PRIMARY KEY,
			name VARCHAR NOT NULL,
			query TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveSearch persists a named query. The query must parse to at least
// one clause; the canonical serialized form is what gets stored.
func (s *DuckDBStorage) SaveSearch(name, query string) (*SavedSearch, error) {
	clauses := s.parser.Parse(query)
	if len(clauses) == 0 {
		return nil, fmt.Errorf("query %q contains no search clauses", query)
	}

	saved := &SavedSearch{
		ID:        uuid.New().String(),
		Name:      name,
		Query:     search.QueryString(clauses),
		CreatedAt: time.Now(),
	}

	_, err := s.db.Exec(`
		INSERT INTO saved_searches (id, name, query, created_at)
		VALUES (?, ?, ?, ?)
	`, saved.ID, saved.Name, saved.Query, saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert saved search: %w", err)
	}

	return saved, nil
}

// GetSearch retrieves a saved search by ID, tags included.
func (s *DuckDBStorage) GetSearch(id string) (*SavedSearch, bool) {
	var saved SavedSearch
	err := s.db.QueryRow(`
		SELECT id, name, query, created_at
		FROM saved_searches
		WHERE id = ?
	`, id).Scan(&saved.ID, &saved.Name, &saved.Query, &saved.CreatedAt)
	if err != nil {
		return nil, false
	}

	if tags, err := s.GetSearchTags(saved.ID); err == nil {
		saved.Tags = tags
	}

	return &saved, true
}

// GetSearches returns all saved searches ordered by creation time
// (newest first), tags included.
func (s *DuckDBStorage) GetSearches() ([]*SavedSearch, error) {
	rows, err := s.db.Query(`
		SELECT id, name, query, created_at
		FROM saved_searches
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved searches: %w", err)
	}
	defer rows.Close()

	var searches []*SavedSearch
	for rows.Next() {
		var saved SavedSearch
		if err := rows.Scan(&saved.ID, &saved.Name, &saved.Query, &saved.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan saved search: %w", err)
		}
		searches = append(searches, &saved)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, saved := range searches {
		tags, err := s.GetSearchTags(saved.ID)
		if err != nil {
			return nil, err
		}
		saved.Tags = tags
	}

	return searches, nil
}

// DeleteSearch removes a saved search and its tags.
func (s *DuckDBStorage) DeleteSearch(id string) error {
	if _, err := s.db.Exec("DELETE FROM search_tags WHERE search_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete search tags: %w", err)
	}

	result, err := s.db.Exec("DELETE FROM saved_searches WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete saved search: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("saved search not found")
	}

	return nil
}

// Close releases the underlying database handle.
func (s *DuckDBStorage) Close() error {
	return s.db.Close()
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
