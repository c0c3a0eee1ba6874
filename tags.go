package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SearchTag labels a saved search.
// Tags can be simple (just a key) or key-value pairs.
//
// Examples:
//   - Simple tag: {TagKey: "favorites", TagValue: ""}
//   - Key-value tag: {TagKey: "cohort", TagValue: "pediatric"}
//   - System tag: {TagKey: "system:starred", TagValue: ""}
type SearchTag struct {
	ID        string    `json:"id"`
	SearchID  string    `json:"searchId"`
	TagKey    string    `json:"tagKey"`
	TagValue  string    `json:"tagValue,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ParseTag parses a tag string into key and value
// Examples:
//   - "favorites" -> key="favorites", value=""
//   - "cohort=pediatric" -> key="cohort", value="pediatric"
//   - "system:starred" -> key="system:starred", value=""
func ParseTag(tag string) (key string, value string) {
	parts := strings.SplitN(tag, "=", 2)
	key = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		value = strings.TrimSpace(parts[1])
	}
	return key, value
}

// FormatTag formats a tag back to string representation
func (t *SearchTag) FormatTag() string {
	if t.TagValue == "" {
		return t.TagKey
	}
	return fmt.Sprintf("%s=%s", t.TagKey, t.TagValue)
}

// IsSystemTag checks if a tag is a system reserved tag
func (t *SearchTag) IsSystemTag() bool {
	return strings.HasPrefix(t.TagKey, "system:")
}

// Tag management methods for DuckDBStorage

// AddTag adds a tag to a saved search
func (s *DuckDBStorage) AddTag(searchID, tag string) (*SearchTag, error) {
	key, value := ParseTag(tag)

	// Check if tag already exists
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM search_tags
		WHERE search_id = ? AND tag_key = ? AND COALESCE(tag_value, '') = ?
	`, searchID, key, value).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing tag: %w", err)
	}

	if count > 0 {
		return nil, fmt.Errorf("tag already exists on this search")
	}

	tagObj := &SearchTag{
		ID:        uuid.New().String(),
		SearchID:  searchID,
		TagKey:    key,
		TagValue:  value,
		CreatedAt: time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO search_tags (id, search_id, tag_key, tag_value, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, tagObj.ID, tagObj.SearchID, tagObj.TagKey, nullString(tagObj.TagValue), tagObj.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert tag: %w", err)
	}

	return tagObj, nil
}

// RemoveTag removes a tag from a saved search
func (s *DuckDBStorage) RemoveTag(tagID string) error {
	result, err := s.db.Exec("DELETE FROM search_tags WHERE id = ?", tagID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("tag not found")
	}

	return nil
}

// GetSearchTags gets all tags for a saved search
func (s *DuckDBStorage) GetSearchTags(searchID string) ([]*SearchTag, error) {
	rows, err := s.db.Query(`
		SELECT id, search_id, tag_key, COALESCE(tag_value, ''), created_at
		FROM search_tags
		WHERE search_id = ?
		ORDER BY created_at ASC
	`, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []*SearchTag
	for rows.Next() {
		var tag SearchTag
		if err := rows.Scan(&tag.ID, &tag.SearchID, &tag.TagKey, &tag.TagValue, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, &tag)
	}

	return tags, rows.Err()
}

// GetSearchesByTag finds saved searches that have a specific tag
func (s *DuckDBStorage) GetSearchesByTag(tag string) ([]*SavedSearch, error) {
	key, value := ParseTag(tag)

	query := `
		SELECT DISTINCT ss.id, ss.name, ss.query, ss.created_at
		FROM saved_searches ss
		JOIN search_tags st ON ss.id = st.search_id
		WHERE st.tag_key = ? AND COALESCE(st.tag_value, '') = ?
		ORDER BY ss.created_at DESC
	`

	rows, err := s.db.Query(query, key, value)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches by tag: %w", err)
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

	return searches, rows.Err()
}

// ToggleStarred toggles the system:starred tag on a saved search
func (s *DuckDBStorage) ToggleStarred(searchID string) (bool, error) {
	// Check if starred tag exists
	var tagID string
	err := s.db.QueryRow(`
		SELECT id FROM search_tags
		WHERE search_id = ? AND tag_key = 'system:starred'
	`, searchID).Scan(&tagID)

	if err == sql.ErrNoRows {
		// Not starred, add the star
		_, err := s.AddTag(searchID, "system:starred")
		if err != nil {
			return false, fmt.Errorf("failed to star search: %w", err)
		}
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to check star status: %w", err)
	}

	// Already starred, remove the star
	if err := s.RemoveTag(tagID); err != nil {
		return false, fmt.Errorf("failed to unstar search: %w", err)
	}
	return false, nil
}
