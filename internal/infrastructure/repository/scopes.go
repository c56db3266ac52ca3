package repository

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards with '!'. A backslash escape reads
// differently in MySQL and PostgreSQL string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// SearchScope filters by a case-insensitive substring over columns. The
// search text matches literally, so "_" or "%" never act as wildcards.
// LOWER/LIKE keeps the query portable between PostgreSQL and MySQL.
func SearchScope(search string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" || len(columns) == 0 {
			return db
		}

		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ? ESCAPE '!'"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// ActiveScope keeps only rows whose active flag is set
func ActiveScope(activeOnly bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !activeOnly {
			return db
		}
		return db.Where("active = ?", true)
	}
}

// RecentFirst orders append-only tables newest first with id as tie-break
func RecentFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
