package repository

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
)

// CategoryRepository handles database operations for the category taxonomy
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// LoadAll retrieves the full category taxonomy
func (r *CategoryRepository) LoadAll() ([]models.Category, error) {
	rows, err := r.db.Query("SELECT category_id, category_name, category_label FROM categories")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Label); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ImportCSV loads the taxonomy CSV (header: Category ID, Category Name,
// Category Label) into the database, replacing existing entries by id
func (r *CategoryRepository) ImportCSV(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open taxonomy: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	if _, err := reader.Read(); err != nil { // header
		return 0, fmt.Errorf("failed to read taxonomy header: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO categories (category_id, category_name, category_label)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	var imported int64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to read taxonomy row: %w", err)
		}
		if len(record) < 3 {
			continue
		}
		if _, err := stmt.Exec(record[0], record[1], record[2]); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert category: %w", err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit taxonomy import: %w", err)
	}
	return imported, nil
}
