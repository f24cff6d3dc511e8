package repository

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
)

// importBatchSize is the number of rows inserted per transaction during imports
const importBatchSize = 5000

// CheckinRepository handles database operations for raw check-ins
type CheckinRepository struct {
	db *sql.DB
}

// NewCheckinRepository creates a new check-in repository
func NewCheckinRepository(db *sql.DB) *CheckinRepository {
	return &CheckinRepository{db: db}
}

// LoadAll retrieves every raw check-in row in insertion order
func (r *CheckinRepository) LoadAll() ([]models.CheckinRecord, error) {
	rows, err := r.db.Query(`
		SELECT user_id, venue_id, venue_category_id, category_name,
		       latitude, longitude, timezone_offset, utc_time
		FROM checkins ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkins: %w", err)
	}
	defer rows.Close()

	var checkins []models.CheckinRecord
	for rows.Next() {
		var c models.CheckinRecord
		if err := rows.Scan(&c.UserID, &c.VenueID, &c.VenueCategoryID, &c.CategoryName,
			&c.Latitude, &c.Longitude, &c.TimezoneOffset, &c.UTCTime); err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

// Count returns the number of stored raw check-ins
func (r *CheckinRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM checkins").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count checkins: %w", err)
	}
	return total, nil
}

// InsertBatch inserts check-ins inside a single transaction
func (r *CheckinRepository) InsertBatch(checkins []models.CheckinRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO checkins (user_id, venue_id, venue_category_id, category_name,
		                      latitude, longitude, timezone_offset, utc_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range checkins {
		if _, err := stmt.Exec(c.UserID, c.VenueID, c.VenueCategoryID, c.CategoryName,
			c.Latitude, c.Longitude, c.TimezoneOffset, c.UTCTime); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert checkin: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// ImportTSV streams the tab-separated check-in dataset into the database in
// batches. The file has no header and eight positional columns. Lines with a
// wrong column count or unparseable numeric fields are skipped and counted;
// semantically invalid rows are left for the enrichment pipeline to exclude.
func (r *CheckinRepository) ImportTSV(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var imported, skipped int64
	batch := make([]models.CheckinRecord, 0, importBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := r.InsertBatch(batch); err != nil {
			return err
		}
		imported += int64(len(batch))
		batch = batch[:0]
		return nil
	}

	for scanner.Scan() {
		c, ok := parseCheckinLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		batch = append(batch, c)
		if len(batch) >= importBatchSize {
			if err := flush(); err != nil {
				return imported, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return imported, fmt.Errorf("failed to read dataset: %w", err)
	}
	if err := flush(); err != nil {
		return imported, err
	}

	if skipped > 0 {
		log.Printf("Import skipped %d malformed lines", skipped)
	}
	return imported, nil
}

// parseCheckinLine parses one positional tab-separated dataset line
func parseCheckinLine(line string) (models.CheckinRecord, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != 8 {
		return models.CheckinRecord{}, false
	}

	lat, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return models.CheckinRecord{}, false
	}
	lon, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return models.CheckinRecord{}, false
	}
	offset, err := strconv.Atoi(fields[6])
	if err != nil {
		return models.CheckinRecord{}, false
	}

	return models.CheckinRecord{
		UserID:          fields[0],
		VenueID:         fields[1],
		VenueCategoryID: fields[2],
		CategoryName:    fields[3],
		Latitude:        lat,
		Longitude:       lon,
		TimezoneOffset:  offset,
		UTCTime:         fields[7],
	}, true
}
