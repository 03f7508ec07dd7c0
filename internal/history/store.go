package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

const dateLayout = "2006-01-02"

// ErrNotFound is returned when a search id has no row.
var ErrNotFound = errors.New("search not found")

// Record is one saved search, flat the way the table stores it. Dates
// are ISO date strings so records survive round trips through sqlite.
type Record struct {
	ID          int64   `json:"id"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	DepartDate  string  `json:"depart_date"`
	ReturnDate  *string `json:"return_date,omitempty"`
	TripType    string  `json:"trip_type"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	Infants     int     `json:"infants"`
	Cabin       string  `json:"cabin"`
	SearchedAt  string  `json:"searched_at"`
}

// RawSearch converts a stored record back into normalizer input, so a
// history entry can be re-run as a fresh search.
func (r Record) RawSearch() (models.RawSearch, error) {
	depart, err := time.Parse(dateLayout, r.DepartDate)
	if err != nil {
		return models.RawSearch{}, fmt.Errorf("invalid depart date in record %d: %w", r.ID, err)
	}

	var returnDate *time.Time
	if r.ReturnDate != nil && *r.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, *r.ReturnDate)
		if err != nil {
			return models.RawSearch{}, fmt.Errorf("invalid return date in record %d: %w", r.ID, err)
		}
		returnDate = &ret
	}

	return models.RawSearch{
		Origin:      r.Origin,
		Destination: r.Destination,
		DepartDate:  depart,
		ReturnDate:  returnDate,
		TripType:    models.TripType(r.TripType),
		Adults:      r.Adults,
		Children:    r.Children,
		Infants:     r.Infants,
		Cabin:       models.CabinClass(r.Cabin),
	}, nil
}

// RouteStat aggregates how often a route has been searched.
type RouteStat struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	SearchCount  int    `json:"search_count"`
	LastSearched string `json:"last_searched"`
}

// Store persists search history in a local sqlite database.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "flight_searches.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return store, nil
}

func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS search_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			depart_date TEXT NOT NULL,
			return_date TEXT,
			trip_type TEXT NOT NULL,
			adults INTEGER DEFAULT 1,
			children INTEGER DEFAULT 0,
			infants INTEGER DEFAULT 0,
			cabin TEXT DEFAULT 'Economy',
			search_timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_search_timestamp ON search_history(search_timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_route ON search_history(origin, destination);
	`

	_, err := s.db.Exec(query)
	return err
}

// Save inserts a normalized search and returns its row id.
func (s *Store) Save(ctx context.Context, req models.SearchRequest) (int64, error) {
	var returnDate *string
	if req.ReturnDate != nil {
		d := req.ReturnDate.Format(dateLayout)
		returnDate = &d
	}

	query := `
		INSERT INTO search_history
		(origin, destination, depart_date, return_date, trip_type, adults, children, infants, cabin)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		req.Origin,
		req.Destination,
		req.DepartDate.Format(dateLayout),
		returnDate,
		string(req.TripType),
		req.Adults,
		req.Children,
		req.Infants,
		string(req.Cabin),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save search: %w", err)
	}

	return result.LastInsertId()
}

const recordColumns = `id, origin, destination, depart_date, return_date, trip_type, adults, children, infants, cabin, search_timestamp`

// Recent returns the latest searches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT ` + recordColumns + `
		FROM search_history
		ORDER BY search_timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent searches: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// PopularRoutes returns the most frequently searched routes, ordered by
// count and then recency.
func (s *Store) PopularRoutes(ctx context.Context, limit int) ([]RouteStat, error) {
	if limit <= 0 {
		limit = 5
	}

	query := `
		SELECT origin, destination, COUNT(*) AS search_count, MAX(search_timestamp) AS last_searched
		FROM search_history
		GROUP BY origin, destination
		ORDER BY search_count DESC, last_searched DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular routes: %w", err)
	}
	defer rows.Close()

	var stats []RouteStat
	for rows.Next() {
		var st RouteStat
		if err := rows.Scan(&st.Origin, &st.Destination, &st.SearchCount, &st.LastSearched); err != nil {
			return nil, fmt.Errorf("failed to scan route stat: %w", err)
		}
		stats = append(stats, st)
	}

	return stats, rows.Err()
}

// ByID fetches a single search, or ErrNotFound.
func (s *Store) ByID(ctx context.Context, id int64) (Record, error) {
	query := `SELECT ` + recordColumns + ` FROM search_history WHERE id = ?`

	var r Record
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.Origin, &r.Destination, &r.DepartDate, &r.ReturnDate,
		&r.TripType, &r.Adults, &r.Children, &r.Infants, &r.Cabin, &r.SearchedAt,
	)
	if err == sql.ErrNoRows {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to get search %d: %w", id, err)
	}

	return r, nil
}

// Delete removes a search by id and reports whether a row existed.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM search_history WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete search %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ClearAll wipes the history and returns how many rows were removed.
func (s *Store) ClearAll(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM search_history`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	return result.RowsAffected()
}

// Count returns the total number of saved searches.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM search_history`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count searches: %w", err)
	}
	return count, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(
			&r.ID, &r.Origin, &r.Destination, &r.DepartDate, &r.ReturnDate,
			&r.TripType, &r.Adults, &r.Children, &r.Infants, &r.Cabin, &r.SearchedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan search record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
