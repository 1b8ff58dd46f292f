package favorites

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mxmdgames/surfcast/internal/catalog"
	"github.com/mxmdgames/surfcast/internal/models"
)

// ErrDuplicate is returned when a favorite within ~1km of an existing one
// is added.
var ErrDuplicate = errors.New("favorite already saved for this spot")

// Store handles persistence for user-saved surf spots.
type Store struct {
	dbPath string
}

// NewStore creates a favorites store backed by the sqlite file at dbPath.
func NewStore(dbPath string) *Store {
	return &Store{dbPath: dbPath}
}

func (s *Store) ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS favorites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating favorites table: %w", err)
	}
	return nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := s.ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// List returns the saved favorites in insertion order. When nothing has
// been saved yet it returns the starter spots from the catalog; those are
// not written to the database until the user changes something.
func (s *Store) List() ([]models.FavoriteEntry, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name, latitude, longitude, created_at FROM favorites ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	var entries []models.FavoriteEntry
	for rows.Next() {
		var e models.FavoriteEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Coord.Lat, &e.Coord.Lng, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading favorites: %w", err)
	}

	if len(entries) == 0 {
		return defaultEntries(), nil
	}
	return entries, nil
}

// Add saves a new favorite. Adding a spot within ~1km of an existing
// favorite (starter spots included) returns ErrDuplicate. The first add
// materializes the starter spots too, so the saved list stays defaults
// plus additions.
func (s *Store) Add(name string, coord models.Coordinate) (*models.FavoriteEntry, error) {
	existing, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, e := range existing {
		if e.Coord.SameSpot(coord) {
			return nil, ErrDuplicate
		}
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if unpersisted(existing) {
		if err := materializeEntries(db, existing, ""); err != nil {
			return nil, err
		}
	}

	entry := models.FavoriteEntry{
		Name:      name,
		Coord:     coord,
		CreatedAt: time.Now(),
	}

	res, err := db.Exec(
		"INSERT INTO favorites (name, latitude, longitude, created_at) VALUES (?, ?, ?, ?)",
		entry.Name, entry.Coord.Lat, entry.Coord.Lng, entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("saving favorite: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}
	entry.ID = id

	return &entry, nil
}

// Remove deletes a favorite by name. Removing one of the starter spots
// materializes the remaining starters first so the deletion sticks across
// restarts.
func (s *Store) Remove(name string) error {
	entries, err := s.List()
	if err != nil {
		return err
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if unpersisted(entries) {
		return materializeEntries(db, entries, name)
	}

	if _, err := db.Exec("DELETE FROM favorites WHERE name = ?", name); err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	return nil
}

// unpersisted reports whether the entries are the starter spots, which
// have no row ids yet.
func unpersisted(entries []models.FavoriteEntry) bool {
	return len(entries) > 0 && entries[0].ID == 0
}

// materializeEntries writes starter entries into the table, skipping the
// named one, so the mutation that triggered it survives restarts.
func materializeEntries(db *sql.DB, entries []models.FavoriteEntry, skip string) error {
	for _, e := range entries {
		if e.Name == skip {
			continue
		}
		if _, err := db.Exec(
			"INSERT INTO favorites (name, latitude, longitude, created_at) VALUES (?, ?, ?, ?)",
			e.Name, e.Coord.Lat, e.Coord.Lng, time.Now(),
		); err != nil {
			return fmt.Errorf("materializing starter favorite: %w", err)
		}
	}
	return nil
}

func defaultEntries() []models.FavoriteEntry {
	spots := catalog.DefaultFavorites()
	entries := make([]models.FavoriteEntry, len(spots))
	for i, spot := range spots {
		entries[i] = models.FavoriteEntry{
			Name:  spot.Name,
			Coord: spot.Coord,
		}
	}
	return entries
}
