package picbin

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog records the original length and checksum of every encoded image,
// keyed by the SHA-1 of the image file.
type Catalog struct {
	db *sql.DB
}

// Entry is a single catalogued image.
type Entry struct {
	SHA1   string
	Name   string
	Length uint64
	CRC    uint32
}

// NewCatalog opens the catalog stored in file, creating it if necessary.
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, name TEXT NOT NULL, length INTEGER NOT NULL, crc INTEGER NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the catalog.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record stores the details of an encoded image, replacing any existing
// entry for the same image.
func (c *Catalog) Record(sha1, name string, length uint64, crc uint32) error {
	// SQLite integers are signed
	if _, err := c.db.Exec("INSERT OR REPLACE INTO image (sha1, name, length, crc) VALUES (?, ?, ?, ?)", sha1, name, int64(length), int64(crc)); err != nil {
		return err
	}
	return nil
}

// Find returns the entry for the image with the given SHA-1, or nil if there
// isn't one.
func (c *Catalog) Find(sha1 string) (*Entry, error) {
	var name string
	var length, crc int64
	switch err := c.db.QueryRow("SELECT name, length, crc FROM image WHERE sha1 = ?", sha1).Scan(&name, &length, &crc); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &Entry{
			SHA1:   sha1,
			Name:   name,
			Length: uint64(length),
			CRC:    uint32(crc),
		}, nil
	default:
		return nil, err
	}
}
