/*
Package picbin converts arbitrary files into images and back again.

Each byte of a file becomes one pixel whose color is given by the palette
package. The pixels are laid out by the canvas package and stored in a
standard image format by the image package. An optional catalog remembers
the original length of each encoded file so that decoding can stop at
exactly the right place and verify the result.
*/
package picbin

import (
	"errors"
	"log"
	"os"
)

var (
	// ErrDestinationExists is returned when the destination already
	// exists and overwriting is not allowed.
	ErrDestinationExists = errors.New("destination exists; you might have forgot --overwrite option")

	// ErrLengthMismatch is returned when fewer bytes are decoded than
	// the catalog says were encoded.
	ErrLengthMismatch = errors.New("decoded length does not match catalog")

	// ErrChecksumMismatch is returned when the decoded bytes do not
	// match the checksum in the catalog.
	ErrChecksumMismatch = errors.New("decoded checksum does not match catalog")
)

type Picbin struct {
	catalog   *Catalog
	logger    *log.Logger
	overwrite bool
}

// New returns a Picbin using the optional catalog. Existing destinations
// are replaced only if overwrite is set.
func New(catalog *Catalog, logger *log.Logger, overwrite bool) *Picbin {
	return &Picbin{
		catalog:   catalog,
		logger:    logger,
		overwrite: overwrite,
	}
}

// CheckDestination returns ErrDestinationExists, wrapped with the path, if
// dst exists and overwrite is not set.
func CheckDestination(dst string, overwrite bool) error {
	if overwrite {
		return nil
	}
	if _, err := os.Stat(dst); err == nil {
		return &os.PathError{Op: "create", Path: dst, Err: ErrDestinationExists}
	} else if !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (p *Picbin) checkDestination(dst string) error {
	return CheckDestination(dst, p.overwrite)
}
