// Package store provides the flat-file record store: append-only rows of a
// delimited text file with a header row, one file per entity type.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"fjacquet/expense-tracker/internal/fileutils"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/trackererror"

	"github.com/gocarina/gocsv"
)

// Store persists rows of type T, whose csv struct tags define the header.
type Store[T any] struct {
	path      string
	delimiter rune
	logger    logging.Logger
}

// New returns a store backed by the file at path. The file is not touched
// until the first Append or Load.
func New[T any](path string, delimiter rune, logger logging.Logger) *Store[T] {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("warn", "text")
	}
	return &Store[T]{
		path:      path,
		delimiter: delimiter,
		logger:    logger.WithField(logging.FieldFile, path),
	}
}

// Path returns the file backing the store.
func (s *Store[T]) Path() string {
	return s.path
}

// Exists reports whether the backing file is present.
func (s *Store[T]) Exists() bool {
	return fileutils.FileExists(s.path)
}

// Append writes one row, preceded by the header when the file is absent or empty.
func (s *Store[T]) Append(record T) error {
	empty, err := fileutils.IsEmpty(s.path)
	if err != nil {
		return s.fail("append", err)
	}

	file, err := fileutils.OpenAppend(s.path)
	if err != nil {
		return s.fail("append", err)
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = s.delimiter
	out := gocsv.NewSafeCSVWriter(csvWriter)

	rows := []T{record}
	if empty {
		err = gocsv.MarshalCSV(rows, out)
	} else {
		err = gocsv.MarshalCSVWithoutHeaders(rows, out)
	}
	if err == nil {
		csvWriter.Flush()
		err = csvWriter.Error()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return s.fail("append", err)
	}

	s.logger.Debug("Appended record", logging.F(logging.FieldOperation, "append"), logging.F("header_written", empty))
	return nil
}

// Load returns every row of the file. An absent or zero-length file yields an
// empty slice and no error.
func (s *Store[T]) Load() ([]T, error) {
	rows := []T{}

	empty, err := fileutils.IsEmpty(s.path)
	if err != nil {
		return rows, s.fail("load", err)
	}
	if empty {
		return rows, nil
	}

	file, err := os.Open(s.path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return rows, s.fail("load", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.logger.WithError(closeErr).Warn("Failed to close file")
		}
	}()

	csvReader := csv.NewReader(file)
	csvReader.Comma = s.delimiter
	csvReader.FieldsPerRecord = -1 // short rows leave the missing cells empty

	if err := gocsv.UnmarshalCSV(csvReader, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []T{}, nil
		}
		return []T{}, s.fail("load", fmt.Errorf("error parsing CSV file: %w", err))
	}

	s.logger.Debug("Loaded records", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// Purge removes the whole file and reports whether it existed.
func (s *Store[T]) Purge() (bool, error) {
	removed, err := fileutils.RemoveIfExists(s.path)
	if err != nil {
		return false, s.fail("purge", err)
	}
	s.logger.Info("Purged store", logging.F("removed", removed))
	return removed, nil
}

func (s *Store[T]) fail(op string, err error) error {
	s.logger.WithError(err).Error("Store operation failed", logging.F(logging.FieldOperation, op))
	return &trackererror.StoreError{Op: op, Path: s.path, Err: err}
}
