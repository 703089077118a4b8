// SPDX-License-Identifier: MIT
// Package: rmmcurve/csvload
//
// errors.go — sentinel errors for CSV loading.
//
// File-system failures are not re-wrapped into sentinels: the *fs.PathError
// from os.Open is returned with %w, so errors.Is(err, fs.ErrNotExist) holds.

package csvload

import (
	"errors"
)

// ErrNoHeader indicates an empty file (no header row).
var ErrNoHeader = errors.New("csvload: missing header row")

// ErrColumnNotFound indicates the requested column is not in the header.
var ErrColumnNotFound = errors.New("csvload: column not found")

// ErrBadCell indicates a cell that is not a finite number.
var ErrBadCell = errors.New("csvload: cell is not a finite number")

// ErrMalformed indicates a syntactically broken CSV record.
var ErrMalformed = errors.New("csvload: malformed csv")
