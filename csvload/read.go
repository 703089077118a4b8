// SPDX-License-Identifier: MIT
// Package: rmmcurve/csvload
//
// read.go — one-shot column readers.
//
// Format:
//   • First record is the header; column names are matched after trimming.
//   • Every following record must have the header's field count.
//   • Cells are trimmed, then parsed with cast.ToFloat64E; NaN/±Inf rejected.

package csvload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"
)

const (
	methodReadColumn      = "ReadColumn"
	methodReadFirstColumn = "ReadFirstColumn"
)

// ReadColumn returns the values of the named column, in file order.
func ReadColumn(path, column string) ([]float64, error) {
	return readColumn(methodReadColumn, path, func(header []string) (int, error) {
		want := strings.TrimSpace(column)
		for i, name := range header {
			if strings.TrimSpace(name) == want {
				return i, nil
			}
		}

		return 0, fmt.Errorf("%q in header %v: %w", column, header, ErrColumnNotFound)
	})
}

// ReadFirstColumn returns the values of the first column regardless of its
// header name. Intended for single-column price files.
func ReadFirstColumn(path string) ([]float64, error) {
	return readColumn(methodReadFirstColumn, path, func([]string) (int, error) {
		return 0, nil
	})
}

func readColumn(method, path string, pick func(header []string) (int, error)) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer f.Close()

	values, err := parseColumn(f, pick)
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", method, path, err)
	}

	return values, nil
}

func parseColumn(r io.Reader, pick func(header []string) (int, error)) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformed)
	}

	idx, err := pick(header)
	if err != nil {
		return nil, err
	}

	var values []float64
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrMalformed)
		}

		cell := strings.TrimSpace(record[idx])
		v, err := cast.ToFloat64E(cell)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("row %d column %d (%q): %w", row, idx+1, cell, ErrBadCell)
		}
		values = append(values, v)
	}

	return values, nil
}
