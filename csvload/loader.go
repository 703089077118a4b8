// SPDX-License-Identifier: MIT
// Package: rmmcurve/csvload
//
// loader.go — memoising front for the column readers.

package csvload

import (
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
)

// firstColumnKey marks entries loaded with ReadFirstColumn.
const firstColumnKey = "\x00first"

// Loader memoises loaded columns per (path, column). Entries never expire;
// a Loader lives for one rendering run. Safe for concurrent use.
type Loader struct {
	logger l.Wrapper
	memo   *cache.Cache
}

// NewLoader returns an empty Loader. A nil logger discards output.
func NewLoader(logger l.Wrapper) *Loader {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Loader{
		logger: logger.WithFields(l.StringField(l.ClsKey, "csvLoader")),
		memo:   cache.New(cache.NoExpiration, 0),
	}
}

// Column returns the named column of path, parsing the file at most once.
// The returned slice is a copy and may be modified.
func (loader *Loader) Column(path, column string) ([]float64, error) {
	return loader.load(path, column, func() ([]float64, error) {
		return ReadColumn(path, column)
	})
}

// FirstColumn returns the first column of path, parsing the file at most once.
func (loader *Loader) FirstColumn(path string) ([]float64, error) {
	return loader.load(path, firstColumnKey, func() ([]float64, error) {
		return ReadFirstColumn(path)
	})
}

// Forget drops every memoised column.
func (loader *Loader) Forget() {
	loader.memo.Flush()
}

func (loader *Loader) load(path, column string, read func() ([]float64, error)) ([]float64, error) {
	key := path + "\x00" + column
	logger := loader.logger.WithFields(l.StringField("path", path), l.StringField("column", column))

	if v, ok := loader.memo.Get(key); ok {
		logger.Debug("csv column cache hit")

		values, _ := v.([]float64)

		return append([]float64(nil), values...), nil
	}

	values, err := read()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("load csv column failed")

		return nil, err
	}

	loader.memo.Set(key, values, cache.DefaultExpiration)
	logger.WithFields(l.IntField("rows", len(values))).Info("csv column loaded")

	return append([]float64(nil), values...), nil
}
