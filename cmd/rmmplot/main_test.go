// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), []string{"-list"}, &out, l.NewNopLoggerWrapper())
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "brownian-bridge")
	assert.Contains(t, out.String(), "gbm-prices")
}

func TestRun_PrintConfig(t *testing.T) {
	var out bytes.Buffer
	code := run(context.Background(), []string{"-print-config", "-format", "pdf"}, &out, l.NewNopLoggerWrapper())
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "format: pdf")
}

func TestRun_RendersSelection(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	code := run(context.Background(),
		[]string{"-figure", "pp-and-cc, forced-rebalance", "-out", dir, "-format", "svg"},
		&out, l.NewNopLoggerWrapper())
	require.Equal(t, 0, code)

	for _, name := range []string{"pp-and-cc.svg", "forced-rebalance.svg"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRun_Failures(t *testing.T) {
	var out bytes.Buffer
	logger := l.NewNopLoggerWrapper()

	assert.Equal(t, 2, run(context.Background(), []string{"-bogus"}, &out, logger))
	assert.Equal(t, 1, run(context.Background(), []string{"-config", "does-not-exist.yaml"}, &out, logger))
	assert.Equal(t, 1, run(context.Background(), []string{"-format", "gif"}, &out, logger))
	assert.Equal(t, 1, run(context.Background(), []string{"-figure", "nope", "-out", t.TempDir()}, &out, logger))
}

func TestSplitNames(t *testing.T) {
	assert.Nil(t, splitNames(""))
	assert.Equal(t, []string{"a", "b"}, splitNames(" a, ,b ,"))
}
