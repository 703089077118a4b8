// SPDX-License-Identifier: MIT
// Package: rmmcurve/render
//
// save.go — encode a built plot to a file or writer.

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Canvas size of every figure.
const (
	CanvasWidth  = 16 * vg.Inch
	CanvasHeight = 9 * vg.Inch
)

var supportedFormats = map[string]struct{}{
	"png": {},
	"svg": {},
	"pdf": {},
}

// NormalizeFormat lower-cases format, strips a leading dot and checks it.
func NormalizeFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if _, ok := supportedFormats[f]; !ok {
		return "", fmt.Errorf("%q: %w", format, ErrBadFormat)
	}

	return f, nil
}

// Save writes p to dir/name.format, creating dir when needed, and returns
// the written path.
func Save(p *plot.Plot, dir, name, format string) (string, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("render.Save: %w", err)
	}

	path := filepath.Join(dir, name+"."+f)
	if err = p.Save(CanvasWidth, CanvasHeight, path); err != nil {
		return "", fmt.Errorf("render.Save(%s): %w", path, err)
	}

	return path, nil
}

// Write encodes p in format onto w.
func Write(p *plot.Plot, w io.Writer, format string) error {
	f, err := NormalizeFormat(format)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(CanvasWidth, CanvasHeight, f)
	if err != nil {
		return fmt.Errorf("render.Write: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render.Write: %w", err)
	}

	return nil
}
