// Package csvload reads price columns from CSV files with a header row.
//
// ReadColumn and ReadFirstColumn are one-shot readers. Loader wraps them with
// an in-memory memo so several figures that plot the same file parse it once.
package csvload
