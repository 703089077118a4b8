// Package config holds the YAML run configuration of the figure renderer:
// where and how figures are written, the display scheme, the CSV source and
// the seeds and prices of the stochastic figures.
package config
