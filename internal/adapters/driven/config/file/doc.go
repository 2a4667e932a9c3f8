// Package file provides TOML-backed configuration loading for contentsync.
//
// Configuration lives in a single TOML file, ~/.contentsync/config.toml by
// default, holding the Google credentials path, the data directory and the
// source locator for each sync job.
package file
