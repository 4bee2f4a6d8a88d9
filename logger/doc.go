// Package logger builds configured log/slog loggers for the library.
//
// The factory takes functional options for level, format (text or json),
// output destination and static attributes, and a pair of parsers that
// turn settings strings into their typed equivalents.
package logger
