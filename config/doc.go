// Package config loads the library's settings and rule documents.
//
// Settings come from the environment (with an optional .env file loaded
// once per process); the rule document is YAML, a top-level mapping from
// dotted-path keys to rule maps, decoded in document order so declaration
// order is meaningful for equal-specificity overrides.
package config
