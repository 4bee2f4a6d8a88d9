// Package registry resolves an ordered rule configuration into per-field
// validator closures and serves them for the process lifetime.
//
// Resolution merges configuration entries by specificity: app-wide rules
// apply to every image field of the app, model-wide rules override them
// for that model's fields, and field-specific rules have the last word.
// Overriding happens per validation name — an entry re-declaring SIZE for
// a field leaves an inherited FORMAT rule in place.
//
// The Registry builds once, either eagerly through Build or lazily behind
// a mutex on first lookup, and fails the whole build on any configuration
// problem so mistakes surface at startup rather than at upload time.
// Invalidate resets the built state for tests.
package registry
