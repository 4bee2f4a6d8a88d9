// Package rule turns raw image-validation configuration values into
// canonical rules and compiles those rules into validator closures.
//
// A rule constrains one of four image attributes, identified by Name:
// SIZE (kilobytes), DIMENSIONS (pixels), FORMAT (encoding) and
// ASPECT_RATIO (width over height). Raw values may be scalars, sequences
// or maps of operator bounds, exactly as a decoded YAML document or a
// literal map[string]any produces them:
//
//	rule.Normalize(rule.Size, 100)                        // equal to 100KB
//	rule.Normalize(rule.Size, map[string]any{"lte": 500}) // at most 500KB
//	rule.Normalize(rule.Dimensions, map[string]any{
//		"w": map[string]any{"gte": 300},
//		"h": map[string]any{"gte": 200, "err": "too short"},
//	})
//
// Normalization is strict and fails fast: unknown names or operators,
// conflicting operator pairs (eq with gt, lt with lte, ...), non-positive
// bounds, wrong arities and empty maps all return configuration errors
// before any image is ever validated.
//
// A normalized rule compiles into a Validator closure that checks decoded
// image metadata and reports problems as a Violations error carrying
// either the rule's custom err text or a humanized default message.
package rule
