// Package imagemeta extracts the measurable attributes of an uploaded
// image: byte size, pixel dimensions and encoding format.
//
// Decoding is header-only via image.DecodeConfig; pixel data is never
// materialized. The supported formats are the common web formats
// (jpeg, png, gif, bmp, webp) — the latter two are registered through
// the golang.org/x/image decoders.
//
// The resulting Meta value is what validator closures built by the rule
// package consume.
package imagemeta
