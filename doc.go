// Package imgvalid compiles declarative image-upload validation rules
// into per-field validator closures.
//
// Rules constrain four image attributes — SIZE (kilobytes), DIMENSIONS
// (pixels), FORMAT (encoding) and ASPECT_RATIO — and are declared against
// dotted-path keys at three specificity levels: an entire app's image
// fields, one model's fields, or a single field. More specific entries
// override less specific ones per attribute.
//
// Basic usage:
//
//	s := schema.New()
//	s.AddField("myapp", "Profile", "avatar")
//	s.AddField("myapp", "Article", "cover")
//
//	reg, err := imgvalid.Init(registry.Config{
//		{Key: "myapp.models", Rules: map[string]any{
//			"SIZE":   map[string]any{"lte": 500},
//			"FORMAT": []any{"jpeg", "png"},
//		}},
//		{Key: "myapp.models.Profile.avatar", Rules: map[string]any{
//			"DIMENSIONS": []any{300, 300},
//		}},
//	}, s)
//	if err != nil {
//		// configuration is broken; fix it before serving uploads
//	}
//
//	meta, err := imagemeta.Decode(upload)
//	if err != nil {
//		// not a decodable web image
//	}
//	if err := reg.Validate(schema.Field{App: "myapp", Model: "Profile", Name: "avatar"}, meta); err != nil {
//		violations := rule.AsViolations(err)
//		// surface every violated rule to the user
//	}
//
// InitFromEnv offers the same flow driven by environment settings and a
// YAML rules document.
//
// All configuration mistakes are detected while building the registry;
// upload-time errors are always rule violations, reported together so a
// user sees every problem with one upload at once.
package imgvalid
