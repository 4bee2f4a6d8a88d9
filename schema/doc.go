// Package schema maps dotted configuration keys to concrete image fields.
//
// A key addresses fields at one of three specificity levels:
//
//	myapp.models                  every image field in the app      (1)
//	myapp.models.Profile          every image field of the model    (2)
//	myapp.models.Profile.avatar   one concrete field                (3)
//
// The host application describes its image-capable fields by registering
// them in a Schema at startup; the registry package then resolves keys
// through Schema.FieldsFor when it builds validators.
package schema
