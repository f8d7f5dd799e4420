// Package provider loads provider recipe records from disk.
//
// A provider record describes the guided setup for one API provider: its
// identifier, display name, categories, time estimate and an ordered list of
// steps. Records are decoded into generic maps first and then read into the
// typed model with best-effort field access, so unexpected shapes degrade to
// zero values instead of failing the build. The untouched map is kept on the
// model for templates that need a field the model does not name.
package provider
