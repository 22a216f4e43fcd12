// Package atlasshift adjusts one numeric member of every frame in a sprite
// atlas document (the TexturePacker "JSON Array" layout) and writes the result.
//
// Design policy:
// - Keep only public APIs in the root package; put token-level details under internal/.
// - JSON tokenizers live under source/ and are selected by name.
// - The document is held as an ordered tree, so members the tool does not
//   touch are written back exactly as read (key order, number literals).
//
// Typical usage:
//
//	err := atlasshift.Shift(ctx, "run.json", "output.json")
//
//	s, err := atlasshift.NewShifter(atlasshift.Options{
//		Field: atlasshift.FieldPath{"frame", "x"},
//		Delta: -2,
//		Indent: 4,
//	}, logger)
//	rep, err := s.Shift(ctx, in, out)
//
// Failures are *Error values; use errors.Is with ErrFileNotFound,
// ErrMalformedInput, ErrSchemaViolation or ErrWriteFailure, and AsIssues for
// the JSON Pointer located details.
package atlasshift
