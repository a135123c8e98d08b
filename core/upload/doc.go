// Package upload implements the upload ingestion pipeline: it decodes a
// multipart/form-data request, classifies its fields, derives a storage name
// from the client filename and commits the file to storage.
//
//	svc := upload.New(store,
//		upload.WithLogger(log),
//		upload.WithMetrics(metrics),
//	)
//	r.Post("/user", upload.Handler[*router.Context](svc))
//
// Recognised fields:
//
//   - "name": text, kept only when it is valid UTF-8 (normalized to NFC)
//   - "file": must carry a filename with an alphanumeric extension; when the
//     request has several, the last one is stored
//
// Any other field is read and discarded. A stored file is named
// "<uuid><extension>", for example "2f1c...9a.jpg".
//
// The whole request is read before anything is written, so a malformed body
// or invalid file field leaves storage untouched. A body that ends before the
// closing multipart delimiter counts as malformed. Errors are *Error values
// wrapped with their cause; each carries an HTTP status and a stable code.
package upload
