// Package static serves stored files over HTTP.
//
// Stored serves a single file looked up by a route parameter. The content
// type is sniffed from the first bytes with mimetype and falls back to the
// file extension. Range and conditional requests go through http.ServeContent.
//
//	r.Get("/image/{title}", static.Stored[*router.Context](store, "title"))
//
// Dir serves a whole directory tree from an http.FileSystem, optionally with
// HTML listings. Names starting with a dot are hidden from both listings and
// direct requests, so in-flight temporary files never leak.
//
//	r.Mount("/images", static.Dir[*router.Context](store.FileSystem(),
//		static.WithStripPrefix("/images"),
//		static.WithListing(true),
//	))
//
// Missing files and invalid names are reported through the router's error
// handler rather than written directly.
package static
