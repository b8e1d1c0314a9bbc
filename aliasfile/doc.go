// Package aliasfile loads alias catalogs from JSON documents.
//
// The loader is deliberately separate from the search engine: it produces a
// plain in-memory corpus map that index.Build and search.Engine consume, so
// the engine itself stays free of I/O concerns.
//
// Catalogs are commonly maintained as a large base document plus small
// add/remove overlay patches curated by hand; Merge and LoadMerged compose
// the three into the effective corpus.
package aliasfile
