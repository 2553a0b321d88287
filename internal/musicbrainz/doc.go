// Package musicbrainz extracts tracklist information from MusicBrainz
// release pages.
//
// The Extractor navigates the release page markup and produces a
// model.Release: the album title from the page heading, one Disc per
// tracklist table in document order, and one Track per zebra-striped
// data row. Rows that don't carry the expected five cells are skipped
// silently.
//
//	extractor := musicbrainz.NewExtractor()
//	release, err := extractor.Extract(pageHTML)
//
// The extractor is pure: it never logs and never performs I/O. Missing
// titles degrade to model.UnknownAlbum and pages without tracklists
// yield a Release with nil Discs; callers translate both conditions
// into user-facing warnings.
package musicbrainz
