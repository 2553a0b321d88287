package model

// UnknownAlbum is the sentinel title used when the release page carries
// no extractable album heading.
const UnknownAlbum = "Unknown Album"

// Disc is an ordered sequence of tracks from one tracklist table.
//
// A disc found on the page but containing no accepted rows is still a
// valid Disc; it simply has an empty Tracks slice.
type Disc struct {
	// Number is the 1-based position of the disc's table among all
	// tracklist tables found on the page.
	Number int

	// Tracks holds the disc's tracks in source document order.
	Tracks []Track
}

// Release represents one MusicBrainz release: an album title plus the
// ordered sequence of discs extracted from its page.
//
// A Release is built once per run by the extractor, is immutable
// afterwards, and is consumed by the cue encoder. Discs is nil when the
// page carried no tracklist tables at all; that is the recoverable
// "no tracklist" outcome, not an error.
//
// Example:
//
//	release := &model.Release{
//	    Title: "Test Album",
//	    Discs: []*model.Disc{{Number: 1, Tracks: tracks}},
//	}
//	if release.MultiDisc() {
//	    // titles get a " (Disc N)" suffix
//	}
type Release struct {
	// Title is the album title, or UnknownAlbum if it could not be
	// extracted.
	Title string

	// Discs holds the discs in page order. Nil means no tracklist was
	// found.
	Discs []*Disc

	// CoverArtURL is the release cover art image URL, if the page has
	// one. Empty string means no cover art is available.
	CoverArtURL string
}

// MultiDisc reports whether the release has more than one disc.
func (r *Release) MultiDisc() bool {
	return len(r.Discs) > 1
}

// HasCoverArt reports whether the release page carried cover art.
func (r *Release) HasCoverArt() bool {
	return r.CoverArtURL != ""
}

// TrackCount returns the total number of tracks across all discs.
func (r *Release) TrackCount() int {
	n := 0
	for _, d := range r.Discs {
		n += len(d.Tracks)
	}
	return n
}
