package model

import "strings"

// Track represents a single row of a disc's tracklist.
//
// All fields are carried exactly as they appear on the release page,
// whitespace-trimmed but otherwise untouched. In particular Number and
// Length stay strings: the cue encoder re-parses them and treats
// non-numeric content as a per-disc failure, so nothing is coerced here.
//
// Example:
//
//	track := model.NewTrack("1", "Intro", "ArtistA", "3:45", 1)
//	// track.Number = "1", track.Length = "3:45", track.DiscNumber = 1
type Track struct {
	// Number is the track number exactly as printed in the source table
	// cell. Usually a positive integer, but malformed pages can put
	// anything here.
	Number string

	// Title is the track title.
	Title string

	// Artist is the track artist. When the source row has no artist of
	// its own this is whatever text the artist cell carried.
	Artist string

	// Length is the track duration in "minutes:seconds" form.
	Length string

	// DiscNumber is the 1-based index of the disc this track belongs to.
	DiscNumber int
}

// NewTrack creates a Track with all text fields whitespace-trimmed.
func NewTrack(number, title, artist, length string, discNumber int) Track {
	return Track{
		Number:     strings.TrimSpace(number),
		Title:      strings.TrimSpace(title),
		Artist:     strings.TrimSpace(artist),
		Length:     strings.TrimSpace(length),
		DiscNumber: discNumber,
	}
}
