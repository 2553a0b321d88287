// Package model defines the core data structures shared across mbzcue.
//
// # Release
//
// Release is the immutable result of extracting one MusicBrainz release
// page: the album title and an ordered list of discs.
//
//	release.Title       // album title or model.UnknownAlbum
//	release.Discs       // nil when the page had no tracklist tables
//	release.MultiDisc() // whether cue titles get a disc suffix
//
// # Disc and Track
//
// Disc groups the tracks of one tracklist table, numbered by the
// table's position on the page. Track keeps the row's cells verbatim
// (trimmed); numeric interpretation of the track number and length is
// deferred to the cue encoder, which owns the failure policy for
// malformed values.
package model
