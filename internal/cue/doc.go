// Package cue renders disc tracklists as cue sheets.
//
// A cue sheet is a plain-text description of track boundaries within
// one continuous audio file:
//
//	PERFORMER "Various Artists"
//	TITLE "Test Album (Disc 1)"
//	FILE "album.wav" WAVE
//
//	TRACK 01 AUDIO
//	    TITLE "Intro"
//	    PERFORMER "ArtistA"
//	    INDEX 01 00:00:00
//
// The Encoder lays tracks back to back: each INDEX 01 timestamp is the
// cumulative duration of every earlier track on the disc. Discs encode
// independently: DiscFileName gives each one its own output name and a
// malformed track on one disc never affects its siblings.
package cue
