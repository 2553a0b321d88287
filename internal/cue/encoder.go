package cue

import (
	"fmt"
	"strconv"
	"strings"

	"mbzcue/internal/model"
)

// Encoder renders discs as cue sheet text.
//
// Each disc becomes one sheet describing gapless, back-to-back track
// boundaries within a single continuous audio file: track N+1 starts
// exactly where track N ends, with no silence accounting. Frames are
// unused and fixed at 00.
//
// Example usage:
//
//	encoder := NewEncoder()
//
//	sheet, err := encoder.EncodeDisc(disc, release, "Various Artists", "album.wav")
//	if err != nil {
//	    // malformed track number or length on this disc
//	}
//	os.WriteFile(encoder.DiscFileName("Album.cue", disc.Number), []byte(sheet), 0644)
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// DiscFileName derives a disc's output filename by inserting a
// "_disc<N>" marker immediately before the base name's extension.
//
// Example:
//
//	DiscFileName("Album.cue", 2) // "Album_disc2.cue"
func (e *Encoder) DiscFileName(base string, discNumber int) string {
	ext := ""
	if i := strings.LastIndex(base, "."); i >= 0 {
		base, ext = base[:i], base[i:]
	}
	return fmt.Sprintf("%s_disc%d%s", base, discNumber, ext)
}

// EncodeDisc renders one disc as a complete cue sheet.
//
// The header carries the performer, the album title (suffixed with
// " (Disc N)" on multi-disc releases) and the audio filename with a
// WAVE type tag. Each track then gets a TRACK block whose INDEX 01
// timestamp is the running sum of all preceding track durations on the
// disc, so the first track always starts at 00:00:00.
//
// A track number that doesn't parse as an integer, or a length that
// doesn't parse as "minutes:seconds", aborts this disc with an error.
// The sheet is built entirely in memory, so a failed disc produces no
// output at all.
func (e *Encoder) EncodeDisc(disc *model.Disc, release *model.Release, performer, audioFile string) (string, error) {
	var sb strings.Builder

	title := release.Title
	if release.MultiDisc() {
		title = fmt.Sprintf("%s (Disc %d)", title, disc.Number)
	}

	sb.WriteString(fmt.Sprintf("PERFORMER \"%s\"\n", performer))
	sb.WriteString(fmt.Sprintf("TITLE \"%s\"\n", title))
	sb.WriteString(fmt.Sprintf("FILE \"%s\" WAVE\n", audioFile))

	totalSeconds := 0
	for _, track := range disc.Tracks {
		number, err := strconv.Atoi(track.Number)
		if err != nil {
			return "", fmt.Errorf("disc %d: track number %q is not numeric", disc.Number, track.Number)
		}

		minutes, seconds, err := parseLength(track.Length)
		if err != nil {
			return "", fmt.Errorf("disc %d track %s: %w", disc.Number, track.Number, err)
		}

		sb.WriteString(fmt.Sprintf("\nTRACK %02d AUDIO\n", number))
		sb.WriteString(fmt.Sprintf("    TITLE \"%s\"\n", track.Title))
		sb.WriteString(fmt.Sprintf("    PERFORMER \"%s\"\n", track.Artist))
		sb.WriteString(fmt.Sprintf("    INDEX 01 %02d:%02d:00\n", totalSeconds/60, totalSeconds%60))

		totalSeconds += minutes*60 + seconds
	}

	return sb.String(), nil
}

// parseLength splits a "minutes:seconds" duration into its integer
// parts. Minutes are unbounded; seconds are taken as printed and not
// range-checked, matching the source site's convention.
func parseLength(length string) (minutes, seconds int, err error) {
	m, s, ok := strings.Cut(length, ":")
	if !ok {
		return 0, 0, fmt.Errorf("length %q is not in minutes:seconds form", length)
	}

	minutes, err = strconv.Atoi(m)
	if err != nil {
		return 0, 0, fmt.Errorf("length %q has a non-numeric minutes part", length)
	}

	seconds, err = strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("length %q has a non-numeric seconds part", length)
	}

	return minutes, seconds, nil
}
