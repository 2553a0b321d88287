package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"mbzcue/internal/config"
	"mbzcue/internal/cue"
	ioutils "mbzcue/internal/io"
	"mbzcue/internal/model"
	"mbzcue/internal/musicbrainz"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Visible reports whether an event at the given level should be shown
// at the given debug level.
//
// Tiers: 0 shows nothing, 1 shows warnings/errors and final results,
// 2 adds informational messages, 3 adds the per-track trace.
func (l ProgressLevel) Visible(debugLevel int) bool {
	switch l {
	case LevelError, LevelWarning, LevelSuccess:
		return debugLevel >= 1
	case LevelInfo:
		return debugLevel >= 2
	case LevelVerbose:
		return debugLevel >= 3
	}
	return false
}

// ErrNoTracklist is returned when the release page contains no
// tracklist tables, so there is nothing to encode.
var ErrNoTracklist = errors.New("no tracklist found on page")

// Fetcher retrieves remote content. *http.Client implements it; tests
// substitute a fake.
type Fetcher interface {
	GetString(ctx context.Context, url string) (string, error)
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// ImageResizer shrinks cover art before saving. *ioutils.ImageService
// implements it.
type ImageResizer interface {
	ResizeImage(ctx context.Context, data []byte, maxWidth, maxHeight int) ([]byte, error)
	ConvertToJPEG(ctx context.Context, data []byte) ([]byte, error)
}

// Generator runs the whole pipeline: fetch the release page, extract
// the tracklist, and write one cue sheet per disc.
//
// Generator is synchronous and single-pass. The only network operations
// are the page fetch (always one) and the optional cover art download.
// Per-disc encoding failures are isolated: a disc with a malformed
// length or track number is reported and skipped while its siblings are
// still written.
//
// Example usage:
//
//	gen := generate.NewGenerator(settings, client, func(event generate.ProgressEvent) {
//	    if event.Level.Visible(settings.DebugLevel) {
//	        fmt.Println(event.Message)
//	    }
//	})
//
//	written, err := gen.Run(ctx, url, "Album.cue", "album.wav")
type Generator struct {
	settings  *config.Settings
	fetcher   Fetcher
	extractor *musicbrainz.Extractor
	encoder   *cue.Encoder
	images    ImageResizer

	onProgress func(ProgressEvent)
}

// NewGenerator creates a new Generator.
//
// onProgress receives every pipeline event regardless of level; the
// caller decides what to surface (typically via ProgressLevel.Visible
// and the configured debug level). Pass nil to discard events.
func NewGenerator(settings *config.Settings, fetcher Fetcher, onProgress func(ProgressEvent)) *Generator {
	return &Generator{
		settings:   settings,
		fetcher:    fetcher,
		extractor:  musicbrainz.NewExtractor(),
		encoder:    cue.NewEncoder(),
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// Run executes the pipeline for one release URL.
//
// outputFile is the base cue filename; when empty it defaults to
// "<album title>.cue" with the title sanitized for filesystem use.
// audioFile is written verbatim into each sheet's FILE line.
//
// Returns the paths of all sheets written. The error is non-nil when
// the fetch fails (nothing written), when the page has no tracklist
// (ErrNoTracklist, nothing written), or when every disc failed to
// encode. Individual disc failures alongside successful siblings are
// reported through the progress callback only.
func (g *Generator) Run(ctx context.Context, url, outputFile, audioFile string) ([]string, error) {
	g.progress(ProgressEvent{Message: fmt.Sprintf("Fetching release page: %s", url), Level: LevelInfo})

	html, err := g.fetcher.GetString(ctx, url)
	if err != nil {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Failed to fetch page: %v", err), Level: LevelError})
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	release, err := g.extractor.Extract(html)
	if err != nil {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Failed to parse page: %v", err), Level: LevelError})
		return nil, err
	}

	if release.Title == model.UnknownAlbum {
		g.progress(ProgressEvent{Message: "Album title not found.", Level: LevelWarning})
	} else {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Extracted album title: %s", release.Title), Level: LevelInfo})
	}

	if release.Discs == nil {
		g.progress(ProgressEvent{Message: "No tracklist found!", Level: LevelWarning})
		return nil, ErrNoTracklist
	}

	for _, disc := range release.Discs {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Extracted %d tracks for disc %d.", len(disc.Tracks), disc.Number), Level: LevelInfo})
		for _, track := range disc.Tracks {
			g.progress(ProgressEvent{
				Message: fmt.Sprintf("Extracted track: %s - %s - %s - %s", track.Number, track.Title, track.Artist, track.Length),
				Level:   LevelVerbose,
			})
		}
	}

	base := outputFile
	if base == "" {
		base = ioutils.SanitizeFileName(release.Title + ".cue")
	}

	var written []string
	var lastErr error
	for _, disc := range release.Discs {
		sheet, err := g.encoder.EncodeDisc(disc, release, g.settings.Performer, audioFile)
		if err != nil {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Skipping disc %d: %v", disc.Number, err), Level: LevelError})
			lastErr = err
			continue
		}

		path := g.encoder.DiscFileName(base, disc.Number)
		if err := ioutils.WriteFile(path, []byte(sheet)); err != nil {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Failed to write %s: %v", path, err), Level: LevelError})
			lastErr = err
			continue
		}

		g.progress(ProgressEvent{Message: fmt.Sprintf("CUE sheet written to %s.", path), Level: LevelSuccess})
		written = append(written, path)
	}

	if len(written) == 0 && lastErr != nil {
		return nil, lastErr
	}

	if g.settings.SaveCoverArt && release.HasCoverArt() {
		if path, err := g.saveCoverArt(ctx, release, base); err != nil {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Failed to save cover art: %v", err), Level: LevelWarning})
		} else {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Cover art written to %s.", path), Level: LevelSuccess})
			written = append(written, path)
		}
	}

	return written, nil
}

// saveCoverArt downloads the release cover art and writes it beside the
// cue sheets as "<base>.jpg".
func (g *Generator) saveCoverArt(ctx context.Context, release *model.Release, base string) (string, error) {
	data, err := g.fetcher.DownloadBytes(ctx, release.CoverArtURL)
	if err != nil {
		return "", err
	}

	if g.settings.ResizeCoverArt {
		data, err = g.images.ResizeImage(ctx, data, g.settings.CoverArtMaxSize, g.settings.CoverArtMaxSize)
	} else {
		data, err = g.images.ConvertToJPEG(ctx, data)
	}
	if err != nil {
		return "", err
	}

	path := strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
	if err := ioutils.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

func (g *Generator) progress(event ProgressEvent) {
	if g.onProgress != nil {
		g.onProgress(event)
	}
}
