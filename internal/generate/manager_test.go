package generate

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mbzcue/internal/config"
)

type fakeFetcher struct {
	html    string
	err     error
	artData []byte
	artErr  error
}

func (f *fakeFetcher) GetString(ctx context.Context, url string) (string, error) {
	return f.html, f.err
}

func (f *fakeFetcher) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return f.artData, f.artErr
}

func row(num, title, artist, length string) string {
	return `<tr class="odd"><td>` + num + `</td><td><bdi>` + title + `</bdi></td>` +
		`<td><bdi>` + artist + `</bdi></td><td></td><td>` + length + `</td></tr>`
}

func page(title string, tables ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><h1><bdi>` + title + `</bdi></h1>`)
	b.WriteString(`<div class="tracklist-and-credits">`)
	for _, rows := range tables {
		b.WriteString(`<table class="tbl medium">` + rows + `</table>`)
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}

func newTestGenerator(fetcher Fetcher) (*Generator, *[]ProgressEvent) {
	var events []ProgressEvent
	gen := NewGenerator(config.DefaultSettings(), fetcher, func(event ProgressEvent) {
		events = append(events, event)
	})
	return gen, &events
}

func hasEvent(events []ProgressEvent, level ProgressLevel, substr string) bool {
	for _, e := range events {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestGenerator_Run_MultiDisc(t *testing.T) {
	fetcher := &fakeFetcher{html: page("Test Album",
		row("1", "Intro", "ArtistA", "3:45")+row("2", "Outro", "ArtistB", "4:10"),
		row("1", "Encore", "ArtistC", "2:00"),
	)}
	gen, _ := newTestGenerator(fetcher)

	base := filepath.Join(t.TempDir(), "MyAlbum.cue")
	written, err := gen.Run(context.Background(), "https://musicbrainz.org/release/x", base, "album.wav")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(written) != 2 {
		t.Fatalf("wrote %d files, want 2: %v", len(written), written)
	}
	for i, suffix := range []string{"MyAlbum_disc1.cue", "MyAlbum_disc2.cue"} {
		if filepath.Base(written[i]) != suffix {
			t.Errorf("written[%d] = %q, want base %q", i, written[i], suffix)
		}
	}

	disc1, err := os.ReadFile(written[0])
	if err != nil {
		t.Fatalf("reading disc 1 sheet: %v", err)
	}
	if !strings.Contains(string(disc1), `TITLE "Test Album (Disc 1)"`) {
		t.Errorf("disc 1 title line wrong:\n%s", disc1)
	}
	if !strings.Contains(string(disc1), "INDEX 01 03:45:00") {
		t.Errorf("disc 1 cumulative index wrong:\n%s", disc1)
	}
}

func TestGenerator_Run_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("HTTP 404: Not Found")}
	gen, events := newTestGenerator(fetcher)

	dir := t.TempDir()
	written, err := gen.Run(context.Background(), "https://musicbrainz.org/release/x",
		filepath.Join(dir, "Album.cue"), "album.wav")
	if err == nil {
		t.Fatal("expected error on fetch failure")
	}
	if len(written) != 0 {
		t.Errorf("fetch failure should write nothing, wrote %v", written)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("output dir should be empty, has %d entries", len(entries))
	}
	if !hasEvent(*events, LevelError, "Failed to fetch") {
		t.Error("missing fetch failure event")
	}
}

func TestGenerator_Run_NoTracklist(t *testing.T) {
	fetcher := &fakeFetcher{html: `<html><body><h1><bdi>Known Title</bdi></h1></body></html>`}
	gen, events := newTestGenerator(fetcher)

	dir := t.TempDir()
	written, err := gen.Run(context.Background(), "u", filepath.Join(dir, "Album.cue"), "album.wav")
	if !errors.Is(err, ErrNoTracklist) {
		t.Fatalf("err = %v, want ErrNoTracklist", err)
	}
	if len(written) != 0 {
		t.Errorf("no-tracklist run should write nothing, wrote %v", written)
	}
	// Title was still resolved even though nothing was encodable.
	if !hasEvent(*events, LevelInfo, "Known Title") {
		t.Error("missing resolved-title event")
	}
	if !hasEvent(*events, LevelWarning, "No tracklist") {
		t.Error("missing no-tracklist warning")
	}
}

func TestGenerator_Run_DiscFailureIsolated(t *testing.T) {
	fetcher := &fakeFetcher{html: page("Test Album",
		row("1", "Broken", "ArtistA", "abc"),
		row("1", "Fine", "ArtistB", "2:00"),
	)}
	gen, events := newTestGenerator(fetcher)

	base := filepath.Join(t.TempDir(), "Album.cue")
	written, err := gen.Run(context.Background(), "u", base, "album.wav")
	if err != nil {
		t.Fatalf("Run should succeed when one disc survives: %v", err)
	}

	if len(written) != 1 || filepath.Base(written[0]) != "Album_disc2.cue" {
		t.Fatalf("written = %v, want only Album_disc2.cue", written)
	}
	if _, err := os.Stat(strings.Replace(written[0], "disc2", "disc1", 1)); !os.IsNotExist(err) {
		t.Error("failed disc 1 left a file behind")
	}
	if !hasEvent(*events, LevelError, "Skipping disc 1") {
		t.Error("missing disc failure event")
	}
}

func TestGenerator_Run_AllDiscsFail(t *testing.T) {
	fetcher := &fakeFetcher{html: page("Test Album", row("x", "Broken", "A", "1:00"))}
	gen, _ := newTestGenerator(fetcher)

	written, err := gen.Run(context.Background(), "u", filepath.Join(t.TempDir(), "Album.cue"), "album.wav")
	if err == nil {
		t.Fatal("expected error when every disc fails")
	}
	if len(written) != 0 {
		t.Errorf("wrote %v, want nothing", written)
	}
}

func TestGenerator_Run_DefaultOutputName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	fetcher := &fakeFetcher{html: page("Live / Tokyo", row("1", "Song", "Artist", "1:00"))}
	gen, _ := newTestGenerator(fetcher)

	written, err := gen.Run(context.Background(), "u", "", "album.wav")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("written = %v, want one file", written)
	}
	// Slash in the album title must not become a path separator.
	if filepath.Base(written[0]) != "Live _ Tokyo_disc1.cue" {
		t.Errorf("derived name = %q", filepath.Base(written[0]))
	}
}

func TestGenerator_Run_SavesCoverArt(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding fixture image: %v", err)
	}

	fetcher := &fakeFetcher{
		html: `<html><body><h1><bdi>Album</bdi></h1>` +
			`<div class="cover-art"><img src="https://example.com/front.png"></div>` +
			`<div class="tracklist-and-credits"><table class="tbl medium">` +
			row("1", "Song", "Artist", "1:00") + `</table></div></body></html>`,
		artData: buf.Bytes(),
	}

	settings := config.DefaultSettings()
	settings.SaveCoverArt = true
	gen := NewGenerator(settings, fetcher, nil)

	base := filepath.Join(t.TempDir(), "Album.cue")
	written, err := gen.Run(context.Background(), "u", base, "album.wav")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(written) != 2 {
		t.Fatalf("written = %v, want cue sheet plus cover art", written)
	}
	artPath := written[1]
	if filepath.Base(artPath) != "Album.jpg" {
		t.Errorf("cover art path = %q, want Album.jpg", artPath)
	}
	if _, err := os.Stat(artPath); err != nil {
		t.Errorf("cover art file missing: %v", err)
	}
}

func TestProgressLevel_Visible(t *testing.T) {
	tests := []struct {
		level      ProgressLevel
		debugLevel int
		want       bool
	}{
		{LevelError, 0, false},
		{LevelError, 1, true},
		{LevelWarning, 1, true},
		{LevelSuccess, 1, true},
		{LevelInfo, 1, false},
		{LevelInfo, 2, true},
		{LevelVerbose, 2, false},
		{LevelVerbose, 3, true},
	}

	for _, tt := range tests {
		if got := tt.level.Visible(tt.debugLevel); got != tt.want {
			t.Errorf("level %d Visible(%d) = %v, want %v", tt.level, tt.debugLevel, got, tt.want)
		}
	}
}
