package musicbrainz

import (
	"testing"

	"mbzcue/internal/model"
)

// trackRow builds one zebra-striped data row in the release page shape.
// The third cell (index 3, ratings on the real site) is filler; the
// extractor must skip it.
func trackRow(class, num, title, artist, length string) string {
	return `<tr class="` + class + `">` +
		`<td>` + num + `</td>` +
		`<td><a href="#"><bdi>` + title + `</bdi></a></td>` +
		`<td><a href="#"><bdi>` + artist + `</bdi></a></td>` +
		`<td>rating</td>` +
		`<td>` + length + `</td>` +
		`</tr>`
}

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name       string
		html       string
		wantTitle  string
		wantDiscs  int
		wantTracks []int // per-disc track counts, nil to skip the check
	}{
		{
			name: "two disc release",
			html: `<html><body>
				<h1><a href="#"><bdi>Test Album</bdi></a></h1>
				<div class="tracklist-and-credits">
					<table class="tbl medium">
						` + trackRow("odd", "1", "Intro", "ArtistA", "3:45") + `
						` + trackRow("even", "2", "Outro", "ArtistB", "4:10") + `
					</table>
					<table class="tbl medium">
						` + trackRow("odd", "1", "Encore", "ArtistA", "2:30") + `
					</table>
				</div>
			</body></html>`,
			wantTitle:  "Test Album",
			wantDiscs:  2,
			wantTracks: []int{2, 1},
		},
		{
			name: "missing heading falls back to sentinel",
			html: `<html><body>
				<table class="tbl medium">
					` + trackRow("odd", "1", "Song", "Artist", "3:00") + `
				</table>
			</body></html>`,
			wantTitle:  model.UnknownAlbum,
			wantDiscs:  1,
			wantTracks: []int{1},
		},
		{
			name: "heading without bdi falls back to sentinel",
			html: `<html><body>
				<h1>Plain Title</h1>
				<table class="tbl medium">
					` + trackRow("odd", "1", "Song", "Artist", "3:00") + `
				</table>
			</body></html>`,
			wantTitle:  model.UnknownAlbum,
			wantDiscs:  1,
			wantTracks: []int{1},
		},
		{
			name: "no tracklist tables",
			html: `<html><body>
				<h1><bdi>Lonely Album</bdi></h1>
				<p>Nothing to see here.</p>
			</body></html>`,
			wantTitle: "Lonely Album",
			wantDiscs: 0,
		},
		{
			name: "header and short rows are skipped",
			html: `<html><body>
				<h1><bdi>Album</bdi></h1>
				<table class="tbl medium">
					<tr><th>#</th><th>Title</th></tr>
					<tr class="odd"><td>1</td><td>too</td><td>few</td><td>cells</td></tr>
					` + trackRow("even", "2", "Kept", "Artist", "3:00") + `
				</table>
			</body></html>`,
			wantTitle:  "Album",
			wantDiscs:  1,
			wantTracks: []int{1},
		},
		{
			name: "empty table still yields a disc",
			html: `<html><body>
				<h1><bdi>Album</bdi></h1>
				<table class="tbl medium">
					` + trackRow("odd", "1", "Song", "Artist", "3:00") + `
				</table>
				<table class="tbl medium">
					<tr><th>header only</th></tr>
				</table>
			</body></html>`,
			wantTitle:  "Album",
			wantDiscs:  2,
			wantTracks: []int{1, 0},
		},
		{
			name: "tables outside the tracklist container are ignored",
			html: `<html><body>
				<h1><bdi>Album</bdi></h1>
				<table class="tbl medium">
					` + trackRow("odd", "99", "Credits Row", "Nobody", "0:00") + `
				</table>
				<div class="tracklist-and-credits">
					<table class="tbl medium">
						` + trackRow("odd", "1", "Song", "Artist", "3:00") + `
					</table>
				</div>
			</body></html>`,
			wantTitle:  "Album",
			wantDiscs:  1,
			wantTracks: []int{1},
		},
	}

	extractor := NewExtractor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release, err := extractor.Extract(tt.html)
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}

			if release.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", release.Title, tt.wantTitle)
			}

			if len(release.Discs) != tt.wantDiscs {
				t.Fatalf("got %d discs, want %d", len(release.Discs), tt.wantDiscs)
			}
			if tt.wantDiscs == 0 && release.Discs != nil {
				t.Error("Discs should be nil when no tables are found")
			}

			for i, disc := range release.Discs {
				if disc.Number != i+1 {
					t.Errorf("disc %d has Number = %d", i, disc.Number)
				}
				if tt.wantTracks != nil && len(disc.Tracks) != tt.wantTracks[i] {
					t.Errorf("disc %d has %d tracks, want %d", i+1, len(disc.Tracks), tt.wantTracks[i])
				}
			}
		})
	}
}

func TestExtractor_TrackFields(t *testing.T) {
	html := `<html><body>
		<h1><bdi>Album</bdi></h1>
		<table class="tbl medium">
			<tr class="odd">
				<td> 1 </td>
				<td><a href="#"><bdi>  Nested Title  </bdi></a></td>
				<td>Plain Artist</td>
				<td>rating</td>
				<td> 3:45 </td>
			</tr>
		</table>
	</body></html>`

	release, err := NewExtractor().Extract(html)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(release.Discs) != 1 || len(release.Discs[0].Tracks) != 1 {
		t.Fatalf("expected exactly one track, got %+v", release.Discs)
	}

	track := release.Discs[0].Tracks[0]
	if track.Number != "1" {
		t.Errorf("Number = %q, want %q", track.Number, "1")
	}
	// bdi text preferred when present
	if track.Title != "Nested Title" {
		t.Errorf("Title = %q, want %q", track.Title, "Nested Title")
	}
	// cell's own text used when no bdi is nested
	if track.Artist != "Plain Artist" {
		t.Errorf("Artist = %q, want %q", track.Artist, "Plain Artist")
	}
	if track.Length != "3:45" {
		t.Errorf("Length = %q, want %q", track.Length, "3:45")
	}
	if track.DiscNumber != 1 {
		t.Errorf("DiscNumber = %d, want 1", track.DiscNumber)
	}
}

func TestExtractor_CoverArtURL(t *testing.T) {
	html := `<html><body>
		<h1><bdi>Album</bdi></h1>
		<div class="cover-art"><img src="https://coverartarchive.org/release/x/front.jpg"></div>
	</body></html>`

	release, err := NewExtractor().Extract(html)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if !release.HasCoverArt() {
		t.Fatal("expected cover art URL")
	}
	want := "https://coverartarchive.org/release/x/front.jpg"
	if release.CoverArtURL != want {
		t.Errorf("CoverArtURL = %q, want %q", release.CoverArtURL, want)
	}

	bare, _ := NewExtractor().Extract(`<html><body><h1><bdi>A</bdi></h1></body></html>`)
	if bare.HasCoverArt() {
		t.Error("expected no cover art URL")
	}
}
