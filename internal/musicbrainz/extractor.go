package musicbrainz

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mbzcue/internal/model"
)

// Extractor turns a MusicBrainz release page into a Release model.
//
// A release page lays its tracklist out as one table per disc, zebra
// striped with "odd"/"even" row classes and tagged with the "tbl medium"
// table classes. The album title sits in the page heading, wrapped in a
// bdi element like every other directional text on the site.
//
// Example usage:
//
//	extractor := NewExtractor()
//
//	html, _ := client.GetString(ctx, releaseURL)
//
//	release, err := extractor.Extract(html)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Album: %s (%d discs)\n", release.Title, len(release.Discs))
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses a release page and returns the extracted Release.
//
// The returned Release always carries a resolved title: the trimmed
// text of the bdi element nested in the page's h1 heading, or
// model.UnknownAlbum when either element is missing. A missing title is
// deliberately not an error; extraction continues.
//
// Release.Discs is nil when no tracklist tables exist on the page.
// That is the recoverable "no tracklist" outcome; callers decide
// whether to proceed, and a nil disc sequence suppresses all encoding.
//
// Table discovery is scoped to the tracklist container when one is
// present, falling back to a page-wide search. Credits tables share the
// "tbl" styling on some layouts, and scoping keeps them out of the
// disc sequence.
//
// An error is returned only when the markup itself cannot be parsed.
func (e *Extractor) Extract(htmlContent string) (*model.Release, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse release page: %w", err)
	}

	release := &model.Release{
		Title:       e.extractTitle(doc),
		CoverArtURL: e.extractCoverArtURL(doc),
	}

	tables := e.findTracklistTables(doc)
	if tables.Length() == 0 {
		return release, nil
	}

	tables.Each(func(i int, table *goquery.Selection) {
		disc := &model.Disc{Number: i + 1}

		table.Find("tr.odd, tr.even").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			// Fewer than 5 cells means a malformed or non-data row.
			if cells.Length() < 5 {
				return
			}

			disc.Tracks = append(disc.Tracks, model.NewTrack(
				cells.Eq(0).Text(),
				nestedText(cells.Eq(1), "bdi"),
				nestedText(cells.Eq(2), "bdi"),
				cells.Eq(4).Text(),
				disc.Number,
			))
		})

		release.Discs = append(release.Discs, disc)
	})

	return release, nil
}

// extractTitle resolves the album title from the page heading.
func (e *Extractor) extractTitle(doc *goquery.Document) string {
	heading := doc.Find("h1").First()
	if heading.Length() == 0 {
		return model.UnknownAlbum
	}

	bdi := heading.Find("bdi").First()
	if bdi.Length() == 0 {
		return model.UnknownAlbum
	}

	title := strings.TrimSpace(bdi.Text())
	if title == "" {
		return model.UnknownAlbum
	}
	return title
}

// extractCoverArtURL returns the release cover art image URL, or "" if
// the page has none.
func (e *Extractor) extractCoverArtURL(doc *goquery.Document) string {
	src, _ := doc.Find("div.cover-art img").First().Attr("src")
	return strings.TrimSpace(src)
}

// findTracklistTables locates the per-disc tracklist tables in document
// order.
//
// The search prefers tables inside the tracklist container and falls
// back to the page-wide "tbl medium" class pair when the container is
// absent.
func (e *Extractor) findTracklistTables(doc *goquery.Document) *goquery.Selection {
	scoped := doc.Find("div.tracklist-and-credits").Find("table.tbl.medium")
	if scoped.Length() > 0 {
		return scoped
	}
	return doc.Find("table.tbl.medium")
}

// nestedText returns the trimmed text of the first nested element
// matching selector, falling back to the selection's own text when no
// such element exists.
//
// MusicBrainz wraps titles and artist names in bdi elements, but not
// every cell carries one, so both shapes occur in real pages.
func nestedText(s *goquery.Selection, selector string) string {
	if nested := s.Find(selector); nested.Length() > 0 {
		return strings.TrimSpace(nested.First().Text())
	}
	return strings.TrimSpace(s.Text())
}
