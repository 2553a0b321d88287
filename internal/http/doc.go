// Package http provides an HTTP client configured for MusicBrainz requests.
//
// The Client in this package handles:
//   - A fixed User-Agent header on every request
//   - Timeout handling
//   - Page fetches and cover art downloads
//
// # Basic Usage
//
//	client := http.NewClient("Mozilla/5.0", 30*time.Second)
//
//	// Fetch a release page
//	html, err := client.GetString(ctx, "https://musicbrainz.org/release/<mbid>")
//
// Any non-200 response is returned as an error; callers treat that as a
// fetch failure and write nothing.
package http
