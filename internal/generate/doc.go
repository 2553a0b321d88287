// Package generate orchestrates the mbzcue pipeline.
//
// Generator wires the collaborators together: one page fetch through a
// Fetcher, tracklist extraction, then a per-disc encode-and-write loop.
// Cover art saving is an optional final step.
//
// # Progress reporting
//
// There is no global debug state. Every step emits a ProgressEvent
// through the callback given at construction, and the caller filters by
// level:
//
//	gen := generate.NewGenerator(settings, client, func(event generate.ProgressEvent) {
//	    if event.Level.Visible(settings.DebugLevel) {
//	        fmt.Println(event.Message)
//	    }
//	})
//
// # Failure isolation
//
// A fetch failure or a page without tracklist tables ends the run with
// nothing written. A malformed track on one disc aborts only that
// disc's sheet; the remaining discs are still encoded and written.
package generate
