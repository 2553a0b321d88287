package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mbzcue/internal/config"
	"mbzcue/internal/generate"
	mbzhttp "mbzcue/internal/http"
)

func main() {
	// Command line flags
	var (
		urlFlag        = flag.String("url", "", "MusicBrainz release URL")
		outputFlag     = flag.String("output_file", "", "Output CUE file name (e.g. album.cue creates album_disc1.cue, album_disc2.cue, ...)")
		wavFlag        = flag.String("wav_filename", "", "Audio file name written into each sheet's FILE line")
		performerFlag  = flag.String("performer", "", "Album performer for the sheet header (overrides config)")
		debugFlag      = flag.Int("debug_level", 0, "Debug level (0: silent, 1: warnings/errors, 2: info, 3: per-track trace)")
		configFlag     = flag.String("config", "", "Path to config file")
		coverArtFlag   = flag.Bool("cover-art", false, "Save release cover art next to the cue sheets")
	)
	flag.StringVar(wavFlag, "wav_file", *wavFlag, "Alias for -wav_filename")

	flag.Parse()

	if *urlFlag == "" || *wavFlag == "" {
		fmt.Println("mbzcue - Generate cue sheets from MusicBrainz releases")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  mbzcue -url <release URL> -wav_filename <audio file> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: mbzcue-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *performerFlag != "" {
		settings.Performer = *performerFlag
	}
	if *outputFlag != "" {
		settings.OutputFile = *outputFlag
	}
	if *coverArtFlag {
		settings.SaveCoverArt = true
	}
	if *debugFlag != 0 {
		settings.DebugLevel = *debugFlag
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	client := mbzhttp.NewClient(settings.UserAgent, time.Duration(settings.TimeoutSeconds)*time.Second)

	gen := generate.NewGenerator(settings, client, func(event generate.ProgressEvent) {
		if !event.Level.Visible(settings.DebugLevel) {
			return
		}
		if event.Level == generate.LevelError {
			fmt.Fprintln(os.Stderr, event.Message)
			return
		}
		fmt.Println(event.Message)
	})

	if _, err := gen.Run(ctx, *urlFlag, settings.OutputFile, *wavFlag); err != nil {
		os.Exit(1)
	}
}
