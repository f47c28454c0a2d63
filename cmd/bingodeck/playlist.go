package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cardcaller/musicbingo"
)

// readPlaylist reads an ordered playlist from path: one song name per
// line, blank lines skipped. This is the host-side ingestion boundary
// spec.md §6 describes — the core never reads a file itself, it only
// consumes the resulting []bingo.Song.
func readPlaylist(path string) ([]bingo.Song, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening playlist file: %w", err)
	}
	defer f.Close()

	var songs []bingo.Song
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		song, err := bingo.ParseSong(line)
		if err != nil {
			return nil, fmt.Errorf("playlist line %d: %w", lineNo, err)
		}
		songs = append(songs, song)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading playlist file: %w", err)
	}

	return songs, nil
}
