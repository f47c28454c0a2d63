package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cardcaller/musicbingo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPlaylistSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "playlist.txt")
	content := "Song A\n\nSong B\n  \nSong C\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	songs, err := readPlaylist(path)
	require.NoError(t, err)
	assert.Equal(t, []bingo.Song{"Song A", "Song B", "Song C"}, songs)
}

func TestReadPlaylistRejectsReservedFreeSpaceMarker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "playlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("Song A\nFREE SPACE\n"), 0644))

	_, err := readPlaylist(path)
	assert.Error(t, err)
}

func TestReadPlaylistMissingFile(t *testing.T) {
	_, err := readPlaylist(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Error(t, err)
}
