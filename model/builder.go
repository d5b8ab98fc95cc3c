package model

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// BuildBlackTiles walks every path from the reference tile and flips the tile
// it lands on. The first malformed path aborts the whole build.
func BuildBlackTiles(paths iter.Seq[string]) (TileSet, error) {
	var (
		black = make(TileSet)
		line  int
	)
	for path := range paths {
		line++
		tile, err := Displacement(path)
		if err != nil {
			return nil, errors.Wrapf(err, "[BuildBlackTiles] failed to decode path on line %d", line)
		}
		black.Toggle(tile)
	}
	return black, nil
}

// Lines yields the lines of text. A trailing newline does not start an extra
// line, but an empty line inside text is an empty path.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		lines := strings.Split(text, "\n")
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		for _, line := range lines {
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// ScanLines reads every line from r, keeping empty lines
func ScanLines(r io.Reader) ([]string, error) {
	var (
		lines   []string
		scanner = bufio.NewScanner(r)
	)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ScanLines] failed to read paths")
	}
	return lines, nil
}
