package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrMalformedToken matches every *MalformedTokenError via errors.Is
var ErrMalformedToken = errors.New("malformed token")

// MalformedTokenError describes where a path stopped decoding
type MalformedTokenError struct {
	Path      string
	Offset    int    // byte offset of the offending character, or len(Path) when truncated
	Char      rune   // offending character, zero when truncated
	Prefix    string // "n" or "s" when the failure is the second half of a token
	Truncated bool   // path ended right after Prefix
}

func (e *MalformedTokenError) Error() string {
	switch {
	case e.Truncated:
		return fmt.Sprintf("%v: path %q ends after %q", ErrMalformedToken, e.Path, e.Prefix)
	case e.Prefix != "":
		return fmt.Sprintf("%v: invalid char %q after %q at offset %d in %q",
			ErrMalformedToken, e.Char, e.Prefix, e.Offset, e.Path)
	default:
		return fmt.Sprintf("%v: invalid char %q at offset %d in %q",
			ErrMalformedToken, e.Char, e.Offset, e.Path)
	}
}

// Is lets errors.Is(err, ErrMalformedToken) match
func (e *MalformedTokenError) Is(target error) bool {
	return target == ErrMalformedToken
}

// Decoder scans a path string left to right, one token per call to Next.
// Once Next returns false, Err reports whether the path was exhausted
// cleanly or stopped on a malformed token.
type Decoder struct {
	path string
	pos  int
	err  error
}

// NewDecoder returns a Decoder positioned at the start of path
func NewDecoder(path string) *Decoder {
	return &Decoder{path: path}
}

// Next decodes the next token
func (d *Decoder) Next() (Direction, bool) {
	if d.err != nil || d.pos >= len(d.path) {
		return 0, false
	}

	start := d.path[d.pos]
	switch start {
	case 'e':
		d.pos++
		return East, true
	case 'w':
		d.pos++
		return West, true
	case 'n', 's':
	default:
		d.fail(d.pos, "")
		return 0, false
	}

	prefix := string(start)
	if d.pos+1 >= len(d.path) {
		d.err = &MalformedTokenError{Path: d.path, Offset: len(d.path), Prefix: prefix, Truncated: true}
		return 0, false
	}

	var dir Direction
	switch second := d.path[d.pos+1]; {
	case start == 'n' && second == 'e':
		dir = NorthEast
	case start == 'n' && second == 'w':
		dir = NorthWest
	case start == 's' && second == 'e':
		dir = SouthEast
	case start == 's' && second == 'w':
		dir = SouthWest
	default:
		d.fail(d.pos+1, prefix)
		return 0, false
	}
	d.pos += 2
	return dir, true
}

// Err returns the decoding error, if any
func (d *Decoder) Err() error {
	return d.err
}

func (d *Decoder) fail(offset int, prefix string) {
	r, _ := utf8.DecodeRuneInString(d.path[offset:])
	d.err = &MalformedTokenError{Path: d.path, Offset: offset, Char: r, Prefix: prefix}
}

// Directions decodes the full token list of a path
func Directions(path string) ([]Direction, error) {
	var (
		dec  = NewDecoder(path)
		dirs = make([]Direction, 0, len(path))
	)
	for dir, ok := dec.Next(); ok; dir, ok = dec.Next() {
		dirs = append(dirs, dir)
	}
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return dirs, nil
}

// Displacement walks path from the origin and returns the tile it ends on
func Displacement(path string) (Axial, error) {
	var (
		dec = NewDecoder(path)
		pos Axial
	)
	for dir, ok := dec.Next(); ok; dir, ok = dec.Next() {
		pos = pos.Step(dir)
	}
	if err := dec.Err(); err != nil {
		return Axial{}, err
	}
	return pos, nil
}
