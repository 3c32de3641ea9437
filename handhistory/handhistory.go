// Package handhistory decodes raw textual hand-history exports from
// poker rooms into a canonical Hand record. Each room emits a distinct
// but fixed layout; one parser type per room knows that layout's
// delimiters, header grammar and body extraction steps. The caller
// selects the room up front; there is no auto-detection.
//
// Parsing is two-phase. ParseHeader validates and decodes only the
// header, which is cheap and lets a caller filter large batches before
// committing to full extraction. Parse runs the header pass first when
// needed and then decodes the body. Parsers hold no shared state, so any
// number of hands may be parsed concurrently.
package handhistory

import "fmt"

// Parser is the shared contract implemented by every room variant.
type Parser interface {
	// ParseHeader decodes the hand's header fields. It fails with
	// ErrFormat before any body extraction when the header does not
	// match the room's grammar.
	ParseHeader() error

	// Parse decodes the full hand, running ParseHeader first if it has
	// not been run. Header fields already extracted are never
	// overwritten.
	Parse() error

	// Hand returns the record populated so far.
	Hand() *Hand

	// Fields returns the ordered projection of the record for generic
	// serialization. Internal bookkeeping (raw text, parse flags) is
	// excluded.
	Fields() []Field

	// Raw returns the trimmed source text the parser was built over. It
	// is an attribute of the parser, not of the record: Fields never
	// carries it.
	Raw() string
}

// New returns the parser for the given room over one raw hand export.
func New(room Room, text string) (Parser, error) {
	switch room {
	case RoomStars:
		return NewPokerStarsHand(text), nil
	case RoomFTP:
		return NewFullTiltHand(text), nil
	case RoomPKR:
		return NewPKRHand(text), nil
	default:
		return nil, fmt.Errorf("handhistory: unsupported room %q", room)
	}
}
