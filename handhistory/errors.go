package handhistory

import (
	"errors"
	"fmt"
)

// Sentinel error classes. Callers match them with errors.Is; the
// wrapping ParseError names the room and section that failed.
var (
	// ErrFormat means the header line did not match the room's grammar.
	// The body is never parsed after a header failure.
	ErrFormat = errors.New("header format mismatch")

	// ErrStructure means a required body group was absent or malformed
	// where the grammar does not treat it as conditionally optional.
	ErrStructure = errors.New("malformed hand structure")

	// ErrIntegrity means the parse completed structurally but produced a
	// record violating an invariant, such as an empty winner set.
	ErrIntegrity = errors.New("hand integrity violation")
)

// ParseError describes a decoding failure with enough context to report
// the offending room, section and line.
type ParseError struct {
	Room    Room
	Section string
	Line    string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line != "" {
		return fmt.Sprintf("%s %s: %v: %q", e.Room, e.Section, e.Err, e.Line)
	}
	return fmt.Sprintf("%s %s: %v", e.Room, e.Section, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func formatErr(room Room, section, line string) error {
	return &ParseError{Room: room, Section: section, Line: line, Err: ErrFormat}
}

func structureErr(room Room, section, line string) error {
	return &ParseError{Room: room, Section: section, Line: line, Err: ErrStructure}
}

func integrityErr(room Room, section string) error {
	return &ParseError{Room: room, Section: section, Err: ErrIntegrity}
}
