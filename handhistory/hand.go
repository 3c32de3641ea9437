package handhistory

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Player is one seat at the table: the player's name and starting stack.
// Unoccupied seats hold an "Empty Seat N" placeholder with a zero stack.
type Player struct {
	Name  string
	Stack decimal.Decimal
}

// Hand is the canonical record of a single played hand. Header fields are
// populated by ParseHeader, the rest by Parse; after both passes the
// record is read-only. Street fields are nil when the street was never
// dealt, which is a normal outcome rather than an error.
type Hand struct {
	Room            Room
	Ident           string
	GameType        GameType
	TournamentIdent string
	TournamentName  string
	TournamentLevel string
	Currency        string
	Buyin           *decimal.Decimal
	Rake            *decimal.Decimal
	Game            Game
	Limit           Limit
	SB              decimal.Decimal
	BB              decimal.Decimal
	Date            time.Time // UTC

	TableName     string
	MaxPlayers    int
	ButtonSeat    int // 1-based
	Button        string
	Hero          string
	HeroSeat      int // 1-based
	HeroHoleCards [2]string
	Players       []Player // seating order, length == MaxPlayers

	Flop  []string
	Turn  string
	River string

	PreflopActions []string
	FlopActions    []string
	TurnActions    []string
	RiverActions   []string

	TotalPot decimal.Decimal
	ShowDown bool
	Winners  []string // de-duplicated, first-seen order

	// Full Tilt reports pot size and players seen per street.
	FlopPot         *decimal.Decimal
	TurnPot         *decimal.Decimal
	RiverPot        *decimal.Decimal
	FlopNumPlayers  int
	TurnNumPlayers  int
	RiverNumPlayers int

	// PKR extras.
	LastIdent string
	MoneyType string
}

// Board derives the community cards from the streets actually found.
// It is never stored: flop absent means no board, and a later street can
// only contribute when every earlier one did.
func (h *Hand) Board() []string {
	if len(h.Flop) == 0 {
		return nil
	}
	board := make([]string, 0, 5)
	board = append(board, h.Flop...)
	if h.Turn != "" {
		board = append(board, h.Turn)
		if h.River != "" {
			board = append(board, h.River)
		}
	}
	return board
}

// SeatOf returns the 1-based seat of the named player, or 0 when the
// player is not seated.
func (h *Hand) SeatOf(name string) int {
	for i, p := range h.Players {
		if p.Name == name {
			return i + 1
		}
	}
	return 0
}

// String implements fmt.Stringer for log output.
func (h *Hand) String() string {
	return fmt.Sprintf("<%s hand #%s>", h.Room, h.Ident)
}

// emptySeats builds the placeholder seat array for a table of the given
// capacity.
func emptySeats(capacity int) []Player {
	players := make([]Player, capacity)
	for i := range players {
		players[i] = Player{Name: fmt.Sprintf("Empty Seat %d", i+1)}
	}
	return players
}

// easternTime is the fixed zone PokerStars and Full Tilt stamp hands in.
var easternTime = sync.OnceValues(func() (*time.Location, error) {
	return time.LoadLocation("US/Eastern")
})

// parseDateIn decodes a room-local timestamp and converts it to UTC.
func parseDateIn(value, layout string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
