package handhistory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lox/handparser/internal/segment"
)

// Full Tilt sections are fenced the same way as PokerStars, but the
// header is decoded by four independent sub-patterns, the table has no
// declared capacity, and each street group embeds the running pot and
// the number of players who saw the street.
var (
	ftpDelim      = regexp.MustCompile(` ?\*\*\* ?\n?|\n`)
	ftpTournament = regexp.MustCompile(
		`^Full Tilt Poker Game #(?P<ident>\d+): ` +
			`(?P<tournament_name>.+) \((?P<tournament_ident>\d+)\), ` +
			`Table (?P<table_name>\d+) - `)
	ftpGame      = regexp.MustCompile(` - (?P<limit>NL|PL|FL|No Limit|Pot Limit|Fix Limit) (?P<game>.+?) - `)
	ftpBlinds    = regexp.MustCompile(` - (\d+)/(\d+) - `)
	ftpDate      = regexp.MustCompile(` \[(.*)\]$`)
	ftpSeat      = regexp.MustCompile(`^Seat (\d+): (.+) \(([\d,]+)\)$`)
	ftpButton    = regexp.MustCompile(`^The button is in seat #(\d+)$`)
	ftpHoleCards = regexp.MustCompile(`^Dealt to (.+) \[(..) (..)\]$`)
	ftpStreet    = regexp.MustCompile(`\[([^\]]*)\] \(Total Pot: (\d+), (\d+) Players`)
	ftpPot       = regexp.MustCompile(`^Total pot (\d+) .*\| Rake (\d+)$`)
	ftpWinner    = regexp.MustCompile(`^Seat (\d+): (.+) collected \((\d+)\),`)
	ftpShowdown  = regexp.MustCompile(`^Seat (\d+): (.+) showed .* and won`)
)

const (
	ftpDateLayout = "15:04:05 ET - 2006/01/02"

	// Full Tilt exports never state table capacity; 9-max is the
	// largest table the room ran.
	ftpMaxSeats = 9
)

// FullTiltHand decodes Full Tilt Poker tournament exports.
type FullTiltHand struct {
	raw          string
	text         *segment.Text
	hand         *Hand
	headerParsed bool
	parsed       bool
}

// NewFullTiltHand segments one raw Full Tilt export.
func NewFullTiltHand(text string) *FullTiltHand {
	return &FullTiltHand{
		raw:  strings.TrimSpace(text),
		text: segment.Split(text, ftpDelim),
		hand: &Hand{Room: RoomFTP},
	}
}

// Hand returns the record populated so far.
func (p *FullTiltHand) Hand() *Hand { return p.hand }

// Raw returns the trimmed source text.
func (p *FullTiltHand) Raw() string { return p.raw }

// Fields returns the ordered field projection.
func (p *FullTiltHand) Fields() []Field { return project(p.hand, ftpFields) }

// ParseHeader decodes the single header line. Tournament level, buy-in,
// rake and currency are not present in Full Tilt exports and stay unset.
func (p *FullTiltHand) ParseHeader() error {
	line, _ := p.text.Group(0)

	g := matchGroups(ftpTournament, line)
	if g == nil {
		return formatErr(RoomFTP, "header", line)
	}
	h := p.hand
	h.GameType = TypeTour
	h.Ident = g["ident"]
	h.TournamentName = g["tournament_name"]
	h.TournamentIdent = g["tournament_ident"]
	h.TableName = g["table_name"]

	gm := matchGroups(ftpGame, line)
	if gm == nil {
		return formatErr(RoomFTP, "header", line)
	}
	if l, ok := NormalizeLimit(gm["limit"]); ok {
		h.Limit = l
	}
	if game, ok := NormalizeGame(gm["game"]); ok {
		h.Game = game
	}

	bm := ftpBlinds.FindStringSubmatch(line)
	if bm == nil {
		return formatErr(RoomFTP, "header", line)
	}
	var err error
	if h.SB, err = decimal.NewFromString(bm[1]); err != nil {
		return formatErr(RoomFTP, "header", line)
	}
	if h.BB, err = decimal.NewFromString(bm[2]); err != nil {
		return formatErr(RoomFTP, "header", line)
	}

	dm := ftpDate.FindStringSubmatch(line)
	if dm == nil {
		return formatErr(RoomFTP, "header", line)
	}
	loc, err := easternTime()
	if err != nil {
		return &ParseError{Room: RoomFTP, Section: "date", Err: err}
	}
	if h.Date, err = parseDateIn(dm[1], ftpDateLayout, loc); err != nil {
		return formatErr(RoomFTP, "date", dm[1])
	}

	p.headerParsed = true
	return nil
}

// Parse decodes the full hand.
func (p *FullTiltHand) Parse() error {
	if !p.headerParsed {
		if err := p.ParseHeader(); err != nil {
			return err
		}
	}
	if p.parsed {
		return nil
	}

	if err := p.parseSeats(); err != nil {
		return err
	}
	if err := p.parseHoleCards(); err != nil {
		return err
	}
	if err := p.parsePreflop(); err != nil {
		return err
	}
	for _, street := range []string{"FLOP", "TURN", "RIVER"} {
		if err := p.parseStreet(street); err != nil {
			return err
		}
	}
	p.hand.ShowDown = p.text.Contains("SHOW DOWN")
	if err := p.parsePot(); err != nil {
		return err
	}
	if err := p.parseWinners(); err != nil {
		return err
	}

	p.parsed = true
	return nil
}

// parseSeats walks the seat declarations directly below the header.
// Table capacity is the highest seat number observed; the placeholder
// array is trimmed down to it afterwards.
func (p *FullTiltHand) parseSeats() error {
	h := p.hand
	players := emptySeats(ftpMaxSeats)
	highest := 0
	for i := 1; ; i++ {
		line, ok := p.text.Group(i)
		if !ok {
			break
		}
		m := ftpSeat.FindStringSubmatch(line)
		if m == nil {
			break
		}
		seat, _ := strconv.Atoi(m[1])
		if seat < 1 || seat > ftpMaxSeats {
			return structureErr(RoomFTP, "seats", line)
		}
		stack, err := decimal.NewFromString(strings.ReplaceAll(m[3], ",", ""))
		if err != nil {
			return structureErr(RoomFTP, "seats", line)
		}
		players[seat-1] = Player{Name: m[2], Stack: stack}
		if seat > highest {
			highest = seat
		}
	}
	if highest == 0 {
		return structureErr(RoomFTP, "seats", "")
	}
	h.MaxPlayers = highest
	h.Players = players[:highest:highest]

	// The button declaration is the standalone group just before the
	// first boundary.
	b0, ok := p.text.Boundary(0)
	if !ok {
		return structureErr(RoomFTP, "button", "")
	}
	line, _ := p.text.Group(b0 - 1)
	m := ftpButton.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomFTP, "button", line)
	}
	h.ButtonSeat, _ = strconv.Atoi(m[1])
	if h.ButtonSeat < 1 || h.ButtonSeat > h.MaxPlayers {
		return structureErr(RoomFTP, "button", line)
	}
	h.Button = h.Players[h.ButtonSeat-1].Name
	return nil
}

func (p *FullTiltHand) parseHoleCards() error {
	b0, ok := p.text.Boundary(0)
	if !ok {
		return structureErr(RoomFTP, "hole cards", "")
	}
	line, _ := p.text.Group(b0 + 2)
	m := ftpHoleCards.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomFTP, "hole cards", line)
	}
	h := p.hand
	h.Hero = m[1]
	h.HeroHoleCards = [2]string{m[2], m[3]}
	h.HeroSeat = h.SeatOf(h.Hero)
	if h.HeroSeat == 0 {
		return structureErr(RoomFTP, "hole cards", line)
	}
	return nil
}

func (p *FullTiltHand) parsePreflop() error {
	b0, _ := p.text.Boundary(0)
	b1, ok := p.text.Boundary(1)
	if !ok {
		return structureErr(RoomFTP, "preflop", "")
	}
	p.hand.PreflopActions = p.text.Range(b0+3, b1)
	return nil
}

// parseStreet extracts community cards, the running pot, the number of
// players who saw the street and the action lines. A missing marker is
// the normal absent state; a present marker with a malformed board
// group is a structural failure.
func (p *FullTiltHand) parseStreet(marker string) error {
	idx, ok := p.text.Find(marker, 0)
	if !ok {
		return nil
	}
	start := idx + 1
	line, ok := p.text.Group(start)
	if !ok {
		return structureErr(RoomFTP, "street "+marker, "")
	}
	m := ftpStreet.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomFTP, "street "+marker, line)
	}
	cards := strings.Fields(m[1])
	if len(cards) == 0 {
		return structureErr(RoomFTP, "street "+marker, line)
	}
	pot, err := decimal.NewFromString(m[2])
	if err != nil {
		return structureErr(RoomFTP, "street "+marker, line)
	}
	num, _ := strconv.Atoi(m[3])
	stop, ok := p.text.NextBoundary(start + 1)
	if !ok {
		return structureErr(RoomFTP, "street "+marker, line)
	}
	actions := p.text.Range(start+1, stop)

	h := p.hand
	switch marker {
	case "FLOP":
		if len(cards) < 3 {
			return structureErr(RoomFTP, "street FLOP", line)
		}
		h.Flop = cards[:3:3]
		h.FlopActions = actions
		h.FlopPot = &pot
		h.FlopNumPlayers = num
	case "TURN":
		// The line echoes the whole board, but the pattern anchors on the
		// pot note, so the matched bracket is the last one: just the new
		// card.
		h.Turn = cards[len(cards)-1]
		h.TurnActions = actions
		h.TurnPot = &pot
		h.TurnNumPlayers = num
	case "RIVER":
		h.River = cards[len(cards)-1]
		h.RiverActions = actions
		h.RiverPot = &pot
		h.RiverNumPlayers = num
	}
	return nil
}

func (p *FullTiltHand) parsePot() error {
	last, ok := p.text.LastBoundary()
	if !ok {
		return structureErr(RoomFTP, "summary", "")
	}
	line, _ := p.text.Group(last + 2)
	m := ftpPot.FindStringSubmatch(strings.ReplaceAll(line, ",", ""))
	if m == nil {
		return structureErr(RoomFTP, "pot", line)
	}
	pot, err := decimal.NewFromString(m[1])
	if err != nil {
		return structureErr(RoomFTP, "pot", line)
	}
	p.hand.TotalPot = pot
	return nil
}

func (p *FullTiltHand) parseWinners() error {
	h := p.hand
	last, _ := p.text.LastBoundary()
	seen := make(map[string]bool)
	for _, line := range p.text.Tail(last + 4) {
		var m []string
		switch {
		case !h.ShowDown && strings.Contains(line, "collected"):
			m = ftpWinner.FindStringSubmatch(line)
		case h.ShowDown && strings.Contains(line, "won"):
			m = ftpShowdown.FindStringSubmatch(line)
		default:
			continue
		}
		if m == nil {
			return structureErr(RoomFTP, "winners", line)
		}
		if name := m[2]; !seen[name] {
			seen[name] = true
			h.Winners = append(h.Winners, name)
		}
	}
	if len(h.Winners) == 0 {
		return integrityErr(RoomFTP, "winners")
	}
	return nil
}
