package handhistory

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lox/handparser/internal/segment"
)

// PokerStars layout: sections are fenced with "*** NAME ***" markers and
// the delimiter leaves an empty group in front of every section name.
// The first boundary sits before HOLE CARDS, the last before SUMMARY.
var (
	starsDelim  = regexp.MustCompile(` ?\*\*\* ?\n?|\n`)
	starsHeader = regexp.MustCompile(
		`^PokerStars Hand #(?P<ident>\d+): ` +
			`(?P<game_type>Tournament) #(?P<tournament_ident>\d+), ` +
			`\$(?P<buyin>\d+\.\d{2})\+\$(?P<rake>\d+\.\d{2}) ` +
			`(?P<currency>USD|EUR) ` +
			`(?P<game>.+) (?P<limit>No Limit) ` +
			`- Level (?P<tournament_level>\S+) ` +
			`\((?P<sb>[\d.]+)/(?P<bb>[\d.]+)\) ` +
			`- .* \[(?P<date>.*)\]$`)
	starsTable     = regexp.MustCompile(`^Table '(.+)' (\d+)-max Seat #(\d+) is the button$`)
	starsSeat      = regexp.MustCompile(`^Seat (\d+): (.+) \((\d+) in chips\)$`)
	starsHoleCards = regexp.MustCompile(`^Dealt to (.+) \[(..) (..)\]$`)
	starsPot       = regexp.MustCompile(`^Total pot (\d+) .*\| Rake (\d+)$`)
	starsBoard     = regexp.MustCompile(`^Board \[([^\]]+)\]$`)
	starsWinner    = regexp.MustCompile(`^Seat (\d+): (.+) collected \((\d+)\)$`)
	starsShowdown  = regexp.MustCompile(`^Seat (\d+): (.+) showed .* and won`)
)

const starsDateLayout = "2006/01/02 15:04:05 ET"

// PokerStarsHand decodes PokerStars tournament exports.
type PokerStarsHand struct {
	raw          string
	text         *segment.Text
	hand         *Hand
	headerParsed bool
	parsed       bool
}

// NewPokerStarsHand segments one raw PokerStars export. Nothing is
// decoded until ParseHeader or Parse is called.
func NewPokerStarsHand(text string) *PokerStarsHand {
	return &PokerStarsHand{
		raw:  strings.TrimSpace(text),
		text: segment.Split(text, starsDelim),
		hand: &Hand{Room: RoomStars},
	}
}

// Hand returns the record populated so far.
func (p *PokerStarsHand) Hand() *Hand { return p.hand }

// Raw returns the trimmed source text.
func (p *PokerStarsHand) Raw() string { return p.raw }

// Fields returns the ordered field projection.
func (p *PokerStarsHand) Fields() []Field { return project(p.hand, starsFields) }

// ParseHeader decodes the first line of the export.
func (p *PokerStarsHand) ParseHeader() error {
	line, _ := p.text.Group(0)
	g := matchGroups(starsHeader, line)
	if g == nil {
		return formatErr(RoomStars, "header", line)
	}

	h := p.hand
	h.Ident = g["ident"]
	h.TournamentIdent = g["tournament_ident"]
	h.TournamentLevel = g["tournament_level"]
	h.Currency = g["currency"]
	if t, ok := NormalizeGameType(g["game_type"]); ok {
		h.GameType = t
	}
	if gm, ok := NormalizeGame(g["game"]); ok {
		h.Game = gm
	}
	if l, ok := NormalizeLimit(g["limit"]); ok {
		h.Limit = l
	}

	var err error
	if h.SB, err = decimal.NewFromString(g["sb"]); err != nil {
		return formatErr(RoomStars, "header", line)
	}
	if h.BB, err = decimal.NewFromString(g["bb"]); err != nil {
		return formatErr(RoomStars, "header", line)
	}
	buyin, err := decimal.NewFromString(g["buyin"])
	if err != nil {
		return formatErr(RoomStars, "header", line)
	}
	h.Buyin = &buyin
	rake, err := decimal.NewFromString(g["rake"])
	if err != nil {
		return formatErr(RoomStars, "header", line)
	}
	h.Rake = &rake

	loc, err := easternTime()
	if err != nil {
		return &ParseError{Room: RoomStars, Section: "date", Err: err}
	}
	if h.Date, err = parseDateIn(g["date"], starsDateLayout, loc); err != nil {
		return formatErr(RoomStars, "date", g["date"])
	}

	p.headerParsed = true
	return nil
}

// Parse decodes the full hand.
func (p *PokerStarsHand) Parse() error {
	if !p.headerParsed {
		if err := p.ParseHeader(); err != nil {
			return err
		}
	}
	if p.parsed {
		return nil
	}

	if err := p.parseTable(); err != nil {
		return err
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
	p.parseStreet("FLOP", &p.hand.FlopActions)
	p.parseStreet("TURN", &p.hand.TurnActions)
	p.parseStreet("RIVER", &p.hand.RiverActions)
	p.hand.ShowDown = p.text.Contains("SHOW DOWN")
	if err := p.parsePot(); err != nil {
		return err
	}
	if err := p.parseBoard(); err != nil {
		return err
	}
	if err := p.parseWinners(); err != nil {
		return err
	}

	p.parsed = true
	return nil
}

func (p *PokerStarsHand) parseTable() error {
	line, _ := p.text.Group(1)
	m := starsTable.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomStars, "table", line)
	}
	h := p.hand
	h.TableName = m[1]
	h.MaxPlayers, _ = strconv.Atoi(m[2])
	h.ButtonSeat, _ = strconv.Atoi(m[3])
	return nil
}

func (p *PokerStarsHand) parseSeats() error {
	h := p.hand
	players := emptySeats(h.MaxPlayers)
	seen := 0
	for i := 2; ; i++ {
		line, ok := p.text.Group(i)
		if !ok {
			break
		}
		m := starsSeat.FindStringSubmatch(line)
		if m == nil {
			// First non-seat line ends the scan.
			break
		}
		seat, _ := strconv.Atoi(m[1])
		if seat < 1 || seat > h.MaxPlayers {
			return structureErr(RoomStars, "seats", line)
		}
		stack, err := decimal.NewFromString(m[3])
		if err != nil {
			return structureErr(RoomStars, "seats", line)
		}
		players[seat-1] = Player{Name: m[2], Stack: stack}
		seen++
	}
	if seen == 0 {
		return structureErr(RoomStars, "seats", "")
	}
	if h.ButtonSeat < 1 || h.ButtonSeat > len(players) {
		return structureErr(RoomStars, "button", "")
	}
	h.Players = players
	h.Button = players[h.ButtonSeat-1].Name
	return nil
}

func (p *PokerStarsHand) parseHoleCards() error {
	b0, ok := p.text.Boundary(0)
	if !ok {
		return structureErr(RoomStars, "hole cards", "")
	}
	line, _ := p.text.Group(b0 + 2)
	m := starsHoleCards.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomStars, "hole cards", line)
	}
	h := p.hand
	h.Hero = m[1]
	h.HeroHoleCards = [2]string{m[2], m[3]}
	h.HeroSeat = h.SeatOf(h.Hero)
	if h.HeroSeat == 0 {
		return structureErr(RoomStars, "hole cards", line)
	}
	return nil
}

func (p *PokerStarsHand) parsePreflop() error {
	b0, _ := p.text.Boundary(0)
	b1, ok := p.text.Boundary(1)
	if !ok {
		return structureErr(RoomStars, "preflop", "")
	}
	p.hand.PreflopActions = p.text.Range(b0+3, b1)
	return nil
}

// parseStreet extracts one street's action lines. A missing marker is
// the normal absent state, not an error. The group after the marker is
// the board echo, so actions start two groups in.
func (p *PokerStarsHand) parseStreet(marker string, actions *[]string) {
	idx, ok := p.text.Find(marker, 0)
	if !ok {
		return
	}
	start := idx + 2
	stop, ok := p.text.NextBoundary(start)
	if !ok {
		return
	}
	*actions = p.text.Range(start, stop)
}

func (p *PokerStarsHand) parsePot() error {
	last, ok := p.text.LastBoundary()
	if !ok {
		return structureErr(RoomStars, "summary", "")
	}
	line, _ := p.text.Group(last + 2)
	m := starsPot.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomStars, "pot", line)
	}
	pot, err := decimal.NewFromString(m[1])
	if err != nil {
		return structureErr(RoomStars, "pot", line)
	}
	p.hand.TotalPot = pot
	return nil
}

// parseBoard recovers street cards from the summary Board line. Stars
// echoes the running board next to each street marker, but the summary
// line is the single authoritative place all streets appear.
func (p *PokerStarsHand) parseBoard() error {
	last, _ := p.text.LastBoundary()
	line, ok := p.text.Group(last + 3)
	if !ok || !strings.HasPrefix(line, "Board") {
		// Hands folded out preflop have no board at all.
		return nil
	}
	m := starsBoard.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomStars, "board", line)
	}
	cards := strings.Fields(m[1])
	if len(cards) < 3 || len(cards) > 5 {
		return structureErr(RoomStars, "board", line)
	}
	h := p.hand
	h.Flop = cards[:3:3]
	if len(cards) > 3 {
		h.Turn = cards[3]
	}
	if len(cards) > 4 {
		h.River = cards[4]
	}
	return nil
}

func (p *PokerStarsHand) parseWinners() error {
	h := p.hand
	last, _ := p.text.LastBoundary()
	seen := make(map[string]bool)
	for _, line := range p.text.Tail(last + 4) {
		var m []string
		switch {
		case !h.ShowDown && strings.Contains(line, "collected"):
			m = starsWinner.FindStringSubmatch(line)
		case h.ShowDown && strings.Contains(line, "won"):
			m = starsShowdown.FindStringSubmatch(line)
		default:
			continue
		}
		if m == nil {
			return structureErr(RoomStars, "winners", line)
		}
		if name := m[2]; !seen[name] {
			seen[name] = true
			h.Winners = append(h.Winners, name)
		}
	}
	if len(h.Winners) == 0 {
		return integrityErr(RoomStars, "winners")
	}
	return nil
}
