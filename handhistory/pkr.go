package handhistory

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lox/handparser/internal/segment"
)

// PKR has no "***" fences. Boundaries fall out of the keyword
// delimiters instead: a group is empty wherever a line starts with
// "Moving", "Taking" or "Dealing", or at the "Dealing Cards" divider.
// That puts the first boundary before the button move, the second
// before the hero's cards, one before each street and the last before
// the rake/showdown block.
var (
	pkrDelim  = regexp.MustCompile(`Dealing |\nDealing Cards\n|Taking |Moving |\n`)
	pkrBlinds = regexp.MustCompile(`^Blinds are now \$([\d.]+) / \$([\d.]+)$`)
	pkrSeat   = regexp.MustCompile(`^Seat (\d\d?): (.+) - \$([\d.]+) ?(.*)$`)
	pkrButton = regexp.MustCompile(`to seat (\d+)$`)
	pkrDealt  = regexp.MustCompile(`^\[(. .)\]\[(. .)\] to (.+)$`)
	pkrCard   = regexp.MustCompile(`\[(. .)\]`)
	pkrSizes  = regexp.MustCompile(`^Pot sizes: \$([\d.]+)$`)
	pkrRake   = regexp.MustCompile(`Rake of \$([\d.]+) from pot \d+$`)
	pkrWin    = regexp.MustCompile(`^(.+?) wins \$([\d.]+)( with: .*)?$`)
)

const (
	pkrDateLayout = "02 Jan 2006 15:04:05"

	// PKR ran 10-seat tables and never declares capacity in the export.
	pkrMaxSeats = 10
)

// Header lines are fixed prefixes rather than a single grammar.
var pkrHeaderPrefixes = []string{
	"Table ",
	"Starting Hand #",
	"Start time of hand: ",
	"Last Hand #",
	"Game Type: ",
	"Limit Type: ",
	"Table Type: ",
	"Money Type: ",
}

// Streets live at fixed boundary ordinals in a PKR export.
var pkrStreetSections = map[string]int{
	"Flop":  2,
	"Turn":  3,
	"River": 4,
}

// PKRHand decodes PKR cash-game exports. PKR stamps hands in UTC and
// always deals in dollars, so Currency is fixed to USD and Buyin is the
// room's standard 100 big blinds.
type PKRHand struct {
	raw          string
	text         *segment.Text
	hand         *Hand
	headerParsed bool
	parsed       bool
}

// NewPKRHand segments one raw PKR export.
func NewPKRHand(text string) *PKRHand {
	return &PKRHand{
		raw:  strings.TrimSpace(text),
		text: segment.Split(text, pkrDelim),
		hand: &Hand{Room: RoomPKR},
	}
}

// Hand returns the record populated so far.
func (p *PKRHand) Hand() *Hand { return p.hand }

// Raw returns the trimmed source text.
func (p *PKRHand) Raw() string { return p.raw }

// Fields returns the ordered field projection.
func (p *PKRHand) Fields() []Field { return project(p.hand, pkrFields) }

// headerLine returns group i stripped of its required prefix.
func (p *PKRHand) headerLine(i int, prefix string) (string, error) {
	line, ok := p.text.Group(i)
	if !ok || !strings.HasPrefix(line, prefix) {
		return "", formatErr(RoomPKR, "header", line)
	}
	return line[len(prefix):], nil
}

// ParseHeader decodes the ten fixed header groups.
func (p *PKRHand) ParseHeader() error {
	h := p.hand
	values := make([]string, len(pkrHeaderPrefixes))
	for i, prefix := range pkrHeaderPrefixes {
		v, err := p.headerLine(i, prefix)
		if err != nil {
			return err
		}
		values[i] = v
	}
	h.TableName = values[0]
	h.Ident = values[1]
	h.LastIdent = values[3]
	if g, ok := NormalizeGame(values[4]); ok {
		h.Game = g
	}
	if l, ok := NormalizeLimit(values[5]); ok {
		h.Limit = l
	}
	if t, ok := NormalizeGameType(values[6]); ok {
		h.GameType = t
	}
	h.MoneyType = NormalizeMoneyType(values[7])

	var err error
	if h.Date, err = parseDateIn(values[2], pkrDateLayout, time.UTC); err != nil {
		return formatErr(RoomPKR, "date", values[2])
	}

	blindLine, _ := p.text.Group(8)
	m := pkrBlinds.FindStringSubmatch(blindLine)
	if m == nil {
		return formatErr(RoomPKR, "header", blindLine)
	}
	if h.SB, err = decimal.NewFromString(m[1]); err != nil {
		return formatErr(RoomPKR, "header", blindLine)
	}
	if h.BB, err = decimal.NewFromString(m[2]); err != nil {
		return formatErr(RoomPKR, "header", blindLine)
	}
	buyin := h.BB.Mul(decimal.NewFromInt(100))
	h.Buyin = &buyin

	buttonValue, err := p.headerLine(9, "Button is at seat ")
	if err != nil {
		return err
	}
	if h.ButtonSeat, err = strconv.Atoi(buttonValue); err != nil {
		return formatErr(RoomPKR, "header", buttonValue)
	}

	h.Currency = "USD"

	p.headerParsed = true
	return nil
}

// Parse decodes the full hand.
func (p *PKRHand) Parse() error {
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
	if err := p.parseHero(); err != nil {
		return err
	}
	if err := p.parsePreflop(); err != nil {
		return err
	}
	for _, street := range []string{"Flop", "Turn", "River"} {
		if err := p.parseStreet(street); err != nil {
			return err
		}
	}
	if err := p.parseShowdown(); err != nil {
		return err
	}

	p.parsed = true
	return nil
}

func (p *PKRHand) parseSeats() error {
	h := p.hand
	players := emptySeats(pkrMaxSeats)
	highest := 0
	for i := 10; ; i++ {
		line, ok := p.text.Group(i)
		if !ok {
			break
		}
		m := pkrSeat.FindStringSubmatch(line)
		if m == nil {
			break
		}
		seat, _ := strconv.Atoi(m[1])
		if seat < 1 || seat > pkrMaxSeats {
			return structureErr(RoomPKR, "seats", line)
		}
		stack, err := decimal.NewFromString(m[3])
		if err != nil {
			return structureErr(RoomPKR, "seats", line)
		}
		players[seat-1] = Player{Name: m[2], Stack: stack}
		if seat > highest {
			highest = seat
		}
	}
	if highest == 0 {
		return structureErr(RoomPKR, "seats", "")
	}
	h.MaxPlayers = highest
	h.Players = players[:highest:highest]

	// The button-move group right after the first boundary is
	// authoritative; the header's button line merely repeats it.
	b0, ok := p.text.Boundary(0)
	if !ok {
		return structureErr(RoomPKR, "button", "")
	}
	line, _ := p.text.Group(b0 + 1)
	m := pkrButton.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomPKR, "button", line)
	}
	h.ButtonSeat, _ = strconv.Atoi(m[1])
	if h.ButtonSeat < 1 || h.ButtonSeat > h.MaxPlayers {
		return structureErr(RoomPKR, "button", line)
	}
	h.Button = h.Players[h.ButtonSeat-1].Name
	return nil
}

// collapseCard turns PKR's "A s" notation into the canonical "As".
func collapseCard(card string) string {
	return card[:1] + card[2:]
}

func (p *PKRHand) parseHero() error {
	b1, ok := p.text.Boundary(1)
	if !ok {
		return structureErr(RoomPKR, "hole cards", "")
	}
	line, _ := p.text.Group(b1 + 1)
	m := pkrDealt.FindStringSubmatch(line)
	if m == nil {
		return structureErr(RoomPKR, "hole cards", line)
	}
	h := p.hand
	h.HeroHoleCards = [2]string{collapseCard(m[1]), collapseCard(m[2])}
	h.Hero = m[3]
	h.HeroSeat = h.SeatOf(h.Hero)
	if h.HeroSeat == 0 {
		return structureErr(RoomPKR, "hole cards", line)
	}
	return nil
}

// parsePreflop collects action groups up to, but not including, the
// pot-sizes group that precedes the next section.
func (p *PKRHand) parsePreflop() error {
	b1, _ := p.text.Boundary(1)
	start := b1 + 2
	nb, ok := p.text.NextBoundary(start + 1)
	if !ok {
		return structureErr(RoomPKR, "preflop", "")
	}
	p.hand.PreflopActions = p.text.Range(start, nb-1)
	return nil
}

// parseStreet addresses a street by its boundary ordinal. The group
// after the boundary must carry the street's own label: when a hand
// ends early the ordinal points into the rake section instead, which is
// the street-absent case, not an error.
func (p *PKRHand) parseStreet(street string) error {
	section, ok := pkrStreetSections[street]
	if !ok {
		return nil
	}
	b, ok := p.text.Boundary(section)
	if !ok {
		return nil
	}
	start := b + 1
	line, ok := p.text.Group(start)
	if !ok || !strings.HasPrefix(line, street+" ") {
		return nil
	}

	var cards []string
	for _, m := range pkrCard.FindAllStringSubmatch(line, -1) {
		cards = append(cards, collapseCard(m[1]))
	}
	if len(cards) == 0 {
		return structureErr(RoomPKR, "street "+street, line)
	}

	nb, ok := p.text.NextBoundary(start + 1)
	if !ok {
		return structureErr(RoomPKR, "street "+street, line)
	}
	actions := p.text.Range(start+1, nb-1)

	sizesLine, _ := p.text.Group(start - 2)
	sm := pkrSizes.FindStringSubmatch(sizesLine)
	if sm == nil {
		return structureErr(RoomPKR, "street "+street, sizesLine)
	}
	pot, err := decimal.NewFromString(sm[1])
	if err != nil {
		return structureErr(RoomPKR, "street "+street, sizesLine)
	}

	h := p.hand
	switch street {
	case "Flop":
		if len(cards) < 3 {
			return structureErr(RoomPKR, "street Flop", line)
		}
		h.Flop = cards[:3:3]
		h.FlopActions = actions
		h.FlopPot = &pot
	case "Turn":
		h.Turn = cards[0]
		h.TurnActions = actions
		h.TurnPot = &pot
	case "River":
		h.River = cards[0]
		h.RiverActions = actions
		h.RiverPot = &pot
	}
	return nil
}

// parseShowdown extracts the rake, the winners and the total pot. PKR
// reports no pot total, so it is reconstructed as rake plus winnings,
// which also makes split pots sum correctly.
func (p *PKRHand) parseShowdown() error {
	h := p.hand
	last, ok := p.text.LastBoundary()
	if !ok {
		return structureErr(RoomPKR, "summary", "")
	}
	start := last + 1
	rakeLine, _ := p.text.Group(start)
	rm := pkrRake.FindStringSubmatch(rakeLine)
	if rm == nil {
		return structureErr(RoomPKR, "rake", rakeLine)
	}
	rake, err := decimal.NewFromString(rm[1])
	if err != nil {
		return structureErr(RoomPKR, "rake", rakeLine)
	}
	h.Rake = &rake

	total := rake
	seen := make(map[string]bool)
	for _, line := range p.text.Tail(start) {
		switch {
		case strings.Contains(line, "shows"):
			h.ShowDown = true
		case strings.Contains(line, "wins"):
			m := pkrWin.FindStringSubmatch(line)
			if m == nil {
				return structureErr(RoomPKR, "winners", line)
			}
			amount, err := decimal.NewFromString(m[2])
			if err != nil {
				return structureErr(RoomPKR, "winners", line)
			}
			total = total.Add(amount)
			if name := m[1]; !seen[name] {
				seen[name] = true
				h.Winners = append(h.Winners, name)
			}
		}
	}
	if len(h.Winners) == 0 {
		return integrityErr(RoomPKR, "winners")
	}
	h.TotalPot = total
	return nil
}
