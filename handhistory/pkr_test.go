package handhistory

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cash-game hand that runs to the river and a showdown. PKR writes cards
// with a space inside the brackets and prints a pot-sizes line before
// every street deal.
const pkrHandShowdown = `Table #52121155 - Rapanui
Starting Hand #53349139
Start time of hand: 04 Oct 2013 01:04:42
Last Hand #53349119
Game Type: Texas Hold'em
Limit Type: No Limit
Table Type: Ring
Money Type: Real money
Blinds are now $0.25 / $0.50
Button is at seat 3
Seat 1: LionTop - $13.22
Seat 3: pkrpro2013 - $46.50
Seat 6: Venom90 - $62.00
Seat 8: W2lkm2n - $50.00
Moving Button to seat 3
pkrpro2013 posts small blind ($0.25)
Venom90 posts big blind ($0.50)
Dealing Cards
Dealing [A s][K d] to W2lkm2n
W2lkm2n raises to $1.50
LionTop folds
pkrpro2013 calls $1.25
Venom90 folds
Pot sizes: $3.50
Dealing Flop [9 h][3 d][K s]
pkrpro2013 checks
W2lkm2n bets $2.00
pkrpro2013 calls $2.00
Pot sizes: $7.50
Dealing Turn [7 c]
pkrpro2013 checks
W2lkm2n checks
Pot sizes: $7.50
Dealing River [2 h]
pkrpro2013 bets $3.00
W2lkm2n calls $3.00
Pot sizes: $13.50
Taking Rake of $0.65 from pot 1
pkrpro2013 shows [Q c][Q h]
W2lkm2n shows [A s][K d]
W2lkm2n wins $12.85 with: a pair of kings
`

// Fold-out before the flop: no streets, no showdown, and the win line
// carries no hand description.
const pkrHandPreflopOnly = `Table #52121155 - Rapanui
Starting Hand #53349140
Start time of hand: 04 Oct 2013 01:06:10
Last Hand #53349139
Game Type: Texas Hold'em
Limit Type: No Limit
Table Type: Ring
Money Type: Real money
Blinds are now $0.25 / $0.50
Button is at seat 6
Seat 1: LionTop - $13.22
Seat 3: pkrpro2013 - $45.10
Seat 6: Venom90 - $62.00
Seat 8: W2lkm2n - $50.00
Moving Button to seat 6
W2lkm2n posts small blind ($0.25)
LionTop posts big blind ($0.50)
Dealing Cards
Dealing [9 h][2 c] to W2lkm2n
pkrpro2013 folds
Venom90 folds
W2lkm2n folds
LionTop mucks
Pot sizes: $0.75
Taking Rake of $0.00 from pot 1
LionTop wins $0.75
`

func parsePKR(t *testing.T, text string) *PKRHand {
	t.Helper()
	p := NewPKRHand(text)
	require.NoError(t, p.Parse())
	return p
}

func decimalEqual(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}

func TestPKRHeader(t *testing.T) {
	p := NewPKRHand(pkrHandShowdown)
	require.NoError(t, p.ParseHeader())

	h := p.Hand()
	assert.Equal(t, RoomPKR, h.Room)
	assert.Equal(t, "#52121155 - Rapanui", h.TableName)
	assert.Equal(t, "53349139", h.Ident)
	assert.Equal(t, "53349119", h.LastIdent)
	assert.Equal(t, GameHoldem, h.Game)
	assert.Equal(t, LimitNL, h.Limit)
	assert.Equal(t, TypeCash, h.GameType)
	assert.Equal(t, MoneyReal, h.MoneyType)
	assert.Equal(t, "USD", h.Currency)
	decimalEqual(t, "0.25", h.SB)
	decimalEqual(t, "0.50", h.BB)
	require.NotNil(t, h.Buyin)
	decimalEqual(t, "50", *h.Buyin)
	assert.Equal(t, 3, h.ButtonSeat)
	// PKR stamps hands in UTC already.
	assert.Equal(t, time.Date(2013, 10, 4, 1, 4, 42, 0, time.UTC), h.Date)
}

func TestPKRBodyShowdown(t *testing.T) {
	h := parsePKR(t, pkrHandShowdown).Hand()

	assert.Equal(t, 8, h.MaxPlayers)
	require.Len(t, h.Players, 8)
	assert.Equal(t, "LionTop", h.Players[0].Name)
	assert.Equal(t, "Empty Seat 2", h.Players[1].Name)
	assert.Equal(t, "pkrpro2013", h.Players[2].Name)
	assert.Equal(t, "Venom90", h.Players[5].Name)
	assert.Equal(t, "W2lkm2n", h.Players[7].Name)
	decimalEqual(t, "46.50", h.Players[2].Stack)

	assert.Equal(t, 3, h.ButtonSeat)
	assert.Equal(t, "pkrpro2013", h.Button)
	assert.Equal(t, "W2lkm2n", h.Hero)
	assert.Equal(t, 8, h.HeroSeat)
	assert.Equal(t, [2]string{"As", "Kd"}, h.HeroHoleCards)

	assert.Equal(t, []string{
		"W2lkm2n raises to $1.50",
		"LionTop folds",
		"pkrpro2013 calls $1.25",
		"Venom90 folds",
	}, h.PreflopActions)

	assert.Equal(t, []string{"9h", "3d", "Ks"}, h.Flop)
	assert.Equal(t, "7c", h.Turn)
	assert.Equal(t, "2h", h.River)
	assert.Equal(t, []string{"9h", "3d", "Ks", "7c", "2h"}, h.Board())

	assert.Equal(t, []string{
		"pkrpro2013 checks",
		"W2lkm2n bets $2.00",
		"pkrpro2013 calls $2.00",
	}, h.FlopActions)
	assert.Len(t, h.TurnActions, 2)
	assert.Len(t, h.RiverActions, 2)

	require.NotNil(t, h.FlopPot)
	decimalEqual(t, "3.50", *h.FlopPot)
	require.NotNil(t, h.TurnPot)
	decimalEqual(t, "7.50", *h.TurnPot)
	require.NotNil(t, h.RiverPot)
	decimalEqual(t, "7.50", *h.RiverPot)

	require.NotNil(t, h.Rake)
	decimalEqual(t, "0.65", *h.Rake)
	// Rake plus winnings reconstructs the pot.
	decimalEqual(t, "13.50", h.TotalPot)
	assert.True(t, h.ShowDown)
	assert.Equal(t, []string{"W2lkm2n"}, h.Winners)
}

func TestPKRBodyPreflopOnly(t *testing.T) {
	h := parsePKR(t, pkrHandPreflopOnly).Hand()

	assert.Equal(t, 6, h.ButtonSeat)
	assert.Equal(t, "Venom90", h.Button)
	assert.Equal(t, [2]string{"9h", "2c"}, h.HeroHoleCards)

	// The pot-sizes group before the next section is not an action.
	assert.Equal(t, []string{
		"pkrpro2013 folds",
		"Venom90 folds",
		"W2lkm2n folds",
		"LionTop mucks",
	}, h.PreflopActions)

	assert.Nil(t, h.Flop)
	assert.Empty(t, h.Turn)
	assert.Empty(t, h.River)
	assert.Nil(t, h.Board())
	assert.Nil(t, h.FlopActions)
	assert.Nil(t, h.FlopPot)

	require.NotNil(t, h.Rake)
	decimalEqual(t, "0.00", *h.Rake)
	decimalEqual(t, "0.75", h.TotalPot)
	assert.False(t, h.ShowDown)
	assert.Equal(t, []string{"LionTop"}, h.Winners)
}

func TestPKRHeaderButtonSeat(t *testing.T) {
	// The header states the button with "at seat"; the body group after
	// the button move says "to seat". Both must decode.
	p := NewPKRHand(pkrHandPreflopOnly)
	require.NoError(t, p.ParseHeader())
	assert.Equal(t, 6, p.Hand().ButtonSeat)
	assert.Empty(t, p.Hand().Button)

	require.NoError(t, p.Parse())
	assert.Equal(t, 6, p.Hand().ButtonSeat)
	assert.Equal(t, "Venom90", p.Hand().Button)
}

func TestPKRHeaderPrefixMismatch(t *testing.T) {
	text := strings.Replace(pkrHandShowdown, "Last Hand #53349119", "Previous Hand #53349119", 1)
	err := NewPKRHand(text).ParseHeader()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, RoomPKR, perr.Room)
	assert.Equal(t, "header", perr.Section)
}

func TestPKRNoSeatLinesIsStructural(t *testing.T) {
	seatBlock := `Seat 1: LionTop - $13.22
Seat 3: pkrpro2013 - $46.50
Seat 6: Venom90 - $62.00
Seat 8: W2lkm2n - $50.00
`
	text := strings.Replace(pkrHandShowdown, seatBlock, "", 1)
	err := NewPKRHand(text).Parse()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructure)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "seats", perr.Section)
}

func TestPKRSeatAboveCapacityIsStructural(t *testing.T) {
	text := strings.Replace(pkrHandShowdown, "Seat 8: W2lkm2n - $50.00", "Seat 11: W2lkm2n - $50.00", 1)
	err := NewPKRHand(text).Parse()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStructure)
}

func TestPKRNoWinnersIsIntegrityError(t *testing.T) {
	text := strings.Replace(pkrHandPreflopOnly, "LionTop wins $0.75", "LionTop was awarded $0.75", 1)
	err := NewPKRHand(text).Parse()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestPKRFieldsIncludeExtras(t *testing.T) {
	p := parsePKR(t, pkrHandShowdown)
	byName := make(map[string]any)
	for _, f := range p.Fields() {
		byName[f.Name] = f.Value
	}
	assert.Equal(t, "53349119", byName["last_ident"])
	assert.Equal(t, MoneyReal, byName["money_type"])
	assert.Contains(t, byName, "flop_pot")
	assert.NotContains(t, byName, "flop_num_players")
}
