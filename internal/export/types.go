package export

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lox/handparser/handhistory"
)

// PlayerRecord is one seat in serialized form.
type PlayerRecord struct {
	Name  string `toml:"name" json:"name"`
	Stack string `toml:"stack" json:"stack"`
}

// Record is the serialized form of a parsed hand. Monetary amounts are
// exact decimal strings and the date is RFC 3339 UTC, so a record
// round-trips without floating-point drift. Room-specific extras are
// omitted when empty.
type Record struct {
	Room            string   `toml:"room" json:"room"`
	Ident           string   `toml:"ident" json:"ident"`
	GameType        string   `toml:"game_type" json:"game_type"`
	TournamentIdent string   `toml:"tournament_ident,omitempty" json:"tournament_ident,omitempty"`
	TournamentName  string   `toml:"tournament_name,omitempty" json:"tournament_name,omitempty"`
	TournamentLevel string   `toml:"tournament_level,omitempty" json:"tournament_level,omitempty"`
	Currency        string   `toml:"currency,omitempty" json:"currency,omitempty"`
	Buyin           string   `toml:"buyin,omitempty" json:"buyin,omitempty"`
	Rake            string   `toml:"rake,omitempty" json:"rake,omitempty"`
	Game            string   `toml:"game,omitempty" json:"game,omitempty"`
	Limit           string   `toml:"limit,omitempty" json:"limit,omitempty"`
	SB              string   `toml:"sb" json:"sb"`
	BB              string   `toml:"bb" json:"bb"`
	Date            string   `toml:"date" json:"date"`
	TableName       string   `toml:"table_name" json:"table_name"`
	MaxPlayers      int      `toml:"max_players" json:"max_players"`
	ButtonSeat      int      `toml:"button_seat" json:"button_seat"`
	Button          string   `toml:"button" json:"button"`
	Hero            string   `toml:"hero" json:"hero"`
	HeroSeat        int      `toml:"hero_seat" json:"hero_seat"`
	HeroHoleCards   []string `toml:"hero_hole_cards" json:"hero_hole_cards"`

	Players []PlayerRecord `toml:"players" json:"players"`

	Flop  []string `toml:"flop,omitempty" json:"flop,omitempty"`
	Turn  string   `toml:"turn,omitempty" json:"turn,omitempty"`
	River string   `toml:"river,omitempty" json:"river,omitempty"`
	Board []string `toml:"board,omitempty" json:"board,omitempty"`

	PreflopActions []string `toml:"preflop_actions,omitempty" json:"preflop_actions,omitempty"`
	FlopActions    []string `toml:"flop_actions,omitempty" json:"flop_actions,omitempty"`
	TurnActions    []string `toml:"turn_actions,omitempty" json:"turn_actions,omitempty"`
	RiverActions   []string `toml:"river_actions,omitempty" json:"river_actions,omitempty"`

	TotalPot string   `toml:"total_pot" json:"total_pot"`
	ShowDown bool     `toml:"show_down" json:"show_down"`
	Winners  []string `toml:"winners" json:"winners"`

	FlopPot         string `toml:"flop_pot,omitempty" json:"flop_pot,omitempty"`
	FlopNumPlayers  int    `toml:"flop_num_players,omitempty" json:"flop_num_players,omitempty"`
	TurnPot         string `toml:"turn_pot,omitempty" json:"turn_pot,omitempty"`
	TurnNumPlayers  int    `toml:"turn_num_players,omitempty" json:"turn_num_players,omitempty"`
	RiverPot        string `toml:"river_pot,omitempty" json:"river_pot,omitempty"`
	RiverNumPlayers int    `toml:"river_num_players,omitempty" json:"river_num_players,omitempty"`

	LastIdent string `toml:"last_ident,omitempty" json:"last_ident,omitempty"`
	MoneyType string `toml:"money_type,omitempty" json:"money_type,omitempty"`
}

// FromFields builds a Record by consuming a parser's ordered field
// projection, the only surface this package needs from the decoder.
func FromFields(fields []handhistory.Field) *Record {
	r := &Record{}
	for _, f := range fields {
		switch f.Name {
		case "room":
			r.Room = string(f.Value.(handhistory.Room))
		case "ident":
			r.Ident = f.Value.(string)
		case "game_type":
			r.GameType = string(f.Value.(handhistory.GameType))
		case "tournament_ident":
			r.TournamentIdent = f.Value.(string)
		case "tournament_name":
			r.TournamentName = f.Value.(string)
		case "tournament_level":
			r.TournamentLevel = f.Value.(string)
		case "currency":
			r.Currency = f.Value.(string)
		case "buyin":
			r.Buyin = decimalPtrString(f.Value)
		case "rake":
			r.Rake = decimalPtrString(f.Value)
		case "game":
			r.Game = string(f.Value.(handhistory.Game))
		case "limit":
			r.Limit = string(f.Value.(handhistory.Limit))
		case "sb":
			r.SB = f.Value.(decimal.Decimal).String()
		case "bb":
			r.BB = f.Value.(decimal.Decimal).String()
		case "date":
			r.Date = f.Value.(time.Time).Format(time.RFC3339)
		case "table_name":
			r.TableName = f.Value.(string)
		case "max_players":
			r.MaxPlayers = f.Value.(int)
		case "button_seat":
			r.ButtonSeat = f.Value.(int)
		case "button":
			r.Button = f.Value.(string)
		case "hero":
			r.Hero = f.Value.(string)
		case "hero_seat":
			r.HeroSeat = f.Value.(int)
		case "hero_hole_cards":
			cards := f.Value.([2]string)
			if cards[0] != "" {
				r.HeroHoleCards = cards[:]
			}
		case "players":
			for _, p := range f.Value.([]handhistory.Player) {
				r.Players = append(r.Players, PlayerRecord{Name: p.Name, Stack: p.Stack.String()})
			}
		case "flop":
			r.Flop = f.Value.([]string)
		case "turn":
			r.Turn = f.Value.(string)
		case "river":
			r.River = f.Value.(string)
		case "board":
			r.Board = f.Value.([]string)
		case "preflop_actions":
			r.PreflopActions = f.Value.([]string)
		case "flop_actions":
			r.FlopActions = f.Value.([]string)
		case "turn_actions":
			r.TurnActions = f.Value.([]string)
		case "river_actions":
			r.RiverActions = f.Value.([]string)
		case "total_pot":
			r.TotalPot = f.Value.(decimal.Decimal).String()
		case "show_down":
			r.ShowDown = f.Value.(bool)
		case "winners":
			r.Winners = f.Value.([]string)
		case "flop_pot":
			r.FlopPot = decimalPtrString(f.Value)
		case "turn_pot":
			r.TurnPot = decimalPtrString(f.Value)
		case "river_pot":
			r.RiverPot = decimalPtrString(f.Value)
		case "flop_num_players":
			r.FlopNumPlayers = f.Value.(int)
		case "turn_num_players":
			r.TurnNumPlayers = f.Value.(int)
		case "river_num_players":
			r.RiverNumPlayers = f.Value.(int)
		case "last_ident":
			r.LastIdent = f.Value.(string)
		case "money_type":
			r.MoneyType = f.Value.(string)
		}
	}
	return r
}

func decimalPtrString(v any) string {
	d, ok := v.(*decimal.Decimal)
	if !ok || d == nil {
		return ""
	}
	return d.String()
}
