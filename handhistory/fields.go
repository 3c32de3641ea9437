package handhistory

// Field is one entry of the ordered, dictionary-like projection of a
// parsed hand. The per-room descriptor lists below are the full schema:
// serialization layers iterate them instead of reflecting over the Hand
// struct, so raw text and parse-state bookkeeping can never leak out.
type Field struct {
	Name  string
	Value any
}

type fieldDesc struct {
	name string
	get  func(*Hand) any
}

func project(h *Hand, descs []fieldDesc) []Field {
	out := make([]Field, len(descs))
	for i, d := range descs {
		out[i] = Field{Name: d.name, Value: d.get(h)}
	}
	return out
}

// baseFields is the canonical field order shared by every room.
var baseFields = []fieldDesc{
	{"room", func(h *Hand) any { return h.Room }},
	{"ident", func(h *Hand) any { return h.Ident }},
	{"game_type", func(h *Hand) any { return h.GameType }},
	{"tournament_ident", func(h *Hand) any { return h.TournamentIdent }},
	{"tournament_level", func(h *Hand) any { return h.TournamentLevel }},
	{"currency", func(h *Hand) any { return h.Currency }},
	{"buyin", func(h *Hand) any { return h.Buyin }},
	{"rake", func(h *Hand) any { return h.Rake }},
	{"game", func(h *Hand) any { return h.Game }},
	{"limit", func(h *Hand) any { return h.Limit }},
	{"sb", func(h *Hand) any { return h.SB }},
	{"bb", func(h *Hand) any { return h.BB }},
	{"date", func(h *Hand) any { return h.Date }},
	{"table_name", func(h *Hand) any { return h.TableName }},
	{"max_players", func(h *Hand) any { return h.MaxPlayers }},
	{"button_seat", func(h *Hand) any { return h.ButtonSeat }},
	{"button", func(h *Hand) any { return h.Button }},
	{"hero", func(h *Hand) any { return h.Hero }},
	{"hero_seat", func(h *Hand) any { return h.HeroSeat }},
	{"players", func(h *Hand) any { return h.Players }},
	{"hero_hole_cards", func(h *Hand) any { return h.HeroHoleCards }},
	{"flop", func(h *Hand) any { return h.Flop }},
	{"turn", func(h *Hand) any { return h.Turn }},
	{"river", func(h *Hand) any { return h.River }},
	{"board", func(h *Hand) any { return h.Board() }},
	{"preflop_actions", func(h *Hand) any { return h.PreflopActions }},
	{"flop_actions", func(h *Hand) any { return h.FlopActions }},
	{"turn_actions", func(h *Hand) any { return h.TurnActions }},
	{"river_actions", func(h *Hand) any { return h.RiverActions }},
	{"total_pot", func(h *Hand) any { return h.TotalPot }},
	{"show_down", func(h *Hand) any { return h.ShowDown }},
	{"winners", func(h *Hand) any { return h.Winners }},
}

var starsFields = baseFields

var ftpFields = append(append([]fieldDesc{}, baseFields...),
	fieldDesc{"tournament_name", func(h *Hand) any { return h.TournamentName }},
	fieldDesc{"flop_pot", func(h *Hand) any { return h.FlopPot }},
	fieldDesc{"flop_num_players", func(h *Hand) any { return h.FlopNumPlayers }},
	fieldDesc{"turn_pot", func(h *Hand) any { return h.TurnPot }},
	fieldDesc{"turn_num_players", func(h *Hand) any { return h.TurnNumPlayers }},
	fieldDesc{"river_pot", func(h *Hand) any { return h.RiverPot }},
	fieldDesc{"river_num_players", func(h *Hand) any { return h.RiverNumPlayers }},
)

var pkrFields = append(append([]fieldDesc{}, baseFields...),
	fieldDesc{"last_ident", func(h *Hand) any { return h.LastIdent }},
	fieldDesc{"money_type", func(h *Hand) any { return h.MoneyType }},
	fieldDesc{"flop_pot", func(h *Hand) any { return h.FlopPot }},
	fieldDesc{"turn_pot", func(h *Hand) any { return h.TurnPot }},
	fieldDesc{"river_pot", func(h *Hand) any { return h.RiverPot }},
)
