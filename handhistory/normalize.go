package handhistory

import "strings"

// Room identifies a poker room.
type Room string

const (
	RoomStars Room = "STARS"
	RoomFTP   Room = "FTP"
	RoomPKR   Room = "PKR"
)

// GameType distinguishes cash games from tournaments.
type GameType string

const (
	TypeCash GameType = "CASH"
	TypeTour GameType = "TOUR"
)

// Game is the poker variant being played.
type Game string

const (
	GameHoldem Game = "HOLDEM"
	GameOmaha  Game = "OMAHA"
)

// Limit is the betting structure.
type Limit string

const (
	LimitNL Limit = "NL"
	LimitPL Limit = "PL"
	LimitFL Limit = "FL"
)

// Money type codes for rooms that report them.
const (
	MoneyReal = "R"
	MoneyPlay = "P"
)

var roomNames = map[string]Room{
	"stars":           RoomStars,
	"pokerstars":      RoomStars,
	"ps":              RoomStars,
	"ftp":             RoomFTP,
	"full tilt":       RoomFTP,
	"fulltilt":        RoomFTP,
	"full tilt poker": RoomFTP,
	"fulltiltpoker":   RoomFTP,
	"pkr":             RoomPKR,
	"pkr poker":       RoomPKR,
}

var gameTypeNames = map[string]GameType{
	"ring":       TypeCash,
	"cash game":  TypeCash,
	"cash":       TypeCash,
	"tournament": TypeTour,
	"tour":       TypeTour,
}

var gameNames = map[string]Game{
	"hold'em":       GameHoldem,
	"holdem":        GameHoldem,
	"texas hold'em": GameHoldem,
	"omaha":         GameOmaha,
}

var limitNames = map[string]Limit{
	"no limit":  LimitNL,
	"nl":        LimitNL,
	"pot limit": LimitPL,
	"pl":        LimitPL,
	"fix limit": LimitFL,
	"fl":        LimitFL,
}

var moneyTypeNames = map[string]string{
	"real money": MoneyReal,
	"play money": MoneyPlay,
}

// Rooms lists the rooms with a decoder in this package.
func Rooms() []Room {
	return []Room{RoomStars, RoomFTP, RoomPKR}
}

// NormalizeRoom maps a free-form room name to its canonical code.
func NormalizeRoom(s string) (Room, bool) {
	r, ok := roomNames[strings.ToLower(s)]
	return r, ok
}

// NormalizeGameType maps a free-form game type to CASH or TOUR.
func NormalizeGameType(s string) (GameType, bool) {
	t, ok := gameTypeNames[strings.ToLower(s)]
	return t, ok
}

// NormalizeGame maps a free-form game variant to its canonical code.
func NormalizeGame(s string) (Game, bool) {
	g, ok := gameNames[strings.ToLower(s)]
	return g, ok
}

// NormalizeLimit maps a free-form betting limit to NL, PL or FL.
func NormalizeLimit(s string) (Limit, bool) {
	l, ok := limitNames[strings.ToLower(s)]
	return l, ok
}

// NormalizeMoneyType maps a money type to R or P. Unlike the other
// normalizers it is total: unrecognized input is echoed upper-cased
// instead of reported missing.
func NormalizeMoneyType(s string) string {
	if m, ok := moneyTypeNames[strings.ToLower(s)]; ok {
		return m
	}
	return strings.ToUpper(s)
}
