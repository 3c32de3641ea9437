package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/handparser/handhistory"
)

// HeaderCmd runs only the cheap header pass, so a large directory of
// candidate exports can be validated before committing to full parses.
type HeaderCmd struct {
	Room      string   `help:"Poker room the files come from (stars, ftp, pkr)"`
	KeepGoing bool     `short:"k" help:"Report failures and continue instead of stopping at the first"`
	Files     []string `arg:"" name:"file" help:"Hand history files" type:"existingfile"`
}

// headerFieldNames is the header subset of the field projection.
var headerFieldNames = map[string]bool{
	"room": true, "ident": true, "game_type": true,
	"tournament_ident": true, "tournament_name": true, "tournament_level": true,
	"currency": true, "buyin": true, "rake": true,
	"game": true, "limit": true, "sb": true, "bb": true, "date": true,
	"table_name": true, "money_type": true, "last_ident": true,
}

func (cmd HeaderCmd) Run(cli *CLI) error {
	logger := cli.logger()

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	room := cfg.Room
	if cmd.Room != "" {
		room = cmd.Room
	}
	if room == "" {
		return fmt.Errorf("no room given: use --room or set one in %s", cli.Config)
	}
	roomCode, ok := handhistory.NormalizeRoom(room)
	if !ok {
		return fmt.Errorf("unknown room %q", room)
	}

	failed := 0
	for _, file := range cmd.Files {
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		parser, err := handhistory.New(roomCode, string(data))
		if err != nil {
			return err
		}
		if err := parser.ParseHeader(); err != nil {
			if !cmd.KeepGoing {
				return fmt.Errorf("%s: %w", file, err)
			}
			failed++
			logger.Error().Str("file", file).Err(err).Msg("header rejected")
			continue
		}
		fmt.Printf("%s\t%s\n", file, headerSummary(parser.Fields()))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d headers failed", failed, len(cmd.Files))
	}
	return nil
}

// headerSummary renders the non-empty header fields of the projection.
func headerSummary(fields []handhistory.Field) string {
	var parts []string
	for _, f := range fields {
		if !headerFieldNames[f.Name] {
			continue
		}
		v := fmt.Sprintf("%v", f.Value)
		if v == "" || v == "<nil>" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%s", f.Name, v))
	}
	return strings.Join(parts, " ")
}
