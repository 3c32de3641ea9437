package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/lox/handparser/handhistory"
	"github.com/lox/handparser/internal/export"
)

// ParseCmd decodes full hand records. Files are parsed concurrently
// (each parse is independent, no coordination needed) and emitted to
// stdout in input order.
type ParseCmd struct {
	Room        string   `help:"Poker room the files come from (stars, ftp, pkr)"`
	Format      string   `help:"Output format: toml or json"`
	Concurrency int      `help:"Maximum files decoded in parallel"`
	Files       []string `arg:"" name:"file" help:"Hand history files, one hand per file" type:"existingfile"`
}

func (cmd ParseCmd) Run(cli *CLI) error {
	logger := cli.logger()

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	room, format, concurrency := cmd.resolve(cfg)

	if room == "" {
		return fmt.Errorf("no room given: use --room or set one in %s", cli.Config)
	}
	roomCode, ok := handhistory.NormalizeRoom(room)
	if !ok {
		return fmt.Errorf("unknown room %q", room)
	}

	records := make([]*export.Record, len(cmd.Files))
	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, file := range cmd.Files {
		i, file := i, file
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			parser, err := handhistory.New(roomCode, string(data))
			if err != nil {
				return err
			}
			if err := parser.Parse(); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			records[i] = export.FromFields(parser.Fields())
			logger.Debug().Str("file", file).Stringer("hand", parser.Hand()).Msg("decoded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, record := range records {
		if err := export.Encode(os.Stdout, record, export.Format(format)); err != nil {
			return err
		}
	}
	logger.Info().Int("hands", len(records)).Str("room", string(roomCode)).Msg("batch complete")
	return nil
}

// resolve layers flag values over config file values.
func (cmd ParseCmd) resolve(cfg *Config) (room, format string, concurrency int) {
	room = cfg.Room
	if cmd.Room != "" {
		room = cmd.Room
	}
	format = cfg.Format
	if cmd.Format != "" {
		format = cmd.Format
	}
	concurrency = cfg.Concurrency
	if cmd.Concurrency > 0 {
		concurrency = cmd.Concurrency
	}
	return room, format, concurrency
}
