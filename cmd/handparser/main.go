package main

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/lox/handparser/cmd/handparser/shared"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `help:"Path to HCL defaults file" default:".handparser.hcl" type:"path"`
	Debug    bool             `help:"Enable debug logging"`
	JSONLogs bool             `name:"json-logs" help:"Emit structured JSON logs"`

	Parse  ParseCmd  `cmd:"" help:"Decode hand history files into structured records"`
	Header HeaderCmd `cmd:"" help:"Validate headers only, for cheap filtering of large batches"`
	Rooms  RoomsCmd  `cmd:"" help:"List supported poker rooms"`
}

func (c *CLI) logger() zerolog.Logger {
	if c.JSONLogs {
		return shared.SetupStructuredLogger(c.Debug)
	}
	return shared.SetupLogger(c.Debug)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handparser"),
		kong.Description("Decode poker hand history exports into canonical records"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
