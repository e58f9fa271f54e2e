package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type CLI struct {
	LogLevel slog.Level `name:"log-level" help:"Log level." env:"BRIEF_LOG_LEVEL" default:"WARN" enum:"DEBUG,INFO,WARN,ERROR"`

	Address AddressCmd `cmd:"" help:"Parse addresses and print them normalized."`
	Mailbox MailboxCmd `cmd:"" help:"Parse mailboxes and print them normalized."`
	List    ListCmd    `cmd:"" help:"Parse a mailbox list and print it normalized."`
	Build   BuildCmd   `cmd:"" help:"Render the header block described by a YAML document."`
	Read    ReadCmd    `cmd:"" help:"Print the participant headers of a message."`
	Check   CheckCmd   `cmd:"" help:"Validate files holding one entry per line."`
}

func (CLI *CLI) initLogger(*kong.Context) *slog.Logger {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{Level: CLI.LogLevel})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: CLI.LogLevel})
	}
	return slog.New(handler)
}

func main() {
	var CLI CLI
	kongCtx := kong.Parse(
		&CLI,
		kong.Name("brief"),
		kong.Description("Parse, validate and render mail participants."),
		kong.UsageOnError(),
	)
	logger := CLI.initLogger(kongCtx)
	err := kongCtx.Run(&env{
		logger: logger,
		stdout: os.Stdout,
		stdin:  os.Stdin,
	})
	kongCtx.FatalIfErrorf(err)
}
