package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/moriyoshi/brief/mail"
)

type env struct {
	logger *slog.Logger
	stdout io.Writer
	stdin  io.Reader
}

type AddressCmd struct {
	Texts []string `arg:"" name:"text" help:"Addresses of the form user@domain."`
}

func (cmd *AddressCmd) Run(e *env) error {
	for _, text := range cmd.Texts {
		a, err := mail.ParseAddress(text)
		if err != nil {
			return fmt.Errorf("%q: %w", text, err)
		}
		e.logger.Debug("parsed address", slog.String("user", a.User()), slog.String("domain", a.Domain()))
		fmt.Fprintln(e.stdout, a)
	}
	return nil
}

type MailboxCmd struct {
	Texts []string `arg:"" name:"text" help:"Mailboxes of the form \"Name <user@domain>\" or user@domain."`
}

func (cmd *MailboxCmd) Run(e *env) error {
	for _, text := range cmd.Texts {
		m, err := mail.ParseMailbox(text)
		if err != nil {
			return fmt.Errorf("%q: %w", text, err)
		}
		name, _ := m.Name()
		e.logger.Debug("parsed mailbox", slog.String("name", name), slog.String("address", m.Address().String()))
		fmt.Fprintln(e.stdout, m)
	}
	return nil
}

type ListCmd struct {
	Text string `arg:"" help:"Comma-separated list of mailboxes."`
}

func (cmd *ListCmd) Run(e *env) error {
	ms, err := mail.ParseMailboxes(cmd.Text)
	if err != nil {
		return fmt.Errorf("%q: %w", cmd.Text, err)
	}
	e.logger.Debug("parsed mailboxes", slog.Int("count", ms.Len()))
	fmt.Fprintln(e.stdout, ms)
	return nil
}

type BuildCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML document mapping header fields to mailboxes."`
}

func (cmd *BuildCmd) Run(e *env) error {
	m, err := loadDocument(cmd.File)
	if err != nil {
		return err
	}
	e.logger.Info("building header block", slog.String("path", cmd.File), slog.Int("headers", len(m.Headers())))
	_, err = m.WriteTo(e.stdout)
	return err
}

type ReadCmd struct {
	File   string `arg:"" optional:"" default:"-" help:"Message file to read, or - for standard input."`
	Strict bool   `name:"strict" help:"Fail on malformed header lines." env:"BRIEF_STRICT" default:"false"`
}

func (cmd *ReadCmd) Run(e *env) error {
	var r io.Reader = e.stdin
	if cmd.File != "-" {
		f, err := os.Open(cmd.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	m, err := mail.ReadMessage(r, mail.WithLogger(e.logger), mail.WithStrict(cmd.Strict))
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.File, err)
	}
	for _, h := range m.Headers() {
		fmt.Fprintln(e.stdout, h)
	}
	return nil
}

type CheckCmd struct {
	Kind  string   `name:"kind" help:"What each line holds." env:"BRIEF_CHECK_KIND" default:"list" enum:"address,mailbox,list"`
	Jobs  int      `name:"jobs" short:"j" help:"Number of files checked at once." env:"BRIEF_JOBS" default:"4"`
	Files []string `arg:"" type:"existingfile" help:"Files to check, one entry per line."`
}

type failure struct {
	path string
	line int
	err  error
}

func (f failure) String() string {
	return fmt.Sprintf("%s:%d: %v", f.path, f.line, f.err)
}

func validator(kind string) func(string) error {
	switch kind {
	case "address":
		return func(s string) error {
			_, err := mail.ParseAddress(s)
			return err
		}
	case "mailbox":
		return func(s string) error {
			_, err := mail.ParseMailbox(s)
			return err
		}
	default:
		return func(s string) error {
			_, err := mail.ParseMailboxes(s)
			return err
		}
	}
}

func checkFile(path string, validate func(string) error) ([]failure, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	var failures []failure
	n := 0
	s := bufio.NewScanner(f)
	for i := 1; s.Scan(); i++ {
		l := strings.TrimSpace(s.Text())
		if l == "" {
			continue
		}
		n++
		if err := validate(l); err != nil {
			failures = append(failures, failure{path: path, line: i, err: err})
		}
	}
	if err := s.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return failures, n, nil
}

func (cmd *CheckCmd) Run(e *env) error {
	validate := validator(cmd.Kind)
	results := make([][]failure, len(cmd.Files))
	var g errgroup.Group
	if cmd.Jobs > 0 {
		g.SetLimit(cmd.Jobs)
	}
	for i, path := range cmd.Files {
		g.Go(func() error {
			failures, n, err := checkFile(path, validate)
			if err != nil {
				return err
			}
			e.logger.Info("checked", slog.String("path", path), slog.Int("entries", n), slog.Int("invalid", len(failures)))
			results[i] = failures
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	count := 0
	for _, failures := range results {
		for _, f := range failures {
			fmt.Fprintln(e.stdout, f)
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%d invalid entries", count)
	}
	return nil
}
