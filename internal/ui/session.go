// Package ui runs the interactive terminal session: it reads one line at a
// time, hands it to the assistant and prints the reply.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tartampluch/go-contacts/internal/commands"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/locale"
)

// Session wires a line reader and a writer to an assistant.
type Session struct {
	In        io.Reader
	Out       io.Writer
	Assistant *commands.Assistant
	Catalog   *locale.Catalog
	Palette   *Palette // defaults to NewPalette(Out)
}

// NewSession creates a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer, a *commands.Assistant, cat *locale.Catalog) *Session {
	return &Session{
		In:        in,
		Out:       out,
		Assistant: a,
		Catalog:   cat,
		Palette:   NewPalette(out),
	}
}

// Run prints the welcome line and then loops until the user exits, input
// ends or ctx is cancelled. Cancellation also interrupts a pending read.
// Only I/O failures are returned as errors.
func (s *Session) Run(ctx context.Context) error {
	if s.Palette == nil {
		s.Palette = NewPalette(s.Out)
	}

	start := time.Now()
	slog.Info(config.MsgSessionStart, config.LogKeyComponent, config.CompUI)
	defer func() {
		slog.Info(config.MsgSessionEnd,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyDuration, time.Since(start).Milliseconds(),
		)
	}()

	if err := s.println(s.Palette.Title(s.Catalog.Msg(config.TKeyWelcome, nil))); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(s.In, done)

	for {
		if ctx.Err() != nil {
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
			return nil
		}

		if err := s.print(s.Catalog.Msg(config.TKeyPrompt, nil)); err != nil {
			return err
		}

		var l line
		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
			return s.print(config.LineSeparator)
		case l = <-lines:
		}

		if l.err != nil {
			if !errors.Is(l.err, io.EOF) {
				return fmt.Errorf("%s: %w", config.ErrReadInput, l.err)
			}
			slog.Info(config.MsgSessionEOF, config.LogKeyComponent, config.CompUI)
			return s.print(config.LineSeparator)
		}

		resp := s.respond(l)

		text := resp.Text
		switch {
		case resp.Err != nil:
			text = s.Palette.Error(text)
		case resp.Exit:
			text = s.Palette.OK(text)
		}

		if err := s.println(text); err != nil {
			return err
		}
		if resp.Exit {
			return nil
		}
	}
}

// respond answers an oversized line like any unknown command.
func (s *Session) respond(l line) commands.Response {
	if l.tooLong {
		slog.Warn(config.MsgLineTooLong, config.LogKeyComponent, config.CompUI)
		return commands.Response{
			Text: s.Catalog.Msg(config.TKeyErrInvalidCommand, nil),
			Err:  commands.ErrInvalidCommand,
		}
	}
	return s.Assistant.Handle(l.text)
}

// line is one read from the input. err is set, io.EOF included, on the last
// value sent.
type line struct {
	text    string
	tooLong bool
	err     error
}

// readLines reads in on its own goroutine so a blocked read never holds up
// cancellation. It stops after sending an error or once done is closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			l := readLine(r)
			select {
			case lines <- l:
			case <-done:
				return
			}
			if l.err != nil {
				return
			}
		}
	}()
	return lines
}

// readLine returns the next line without its terminator. A line longer than
// config.MaxLineBytes is consumed to its end and flagged tooLong.
func readLine(r *bufio.Reader) line {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return line{err: err}
		}
		if !tooLong {
			if len(buf)+len(chunk) > config.MaxLineBytes {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return line{text: string(buf), tooLong: tooLong}
		}
	}
}

func (s *Session) print(text string) error {
	if _, err := io.WriteString(s.Out, text); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}

func (s *Session) println(text string) error {
	return s.print(text + config.LineSeparator)
}
