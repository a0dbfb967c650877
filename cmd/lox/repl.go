package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/funvibe/lox/internal/backend"
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/lexer"
	"github.com/funvibe/lox/internal/parser"
	"github.com/funvibe/lox/internal/token"
)

// repl runs an interactive session. Globals and resolved distances
// survive from one entry to the next; an error discards only the entry
// that caused it.
func (d *driver) repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if h := d.cfg.REPL.HistoryFile; h != "-" {
		histPath = config.ExpandHome(h)
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	session := d.newBackend()
	d.logger.Debug().Str("history", histPath).Msg("repl started")

	for {
		src, ok := d.readEntry(ln)
		if !ok {
			fmt.Fprintln(d.stdout)
			break
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		d.evalEntry(session, src)
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			d.logger.Warn().Err(err).Str("history", histPath).Msg("could not save history")
		}
	}
	return config.ExitOK
}

func (d *driver) evalEntry(session *backend.TreeWalkBackend, src string) {
	pctx := d.execute(context.Background(), session, src, "")
	d.reportAll(pctx.Errors)
}

// readEntry reads lines until they form a complete program or fail
// for a reason more input cannot fix. ok is false on Ctrl-D.
func (d *driver) readEntry(ln *liner.State) (src string, ok bool) {
	var b strings.Builder
	for {
		prompt := d.cfg.REPL.Prompt
		if b.Len() > 0 {
			prompt = d.cfg.REPL.Continuation
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the pending entry.
			return "", true
		}
		if err != nil {
			d.logger.Error().Err(err).Msg("reading input")
			return "", false
		}

		if b.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				// An empty continuation line submits what we have.
				return b.String(), true
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !needsMoreInput(b.String()) {
			return b.String(), true
		}
	}
}

// needsMoreInput reports whether src fails only because it stops early:
// an open block, string or comment, or a missing final token.
func needsMoreInput(src string) bool {
	tokens, lexErrs := lexer.Scan(src)
	for _, err := range lexErrs {
		if err.Code != diagnostics.ErrL002 && err.Code != diagnostics.ErrL003 {
			return false
		}
	}
	if len(lexErrs) > 0 {
		return true
	}

	_, parseErrs := parser.Parse(tokens)
	if len(parseErrs) == 0 {
		return false
	}
	for _, err := range parseErrs {
		if err.Token.Type != token.EOF {
			return false
		}
	}
	return true
}
