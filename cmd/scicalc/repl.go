package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	calc "github.com/tarnan3751/Scientific-Calculator"
)

const (
	promptMain = "> "
	promptInv  = "inv> "
	promptCont = "... "
)

const banner = "Scientific calculator. Ctrl+C clears input, Ctrl+D exits. Type :help for commands."

const helpText = `Enter an expression to evaluate it, optionally ending with =. End a line
with \ to keep typing.

Commands:
  :sin :cos :tan :log :ln :sqrt   press a function button
  :neg     append (-1)*
  :inv     toggle inverse mode (asin acos atan 10^x e^x)
  :labels  show the function buttons
  :buf     show the pending input
  :clear   discard the pending input
  :quit    exit`

// buttons are the function buttons of the calculator, by base label. A
// button command always names the base label; inverse mode decides which
// function it writes.
var buttons = []string{"sin", "cos", "tan", "log", "ln", "sqrt"}

var commands = []string{":buf", ":clear", ":help", ":inv", ":labels", ":neg", ":quit"}

// session is the state of the interactive calculator: the pending input
// buffer and whether inverse mode is on. The engine itself keeps no state.
type session struct {
	cfg     config
	out     io.Writer
	buf     strings.Builder
	inverse bool
}

func newSession(cfg config, out io.Writer) *session {
	return &session{cfg: cfg, out: out, inverse: cfg.Inverse}
}

// prompt is the prompt for the next line.
func (s *session) prompt() string {
	switch {
	case s.buf.Len() > 0:
		return promptCont
	case s.inverse:
		return promptInv
	default:
		return promptMain
	}
}

// handle processes one line of input and reports whether the session is
// over.
func (s *session) handle(line string) (quit bool) {
	text := strings.TrimSpace(line)
	if strings.HasPrefix(text, ":") {
		return s.command(text[1:])
	}
	if strings.HasSuffix(text, `\`) {
		s.buf.WriteString(strings.TrimSuffix(text, `\`))
		return false
	}
	// = is the calculator's submit button.
	s.buf.WriteString(strings.TrimSuffix(text, "="))
	s.submit()
	return false
}

// submit evaluates and clears the buffer. The buffer is cleared whether or
// not evaluation succeeds.
func (s *session) submit() {
	src := s.buf.String()
	s.buf.Reset()
	if strings.TrimSpace(src) == "" {
		return
	}
	r, err := calculate(src, s.cfg)
	if err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintln(s.out, r)
}

func (s *session) command(cmd string) bool {
	cmd = strings.ToLower(strings.TrimSpace(cmd))
	switch cmd {
	case "quit", "q", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, helpText)
	case "clear":
		s.buf.Reset()
	case "neg":
		s.buf.WriteString("(-1)*")
		s.show()
	case "inv":
		s.inverse = !s.inverse
		s.labels()
	case "labels":
		s.labels()
	case "buf":
		s.show()
	default:
		if !contains(buttons, cmd) {
			fmt.Fprintf(s.out, "unknown command %q. Type :help for commands.\n", cmd)
			return false
		}
		// A button writes whichever function it currently shows.
		s.buf.WriteString(calc.ToggledLabel(cmd, s.inverse) + "(")
		s.show()
	}
	return false
}

func (s *session) show() {
	fmt.Fprintln(s.out, s.buf.String())
}

func (s *session) labels() {
	v := make([]string, len(buttons))
	for i, b := range buttons {
		v[i] = calc.ToggledLabel(b, s.inverse)
	}
	mode := "off"
	if s.inverse {
		mode = "on"
	}
	fmt.Fprintf(s.out, "inverse %s: %s\n", mode, strings.Join(v, " "))
}

// complete suggests commands after a colon and function names at the end of
// an expression.
func complete(line string) []string {
	var c []string
	if strings.HasPrefix(line, ":") {
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, line) {
				c = append(c, cmd)
			}
		}
		for _, b := range buttons {
			if strings.HasPrefix(":"+b, line) {
				c = append(c, ":"+b)
			}
		}
		return c
	}
	i := len(line)
	for i > 0 && isLetter(line[i-1]) {
		i--
	}
	word := line[i:]
	if word == "" {
		return nil
	}
	for _, b := range buttons {
		for _, name := range []string{b, calc.ToggledLabel(b, true)} {
			if strings.HasPrefix(name, word) && name != word && !contains(c, line[:i]+name+"(") {
				c = append(c, line[:i]+name+"(")
			}
		}
	}
	return c
}

func contains(v []string, s string) bool {
	for _, x := range v {
		if x == s {
			return true
		}
	}
	return false
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// repl runs the interactive calculator and returns the exit status.
func repl(cfg config) int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(complete)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.History); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s := newSession(cfg, os.Stdout)
	if s.inverse {
		s.labels()
	}
	for {
		line, err := ln.Prompt(s.prompt())
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			s.buf.Reset()
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return 0
		case err != nil:
			log.Print(err)
			return 1
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if s.handle(line) {
			return 0
		}
	}
}
