package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dacapoday/gstr/growth"
	"github.com/dacapoday/gstr/strbuf"
	"github.com/sirupsen/logrus"
)

var (
	errUsage   = errors.New("usage")
	errUnknown = errors.New("unknown command")
)

type command struct {
	usage string
	min   int // required arguments
	max   int // accepted arguments
	run   func(s *session, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"append":       {"append T", 1, 1, (*session).append},
		"push":         {"push C", 1, 1, (*session).push},
		"insert":       {"insert P T", 2, 2, (*session).insert},
		"erase":        {"erase P [N]", 1, 2, (*session).erase},
		"replace":      {"replace P N T", 3, 3, (*session).replace},
		"substr":       {"substr P [N]", 1, 2, (*session).substr},
		"find":         {"find T [P]", 1, 2, (*session).find},
		"rfind":        {"rfind T [P]", 1, 2, (*session).find},
		"first-of":     {"first-of S [P]", 1, 2, (*session).find},
		"last-of":      {"last-of S [P]", 1, 2, (*session).find},
		"first-not-of": {"first-not-of S [P]", 1, 2, (*session).find},
		"last-not-of":  {"last-not-of S [P]", 1, 2, (*session).find},
		"resize":       {"resize N [C]", 1, 2, (*session).resize},
		"reserve":      {"reserve N", 1, 1, (*session).reserve},
		"shrink":       {"shrink", 0, 0, (*session).shrink},
		"clear":        {"clear", 0, 0, (*session).clear},
		"pop":          {"pop", 0, 0, (*session).pop},
		"upper":        {"upper", 0, 0, (*session).upper},
		"lower":        {"lower", 0, 0, (*session).lower},
		"trim":         {"trim", 0, 0, (*session).trim},
		"reverse":      {"reverse", 0, 0, (*session).reverse},
		"show":         {"show", 0, 0, nil},
		"help":         {"help", 0, 0, (*session).help},
		"quit":         {"quit", 0, 0, nil},
	}
}

// session drives one String from a stream of commands.
type session struct {
	buf   *strbuf.String
	out   io.Writer
	log   *logrus.Logger
	width int
	gen   uint64
	cmd   string
}

func newSession(p growth.Policy, width int, out io.Writer, log *logrus.Logger) *session {
	s := &session{
		buf:   strbuf.New(strbuf.WithPolicy(p)),
		out:   out,
		log:   log,
		width: max(width, minWidth),
	}
	s.gen = s.buf.Generation()
	return s
}

func (s *session) init(text string) {
	s.buf.Append(text)
	s.observe()
}

// run executes commands from in until EOF or quit.
func (s *session) run(in io.Reader, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if quit := s.exec(sc.Text()); quit {
			return nil
		}
	}
}

// exec runs one line and reports whether the session should end.
func (s *session) exec(line string) bool {
	args, err := split(line)
	if err != nil {
		s.fail(err)
		return false
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return false
	}
	name, args := args[0], args[1:]
	cmd, ok := commands[name]
	switch {
	case !ok:
		s.fail(fmt.Errorf("%w %q", errUnknown, name))
		return false
	case name == "quit":
		return true
	case len(args) < cmd.min || len(args) > cmd.max:
		s.fail(fmt.Errorf("%w: %s", errUsage, cmd.usage))
		return false
	}
	if cmd.run != nil {
		s.cmd = name
		if err := cmd.run(s, args); err != nil {
			s.fail(err)
		}
	}
	s.observe()
	s.show()
	return false
}

func (s *session) fail(err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
}

// observe logs a reallocation if the generation moved since the last call.
func (s *session) observe() {
	gen := s.buf.Generation()
	if gen == s.gen {
		return
	}
	s.gen = gen
	s.log.WithFields(logrus.Fields{
		"cap":    s.buf.Cap(),
		"len":    s.buf.Len(),
		"gen":    gen,
		"stride": s.buf.Stride(),
	}).Debug("reallocated")
}

func (s *session) show() {
	prefix := fmt.Sprintf("len=%d cap=%d gen=%d ", s.buf.Len(), s.buf.Cap(), s.buf.Generation())
	fmt.Fprintln(s.out, prefix+elide(strconv.Quote(s.buf.String()), s.width-len(prefix)))
}

// elide cuts q to at most n runes, marking the cut with "...".
func elide(q string, n int) string {
	n = max(n, 8)
	r := []rune(q)
	if len(r) <= n {
		return q
	}
	return string(r[:n-3]) + "..."
}

func (s *session) append(args []string) error {
	s.buf.Append(args[0])
	return nil
}

func (s *session) push(args []string) error {
	c, err := char(args[0])
	if err != nil {
		return err
	}
	s.buf.PushBack(c)
	return nil
}

func (s *session) insert(args []string) error {
	pos, err := number(args[0])
	if err != nil {
		return err
	}
	return s.buf.Insert(pos, args[1])
}

func (s *session) erase(args []string) error {
	pos, n, err := posLen(args)
	if err != nil {
		return err
	}
	return s.buf.Erase(pos, n)
}

func (s *session) replace(args []string) error {
	pos, n, err := posLen(args[:2])
	if err != nil {
		return err
	}
	return s.buf.Replace(pos, n, args[2])
}

func (s *session) substr(args []string) error {
	pos, n, err := posLen(args)
	if err != nil {
		return err
	}
	sub, err := s.buf.Substr(pos, n)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, strconv.Quote(sub.String()))
	return nil
}

// find serves every search command. The reverse searches start from the end
// unless a position is given.
func (s *session) find(args []string) error {
	pos := 0
	if strings.HasPrefix(s.cmd, "rfind") || strings.HasPrefix(s.cmd, "last-") {
		pos = strbuf.NPos
	}
	if len(args) == 2 {
		var err error
		if pos, err = number(args[1]); err != nil {
			return err
		}
	}
	var i int
	switch t := args[0]; s.cmd {
	case "find":
		i = s.buf.Find(t, pos)
	case "rfind":
		i = s.buf.RFind(t, pos)
	case "first-of":
		i = s.buf.FindFirstOf(t, pos)
	case "last-of":
		i = s.buf.FindLastOf(t, pos)
	case "first-not-of":
		i = s.buf.FindFirstNotOf(t, pos)
	case "last-not-of":
		i = s.buf.FindLastNotOf(t, pos)
	}
	if i == strbuf.NPos {
		fmt.Fprintln(s.out, "npos")
	} else {
		fmt.Fprintln(s.out, i)
	}
	return nil
}

func (s *session) resize(args []string) error {
	n, err := number(args[0])
	if err != nil {
		return err
	}
	var c byte
	if len(args) == 2 {
		if c, err = char(args[1]); err != nil {
			return err
		}
	}
	return s.buf.ResizeFill(n, c)
}

func (s *session) reserve(args []string) error {
	n, err := number(args[0])
	if err != nil {
		return err
	}
	return s.buf.Reserve(n)
}

func (s *session) shrink([]string) error {
	s.buf.ShrinkToFit()
	return nil
}

func (s *session) clear([]string) error {
	s.buf.Clear()
	return nil
}

func (s *session) pop([]string) error {
	return s.buf.PopBack()
}

func (s *session) upper([]string) error {
	s.buf.ToUpper()
	return nil
}

func (s *session) lower([]string) error {
	s.buf.ToLower()
	return nil
}

func (s *session) trim([]string) error {
	s.buf.Trim()
	return nil
}

// reverse swaps bytes in place, walking a forward and a reverse cursor
// towards each other.
func (s *session) reverse([]string) error {
	f, r := s.buf.Begin(), s.buf.RBegin()
	for f.Valid() && r.Valid() && f.Offset() < r.Offset() {
		a, b := f.Byte(), r.Byte()
		if err := f.Set(b); err != nil {
			return err
		}
		if err := r.Set(a); err != nil {
			return err
		}
		f.Next()
		r.Next()
	}
	if err := f.Error(); err != nil {
		return err
	}
	return r.Error()
}

func (s *session) help([]string) error {
	names := []string{
		"append", "push", "insert", "erase", "replace", "substr",
		"find", "rfind", "first-of", "last-of", "first-not-of", "last-not-of",
		"resize", "reserve", "shrink", "clear", "pop",
		"upper", "lower", "trim", "reverse", "show", "help", "quit",
	}
	for _, name := range names {
		fmt.Fprintln(s.out, "  "+commands[name].usage)
	}
	fmt.Fprintln(s.out, `text may be Go-quoted; "npos" is accepted as a position or length`)
	return nil
}

func number(arg string) (int, error) {
	if arg == "npos" {
		return strbuf.NPos, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", arg)
	}
	return n, nil
}

func posLen(args []string) (pos, n int, err error) {
	n = strbuf.NPos
	if pos, err = number(args[0]); err != nil {
		return
	}
	if len(args) > 1 {
		n, err = number(args[1])
	}
	return
}

func char(arg string) (byte, error) {
	if len(arg) != 1 {
		return 0, fmt.Errorf("want a single byte, got %q", arg)
	}
	return arg[0], nil
}

// split breaks a line into fields on white space. A field starting with a
// double quote or a backquote is a Go string literal.
func split(line string) ([]string, error) {
	var args []string
	for {
		line = strings.TrimLeft(line, " \t")
		if line == "" {
			return args, nil
		}
		if line[0] == '"' || line[0] == '`' {
			lit, err := strconv.QuotedPrefix(line)
			if err != nil {
				return nil, fmt.Errorf("bad quoted text: %s", line)
			}
			arg, err := strconv.Unquote(lit)
			if err != nil {
				return nil, fmt.Errorf("bad quoted text: %s", lit)
			}
			args = append(args, arg)
			line = line[len(lit):]
			continue
		}
		end := strings.IndexAny(line, " \t")
		if end < 0 {
			end = len(line)
		}
		args = append(args, line[:end])
		line = line[end:]
	}
}
