package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dacapoday/gstr/growth"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T) (*session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return newSession(growth.Default, defaultWidth, &out, logger), &out, &logs
}

func script(s *session, lines ...string) {
	for _, line := range lines {
		if s.exec(line) {
			return
		}
	}
}

func TestSessionEditing(t *testing.T) {
	s, out, _ := testSession(t)
	script(s,
		"append Hello",
		`append ", World"`,
		"find World",
		"erase 5 2",
		`insert 5 ", "`,
		"replace 0 5 Goodbye",
	)
	want := strings.Join([]string{
		`len=5 cap=16 gen=1 "Hello"`,
		`len=12 cap=16 gen=1 "Hello, World"`,
		`7`,
		`len=12 cap=16 gen=1 "Hello, World"`,
		`len=10 cap=16 gen=1 "HelloWorld"`,
		`len=12 cap=16 gen=1 "Hello, World"`,
		`len=14 cap=16 gen=1 "Goodbye, World"`,
	}, "\n") + "\n"
	require.Equal(t, want, out.String())
	require.Equal(t, "Goodbye, World", s.buf.String())
}

func TestSessionTransforms(t *testing.T) {
	s, out, _ := testSession(t)
	s.init("  abc  ")
	script(s,
		"trim",
		"upper",
		"reverse",
		"substr 1",
		"resize 5 -",
		"pop",
		"shrink",
		"reserve 10",
		"rfind A",
		"last-not-of -",
		"first-of xyz",
		"clear",
	)
	want := strings.Join([]string{
		`len=3 cap=16 gen=1 "abc"`,
		`len=3 cap=16 gen=1 "ABC"`,
		`len=3 cap=16 gen=1 "CBA"`,
		`"BA"`,
		`len=3 cap=16 gen=1 "CBA"`,
		`len=5 cap=16 gen=1 "CBA--"`,
		`len=4 cap=16 gen=1 "CBA-"`,
		`len=4 cap=4 gen=2 "CBA-"`,
		`len=4 cap=10 gen=3 "CBA-"`,
		`2`,
		`len=4 cap=10 gen=3 "CBA-"`,
		`2`,
		`len=4 cap=10 gen=3 "CBA-"`,
		`npos`,
		`len=4 cap=10 gen=3 "CBA-"`,
		`len=0 cap=10 gen=3 ""`,
	}, "\n") + "\n"
	require.Equal(t, want, out.String())
}

func TestSessionErrors(t *testing.T) {
	s, out, _ := testSession(t)
	script(s,
		"insert 9 x",
		"frobnicate",
		"erase",
		"push ab",
		`append "unterminated`,
		"erase x",
		"# comment",
		"",
		"quit",
		"append never",
	)
	want := strings.Join([]string{
		`error: strbuf: Insert: pos 9, len 1, limit 0: out of range`,
		`len=0 cap=0 gen=0 ""`,
		`error: unknown command "frobnicate"`,
		`error: usage: erase P [N]`,
		`error: want a single byte, got "ab"`,
		`len=0 cap=0 gen=0 ""`,
		`error: bad quoted text: "unterminated`,
		`error: bad number "x"`,
		`len=0 cap=0 gen=0 ""`,
	}, "\n") + "\n"
	require.Equal(t, want, out.String())
	require.True(t, s.buf.IsEmpty())
}

func TestSessionLogsReallocation(t *testing.T) {
	s, _, logs := testSession(t)
	script(s, "push x", "push y", "reserve 100")

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "msg=reallocated")
	require.Contains(t, lines[0], "cap=16")
	require.Contains(t, lines[0], "gen=1")
	require.Contains(t, lines[0], "stride=17")
	require.Contains(t, lines[1], "cap=100")
	require.Contains(t, lines[1], "len=2")
}

func TestSessionRun(t *testing.T) {
	s, out, _ := testSession(t)
	err := s.run(strings.NewReader("append a\nquit\nappend b\n"), true)
	require.NoError(t, err)
	require.Equal(t, "> len=1 cap=16 gen=1 \"a\"\n> ", out.String())
	require.Equal(t, "a", s.buf.String())

	out.Reset()
	require.NoError(t, s.run(strings.NewReader("push b"), false))
	require.Equal(t, "len=2 cap=16 gen=1 \"ab\"\n", out.String())
}

func TestSessionHelp(t *testing.T) {
	s, out, _ := testSession(t)
	script(s, "help")
	for name, cmd := range commands {
		require.Contains(t, out.String(), cmd.usage, name)
	}
}

func TestElide(t *testing.T) {
	require.Equal(t, "short", elide("short", 10))
	require.Equal(t, `"abcdef...`, elide(`"abcdefghijkl"`, 10))

	s, out, _ := testSession(t)
	s.width = 30
	script(s, "append "+strings.Repeat("a", 40))
	require.Equal(t, `len=40 cap=48 gen=1 "aaaaaa...`+"\n", out.String())
}

func TestSplit(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"show", []string{"show"}},
		{"  find\tW  ", []string{"find", "W"}},
		{`insert 0 "a b"`, []string{"insert", "0", "a b"}},
		{"append `x\"y`", []string{"append", `x"y`}},
		{`append "\x41\n"`, []string{"append", "A\n"}},
		{`replace 0 npos ""`, []string{"replace", "0", "npos", ""}},
	}
	for _, tt := range tests {
		got, err := split(tt.line)
		require.NoError(t, err, tt.line)
		require.Equal(t, tt.want, got, tt.line)
	}

	_, err := split(`append "open`)
	require.Error(t, err)
}
