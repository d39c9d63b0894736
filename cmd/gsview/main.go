// gsview is a small interpreter for poking at a growable string.
//
// Usage:
//
//	gsview                        # read commands from stdin
//	gsview script.txt             # run a script
//	gsview -init "hello" -v       # start from content, log reallocations
//	gsview -config gsview.toml    # growth ramp and display width
//
// Each line is one command, e.g.
//
//	append "Hello, World"
//	find World
//	erase 5 2
//
// Type help for the full list. After every command the buffer state is
// printed as len=L cap=C gen=G "content".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var log = logrus.New()

func main() {
	verbose := flag.Bool("v", false, "log reallocations")
	configPath := flag.String("config", "", "TOML config file")
	initText := flag.String("init", "", "initial content")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Usage: gsview [-v] [-config file] [-init text] [script]")
		os.Exit(1)
	}
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("cannot load config")
	}

	width := cfg.width(func() (int, bool) {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return 0, false
		}
		w, _, err := term.GetSize(fd)
		return w, err == nil
	})

	var in io.Reader = os.Stdin
	prompt := term.IsTerminal(int(os.Stdin.Fd()))
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.WithError(err).Fatal("cannot open script")
		}
		defer f.Close()
		in, prompt = f, false
	}

	s := newSession(cfg.policy(), width, os.Stdout, log)
	s.init(*initText)
	log.WithFields(logrus.Fields{
		"stride": cfg.policy().Stride,
		"floor":  cfg.policy().Floor,
		"width":  width,
	}).Debug("session started")

	if err := s.run(in, prompt); err != nil {
		log.WithError(err).Fatal("read failed")
	}
}
