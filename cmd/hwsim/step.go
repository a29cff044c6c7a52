package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/s224268/hwsim"
)

const (
	historyFile = ".hwsim_history"
	promptStep  = "step> "
)

var stepHelp = `Commands:
  s, step (or empty line)  run the next cycle, print its outputs and the
                           signal values for the next cycle
  p, print                 print signal values
  o, outputs               print output traces
  r, reset                 restart the simulation
  q, quit                  exit
`

// stepper drives a circuit one cycle at a time.
//
type stepper struct {
	c    *hwsim.Circuit
	w    io.Writer
	next int // next cycle to run
}

func (s *stepper) reset() error {
	s.next = 0
	return s.c.Initialize()
}

// exec executes a single command and reports whether the session is over.
//
func (s *stepper) exec(cmd string) (quit bool) {
	switch strings.TrimSpace(cmd) {
	case "", "s", "step":
		if s.next >= s.c.Len() {
			fmt.Fprintf(s.w, "simulation complete after %d cycles\n", s.c.Len())
			return false
		}
		if err := s.c.Step(s.next); err != nil {
			fmt.Fprintf(s.w, "%v (r to restart)\n", err)
			return false
		}
		fmt.Fprintf(s.w, "cycle %d: %s; next %v\n", s.next, s.recorded(s.next), s.c.Env())
		s.next++
	case "p", "print":
		fmt.Fprintln(s.w, s.c.Env())
	case "o", "outputs":
		// show partial traces, unset slots are yet to be simulated.
		if err := hwsim.WriteTraces(s.w, s.c.SimOutputs); err != nil {
			fmt.Fprintln(s.w, err)
		}
	case "r", "reset":
		if err := s.reset(); err != nil {
			fmt.Fprintln(s.w, err)
		}
	case "q", "quit":
		return true
	default:
		fmt.Fprint(s.w, stepHelp)
	}
	return false
}

// recorded returns the output values stored for cycle i, as in "q=0". The
// environment after a step already holds the advanced latches.
//
func (s *stepper) recorded(i int) string {
	var b strings.Builder
	for k, t := range s.c.SimOutputs {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Signal)
		b.WriteByte('=')
		b.WriteByte(t.Values[i].Char())
	}
	return b.String()
}

func cmdStep(args []string) int {
	fs := flag.NewFlagSet("step", flag.ContinueOnError)
	path, ok := fileArg(fs, args)
	if !ok {
		return 2
	}
	c, err := load(path)
	if err != nil {
		log.Print(err)
		return 1
	}
	s := &stepper{c: c, w: os.Stdout}
	if err := s.reset(); err != nil {
		log.Print(err)
		return 1
	}
	fmt.Printf("%v, %d cycles\n", c, c.Len())

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		in, err := ln.Prompt(promptStep)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			if err != io.EOF {
				log.Print(err)
			}
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(in) != "" {
			ln.AppendHistory(in)
		}
		if s.exec(in) {
			return 0
		}
	}
}
