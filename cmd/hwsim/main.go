// Command hwsim simulates circuit descriptions.
//
// Usage:
//
//	hwsim run [-v] <file>     simulate and print input and output traces
//	hwsim step <file>         step through the simulation interactively
//	hwsim check <file>        report constant or duplicate updates
//	hwsim version             print the version
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/s224268/hwsim"
	"github.com/s224268/hwsim/internal/hdl"
	"github.com/s224268/hwsim/symbolic"
)

const appName = "hwsim"

// Version is the program version.
var Version = "0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "step":
		os.Exit(cmdStep(os.Args[2:]))
	case "check":
		os.Exit(cmdCheck(os.Args[2:]))
	case "version":
		fmt.Println(Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`hwsim %s

Usage:
  %s run [-v] <file>     Simulate a circuit, print input and output traces.
  %s step <file>         Step through the simulation interactively.
  %s check <file>        Report constant or duplicate updates.
  %s version             Print the version.

`, Version, appName, appName, appName, appName)
}

func load(path string) (*hwsim.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return hdl.Parse(path, f)
}

// fileArg parses the flags of a sub-command and returns its single file
// argument.
//
func fileArg(fs *flag.FlagSet, args []string) (string, bool) {
	if err := fs.Parse(args); err != nil {
		return "", false
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s %s <file>\n", appName, fs.Name())
		return "", false
	}
	return fs.Arg(0), true
}

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log the signal values after every cycle")
	path, ok := fileArg(fs, args)
	if !ok {
		return 2
	}
	c, err := load(path)
	if err != nil {
		log.Print(err)
		return 1
	}
	if err := simulate(os.Stdout, c, *verbose); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

// simulate runs c and writes its input traces followed by its output traces
// to w.
//
func simulate(w io.Writer, c *hwsim.Circuit, verbose bool) error {
	if verbose {
		c.OnCycle = func(i int, env hwsim.Environment) {
			log.Printf("cycle %d: %v", i, env)
		}
	}
	if err := c.Run(); err != nil {
		return errors.Wrap(err, c.Name)
	}
	return hwsim.WriteTraces(w, c.SimInputs, c.Results())
}

func cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	path, ok := fileArg(fs, args)
	if !ok {
		return 2
	}
	c, err := load(path)
	if err != nil {
		log.Print(err)
		return 1
	}
	n, err := check(os.Stdout, c)
	if err != nil {
		log.Print(err)
		return 1
	}
	if n > 0 {
		return 1
	}
	return 0
}

// check writes the findings of symbolic.Check to w and returns their count.
//
func check(w io.Writer, c *hwsim.Circuit) (int, error) {
	fs, err := symbolic.Check(c)
	if err != nil {
		return 0, errors.Wrap(err, c.Name)
	}
	for _, f := range fs {
		if _, err := fmt.Fprintf(w, "%s: %v\n", c.Name, f); err != nil {
			return 0, err
		}
	}
	return len(fs), nil
}
