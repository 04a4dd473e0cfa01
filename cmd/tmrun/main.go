package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/turinglab/turing-runtime/computation"
	"github.com/turinglab/turing-runtime/persist"
	"github.com/turinglab/turing-runtime/tape"
)

// tapeList collects repeated -tape flags in order.
type tapeList []string

func (t *tapeList) String() string { return strings.Join(*t, ",") }

func (t *tapeList) Set(v string) error {
	*t = append(*t, v)
	return nil
}

func main() {
	var tapeFiles tapeList
	var (
		machineFile  = flag.String("machine", "", "Path to machine JSON document")
		alphabetFile = flag.String("alphabet", "", "Path to alphabet JSON document")
		inputStr     = flag.String("input", "", "Input string for tape 0")
		tapes        = flag.Int("k", 1, "Number of tapes")
		verbose      = flag.Bool("v", false, "Verbose logging")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Var(&tapeFiles, "tape", "Path to tape JSON document (repeatable, tape 0 first)")
	flag.Parse()

	if *machineFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: tmrun -machine <file.json> [-alphabet file] [-tape file]... [-input string] [-k N]")
		fmt.Fprintln(os.Stderr, "       tmrun -machine <file.json> -alphabet <file.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		computation.SetLogger(log)
	}

	if *interactive {
		if err := runInteractive(*machineFile, *alphabetFile, *tapes); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*machineFile, *alphabetFile, tapeFiles, *inputStr, *tapes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(machineFile, alphabetFile string, tapeFiles []string, input string, tapes int) error {
	c, err := assemble(machineFile, alphabetFile, tapeFiles, tapes)
	if err != nil {
		return err
	}
	if input != "" {
		c.InputString(input)
	}

	fmt.Printf("Initial tapes:\n%s\n", c.OutputAll())

	if err := c.Start(); err != nil {
		return err
	}
	if err := c.Wait(context.Background()); err != nil {
		return err
	}

	fmt.Printf("Final tapes:\n%s\n", c.OutputAll())
	fmt.Printf("Transitions: %d\n", c.TransitionCount())
	if c.HasAccepted() {
		fmt.Println("ACCEPTED")
	} else {
		fmt.Println("REJECTED")
	}
	return nil
}

// assemble loads the documents and builds an unstarted computation.
func assemble(machineFile, alphabetFile string, tapeFiles []string, tapes int) (*computation.Computation, error) {
	doc, err := persist.LoadMachine(machineFile)
	if err != nil {
		return nil, err
	}
	m, err := doc.Build(tapes)
	if err != nil {
		return nil, err
	}

	c := computation.New()
	c.UseMachine(m)

	if alphabetFile != "" {
		adoc, err := persist.LoadAlphabet(alphabetFile)
		if err != nil {
			return nil, err
		}
		a, err := adoc.Build()
		if err != nil {
			return nil, err
		}
		c.UseAlphabet(a)
	}

	if len(tapeFiles) > tapes {
		return nil, fmt.Errorf("got %d tape files for a %d-tape machine", len(tapeFiles), tapes)
	}
	loaded := make([]*tape.Tape, 0, len(tapeFiles))
	for _, f := range tapeFiles {
		tdoc, err := persist.LoadTape(f)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, tdoc.Build())
	}
	c.UseTapes(loaded)

	return c, nil
}
