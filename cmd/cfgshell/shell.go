package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/rosed"

	cfgparse "github.com/dekarrin/cfgparse"
	"github.com/dekarrin/cfgparse/internal/input"
	"github.com/dekarrin/cfgparse/persist"
	"github.com/dekarrin/cfgparse/synerr"
)

const consoleOutputWidth = 80

// shell contains the things needed to run a grammar-testing REPL attached to
// an input stream and an output stream.
type shell struct {
	parser      *cfgparse.Parser
	in          commandReader
	out         *bufio.Writer
	forceDirect bool
	running     bool
}

// commandReader is the minimal surface a shell needs from either of
// internal/input's two reader implementations.
type commandReader interface {
	ReadCommand() (string, error)
	AllowBlank(bool)
	Close() error
}

// newShell reads and decodes the grammar file at grammarPath and builds a
// shell ready to test input strings against it. If binary is set, the file
// is decoded as a REZI binary blob; otherwise it is decoded as TOML.
func newShell(grammarPath string, binary bool, earley bool, forceDirectInput bool) (*shell, error) {
	data, err := os.ReadFile(grammarPath)
	if err != nil {
		return nil, fmt.Errorf("read grammar file: %w", err)
	}

	var p *cfgparse.Parser
	algo := cfgparse.CYK
	if earley {
		algo = cfgparse.Earley
	}

	if binary {
		decoded, err := persist.DecodeBinary(data)
		if err != nil {
			return nil, fmt.Errorf("decode grammar: %w", err)
		}
		p = cfgparse.NewParser(decoded, algo)
	} else {
		decoded, err := persist.DecodeTOML(data)
		if err != nil {
			return nil, fmt.Errorf("decode grammar: %w", err)
		}
		p = cfgparse.NewParser(decoded, algo)
	}

	sh := &shell{
		parser:      p,
		out:         bufio.NewWriter(os.Stdout),
		forceDirect: forceDirectInput,
	}

	if forceDirectInput {
		sh.in = input.NewDirectReader(os.Stdin)
	} else {
		icr, err := input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
		sh.in = icr
	}

	return sh, nil
}

// Close tears down the shell's input reader.
func (sh *shell) Close() error {
	return sh.in.Close()
}

// RunUntilQuit begins reading input strings from the shell's reader and
// testing each against the loaded grammar until the QUIT command is given.
// startInputs, if non-empty, are tested immediately before entering the
// interactive loop.
func (sh *shell) RunUntilQuit(startInputs []string) error {
	introMsg := "cfgparse interactive shell\n"
	if sh.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "==========================\n"

	if err := sh.writeLine(introMsg); err != nil {
		return err
	}

	for _, in := range startInputs {
		sh.evaluate(in)
	}

	sh.running = true
	defer func() { sh.running = false }()

	for sh.running {
		sh.in.AllowBlank(false)
		line, err := sh.in.ReadCommand()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("read input: %w", err)
		}

		if line == "QUIT" {
			sh.running = false
			break
		}

		sh.evaluate(line)
	}

	return sh.writeLine("Goodbye\n")
}

// evaluate tokenizes and parses a single input line, writing its parse tree
// or a formatted syntax error to the shell's output.
func (sh *shell) evaluate(line string) {
	tree, err := sh.parser.SyntaxTree(line)
	if err != nil {
		msg := err.Error()
		if se, ok := err.(*synerr.Error); ok {
			msg = se.FullMessage()
		}
		sh.writeLine(rosed.Edit(msg).Wrap(consoleOutputWidth).String() + "\n")
		return
	}

	sh.writeLine(tree.String() + "\n")
}

func (sh *shell) writeLine(s string) error {
	if _, err := sh.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return sh.out.Flush()
}
