/*
Cfgshell starts an interactive session for testing strings against a
context-free grammar.

It reads in a grammar file (TOML by default, or a REZI binary blob with
-b/--binary) and starts a read-eval-print loop that tokenizes and parses
each line of input the user gives it, printing either the resulting parse
tree or a formatted syntax error. The interpreter reads from stdin until
the user types "QUIT".

Usage:

	cfgshell [flags]

The flags are:

	-v, --version
		Give the current version of cfgparse and then exit.

	-g, --grammar FILE
		Load the provided grammar file. Defaults to the file "grammar.toml"
		in the current working directory.

	-b, --binary
		Treat the grammar file as a REZI binary blob instead of TOML.

	-e, --earley
		Parse with the Earley algorithm instead of CYK.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading input even if launched in a tty
		with stdin and stdout.

	-c, --command INPUT
		Immediately test the given input string(s) at start and leave the
		interpreter open. Can be multiple strings separated by the ";"
		character.

Once a session has started, each line of input is tokenized and parsed
against the loaded grammar and the resulting tree (or error) is printed.
To exit the interpreter, type "QUIT".
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dekarrin/cfgparse/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitParseError indicates an unsuccessful program execution due to a
	// problem running the shell loop itself (not a rejected input string,
	// which is reported but does not end the session).
	ExitParseError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue loading the grammar.
	ExitInitError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	grammarFile *string = pflag.StringP("grammar", "g", "grammar.toml", "The grammar file to load")
	binaryInput *bool   = pflag.BoolP("binary", "b", false, "Treat the grammar file as a REZI binary blob instead of TOML")
	useEarley   *bool   = pflag.BoolP("earley", "e", false, "Parse with the Earley algorithm instead of CYK")
	forceDirect *bool   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	startInput  *string = pflag.StringP("command", "c", "", "Test the given input string(s) immediately at start and leave the interpreter open")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	var startInputs []string
	if *startInput != "" {
		startInputs = strings.Split(*startInput, ";")
	}

	sh, err := newShell(*grammarFile, *binaryInput, *useEarley, *forceDirect)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer sh.Close()

	if err := sh.RunUntilQuit(startInputs); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitParseError
		return
	}
}
