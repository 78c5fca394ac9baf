package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/qptrie --input <file> <command> <flags>

var (
	inputFlag = cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "file with one `key[<TAB>value]` entry per line, stdin if empty or -",
	}
	hexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "keys (both in the input and in the arguments) are hex encoded, _ is ignored",
	}
	maxHeightFlag = cli.IntFlag{
		Name:  "max-height",
		Usage: "limit the number of branch levels the trie may create, unlimited if not set",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug logging",
	}
)

var commands = []*cli.Command{
	&GetCmd,
	&ScanCmd,
	&SeekCmd,
	&CheckCmd,
	&DumpCmd,
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "qptrie",
		Usage: "load keys into a QP-Trie and query it",
		Flags: []cli.Flag{
			&inputFlag,
			&hexFlag,
			&maxHeightFlag,
			&verboseFlag,
		},
		Commands: commands,
	}
}
