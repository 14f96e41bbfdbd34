// Command fmindex is a thin demonstration CLI over the fmindex
// package: build an index from a file and count or locate a pattern in
// it. It exists to exercise the library from the outside, the same
// role bebop-poly's own commands.go/main.go play for that toolkit; it
// is not part of the index's public API.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/succinct-go/fmindex"
)

func main() {
	app := &cli.App{
		Name:  "fmindex",
		Usage: "build and query a succinct full-text self-index over a file",
		Commands: []*cli.Command{
			countCommand(),
			locateCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "fmindex:", err)
		os.Exit(1)
	}
}

func countCommand() *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "count occurrences of a pattern in a file",
		ArgsUsage: "FILE PATTERN",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "run-length", Usage: "use the run-length FM-Index kernel"},
		},
		Action: func(c *cli.Context) error {
			idx, pattern, err := buildFromArgs(c)
			if err != nil {
				return err
			}
			n, err := idx.Count(pattern)
			if err != nil {
				return err
			}
			fmt.Println(n)
			return nil
		},
	}
}

func locateCommand() *cli.Command {
	return &cli.Command{
		Name:      "locate",
		Usage:     "print the starting position of every occurrence of a pattern in a file",
		ArgsUsage: "FILE PATTERN",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "run-length", Usage: "use the run-length FM-Index kernel"},
			&cli.UintFlag{Name: "sample-level", Usage: "suffix-array sampling level (higher = less memory, slower locate)"},
		},
		Action: func(c *cli.Context) error {
			idx, pattern, err := buildFromArgs(c)
			if err != nil {
				return err
			}
			positions, err := idx.Locate(pattern)
			if err != nil {
				return err
			}
			for _, p := range positions {
				fmt.Println(p)
			}
			return nil
		},
	}
}

// buildFromArgs reads FILE and PATTERN from the command's positional
// arguments, maps both through the same byte->symbol encoding (byte
// value + 1, so the reserved sentinel 0 never collides with a real
// byte), and builds an Index with Locate enabled.
func buildFromArgs(c *cli.Context) (*fmindex.Index, []int32, error) {
	if c.Args().Len() < 2 {
		return nil, nil, fmt.Errorf("expected FILE and PATTERN arguments")
	}
	path := c.Args().Get(0)
	pattern := c.Args().Get(1)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	idx, err := fmindex.Build(bytesToSymbols(raw), fmindex.BuildOptions{
		Locate:      true,
		SampleLevel: c.Uint("sample-level"),
		RunLength:   c.Bool("run-length"),
	})
	if err != nil {
		return nil, nil, err
	}
	return idx, bytesToSymbols([]byte(pattern)), nil
}

func bytesToSymbols(raw []byte) []int32 {
	symbols := make([]int32, len(raw))
	for i, b := range raw {
		symbols[i] = int32(b) + 1
	}
	return symbols
}
