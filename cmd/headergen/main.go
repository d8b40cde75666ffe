// Command headergen renders the known-header dictionary artifact from the
// compiled-in registry. The output is deterministic; -check regenerates
// and diffs against an existing file so CI can catch drift.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yourusername/surge/pkg/surge/knownheaders"
)

func main() {
	app := &cli.App{
		Name:  "headergen",
		Usage: "generate the surge known-header dictionary source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "headers_generated.go",
				Usage:   "write the artifact to `FILE` (- for stdout)",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "verify FILE matches the generator output instead of writing",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	src, err := knownheaders.Generate()
	if err != nil {
		return err
	}

	out := c.String("output")
	if c.Bool("check") {
		existing, err := os.ReadFile(out)
		if err != nil {
			return fmt.Errorf("check %s: %w", out, err)
		}
		if !bytes.Equal(existing, src) {
			return fmt.Errorf("%s is stale; rerun headergen", out)
		}
		return nil
	}

	if out == "-" {
		_, err := os.Stdout.Write(src)
		return err
	}
	return os.WriteFile(out, src, 0o644)
}
