// Command pwdx-search queries an index built by pwdx-index for lines
// matching a query string under a chosen search style.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pwdx/pwdx/internal/pwdxcfg"
	"github.com/pwdx/pwdx/internal/search"
	"github.com/pwdx/pwdx/internal/shard"
)

func main() {
	app := &cli.App{
		Name:      "pwdx-search",
		Usage:     "search a pwdx index for lines containing a query",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "directory containing the shard files to search",
				Value:   pwdxcfg.IndexPath,
			},
			&cli.StringFlag{
				Name:    "style",
				Aliases: []string{"s"},
				Usage:   "search style: strict, case-insensitive, or fuzzy",
				Value:   "strict",
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "number of matching lines to skip",
				Value: 0,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "maximum number of matching lines to print (negative means unlimited)",
				Value: -1,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: pwdx-search [options] <query>")
	}
	query := c.Args().First()

	style, err := search.ParseStyle(c.String("style"))
	if err != nil {
		return err
	}

	dir := c.String("dir")
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("failed to stat index directory %s: %w", dir, err)
	}

	collection := shard.New(dir)
	lines, err := collection.FindLinesContainingPaginated(query, style, c.Int("offset"), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
