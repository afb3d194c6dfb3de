// Command pwdx-index builds an on-disk search index over a large plaintext
// corpus, sharded by the key-derivation pipeline in internal/keys.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pwdx/pwdx/internal/indexer"
	"github.com/pwdx/pwdx/internal/pwdxcfg"
	"github.com/pwdx/pwdx/internal/pwdxlog"
)

func main() {
	app := &cli.App{
		Name:  "pwdx-index",
		Usage: "index a plaintext corpus into sharded, search-ready files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "path to the source corpus file",
				Value:   pwdxcfg.SourcePath,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "directory to write shard files into",
				Value:   pwdxcfg.IndexPath,
			},
			&cli.IntFlag{
				Name:    "threads",
				Aliases: []string{"t"},
				Usage:   "number of concurrent indexing workers",
				Value:   pwdxcfg.NumberOfThreads,
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Usage: "buffered-reader chunk size in bytes (used only with --buffered)",
				Value: pwdxcfg.ChunkSize,
			},
			&cli.IntFlag{
				Name:  "max-chunk-size",
				Usage: "approximate size in bytes of each memory-mapped indexing window",
				Value: pwdxcfg.MaxChunkSize,
			},
			&cli.BoolFlag{
				Name:  "buffered",
				Usage: "use the sequential buffered reader instead of the memory-mapped parallel reader",
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
	input := c.String("input")
	output := c.String("output")
	threads := c.Int("threads")

	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("failed to stat input file %s: %w", input, err)
	}

	driver := indexer.New(threads)
	driver.ChunkSize = c.Int("chunk-size")
	driver.MaxChunkSize = c.Int("max-chunk-size")
	driver.Progress = func(processed, total int64) {
		pwdxlog.Get().Info("indexing progress", "processed_bytes", processed, "total_bytes", total)
	}

	if c.Bool("buffered") {
		_, err := driver.RunBuffered(input, output)
		if err != nil {
			return fmt.Errorf("failed to index corpus: %w", err)
		}
		pwdxlog.Get().Info("indexing completed successfully")
		return nil
	}

	if _, err := driver.Run(context.Background(), input, output); err != nil {
		return fmt.Errorf("failed to index corpus: %w", err)
	}
	pwdxlog.Get().Info("indexing completed successfully")
	return nil
}
