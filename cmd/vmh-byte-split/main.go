// Command vmh-byte-split splits a .vmh file into one file per byte of the
// memory word, for byte-enabled block RAMs built from one RAM per byte.
//
// For a 32-bit word file.vmh it writes 0file.vmh, 1file.vmh, 2file.vmh and
// 3file.vmh into the current directory, where the prefix is the byte index
// within each word.
//
// Usage:
//
//	vmh-byte-split file.vmh
//	vmh-byte-split --bytes-per-word 2 -o build/ file.vmh
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"

	"github.com/moffa90/go-memimg/internal/cli"
	"github.com/moffa90/go-memimg/vmh"
)

// CLI defines the command-line interface for vmh-byte-split.
type CLI struct {
	cli.Globals `embed:""`

	Input string `arg:"" name:"file" help:"VMH file to split"`

	BytesPerWord int    `name:"bytes-per-word" short:"b" help:"Bytes per memory word (default 4)"`
	OutputDir    string `name:"output-dir" short:"o" help:"Directory for the lane files (default: current directory)"`
	Lenient      bool   `name:"lenient" help:"Emit best-effort lanes for malformed words instead of failing"`
}

// Run splits the input and prints the created paths to w.
func (c *CLI) Run(w io.Writer) error {
	cfg, logger, err := c.Setup()
	if err != nil {
		return err
	}

	bytesPerWord := cfg.BytesPerWord
	if c.BytesPerWord != 0 {
		bytesPerWord = c.BytesPerWord
	}
	outputDir := cfg.OutputDir
	if c.OutputDir != "" {
		outputDir = c.OutputDir
	}

	if _, err := os.Stat(c.Input); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file not found: %s", c.Input)
	}

	paths, err := vmh.SplitFile(c.Input, outputDir,
		vmh.WithBytesPerWord(bytesPerWord),
		vmh.WithLenient(cfg.Lenient || c.Lenient),
		vmh.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	return nil
}

func main() {
	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("vmh-byte-split"),
		kong.Description("Split a .vmh memory file into one file per byte lane"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(c.Run(os.Stdout))
}
