package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yuanying/epubmeta"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "epubmeta",
		Short: "Inspect EPUB metadata and resources",
		Long: `epubmeta reads EPUB 2 and EPUB 3 files and prints their title,
manifest, spine and table of contents, or extracts single resources
such as the cover image.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (yaml, toml, json, ...)")
	flags.String("log-level", defaultLogLevel, "Log level: debug|info|warn|error")
	flags.String("log-file", "", "Also write JSON logs to this file, rotated")
	flags.Bool("strict-ncx", false, "Resolve <spine toc> as a manifest id whatever its value")
	flags.Bool("normalize-ncx-titles", false, "Collapse whitespace in NCX titles")

	root.AddCommand(
		newMetaCmd(),
		newTocCmd(),
		newLsCmd(),
		newResourceCmd(),
		newCoverCmd(),
	)
	return root
}

// session is the per-invocation state shared by subcommands.
type session struct {
	opts *cliOptions
	log  *zap.Logger
	book *epubmeta.Book
}

// withBook opens the EPUB at path and runs fn with it.
func withBook(cmd *cobra.Command, path string, fn func(s *session) error) error {
	opts, err := readCLIOptions(cmd)
	if err != nil {
		return err
	}

	log, cleanup := newLogger(opts, cmd.ErrOrStderr())
	defer cleanup()

	book, err := epubmeta.Open(path, opts.bookOptions()...)
	if err != nil {
		log.Error("failed to open EPUB", zap.String("path", path), zap.Error(err))
		return err
	}
	defer book.Close()
	log.Debug("opened EPUB", zap.String("path", path), zap.Int("entries", len(book.Files())))

	if err := fn(&session{opts: opts, log: log, book: book}); err != nil {
		log.Error("command failed", zap.String("command", cmd.Name()), zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
