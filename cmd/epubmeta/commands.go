package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yuanying/epubmeta"
	"github.com/yuanying/epubmeta/internal/thumbnail"
)

func newMetaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meta <epub>",
		Short: "Print title, manifest, spine and table of contents as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, args[0], func(s *session) error {
				meta, err := s.book.Meta()
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				if s.opts.Indent {
					enc.SetIndent("", "  ")
				}
				return enc.Encode(meta)
			})
		},
	}
	cmd.Flags().Bool("indent", false, "Indent the JSON output")
	return cmd
}

func newTocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toc <epub>",
		Short: "Print the table of contents as an outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, args[0], func(s *session) error {
				meta, err := s.book.Meta()
				if err != nil {
					return err
				}
				return writeOutline(cmd.OutOrStdout(), meta.Toc.Contents, 0)
			})
		},
	}
}

// writeOutline prints one line per entry, indented two spaces per level.
func writeOutline(w io.Writer, nodes []epubmeta.TocNode, depth int) error {
	for _, n := range nodes {
		line := strings.Repeat("  ", depth) + n.Title
		if n.Href != nil {
			line += " (" + *n.Href + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := writeOutline(w, n.Children, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <epub>",
		Short: "List archive entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBook(cmd, args[0], func(s *session) error {
				for _, name := range s.book.Files() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newResourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource <epub> <path>",
		Short: "Extract one archive entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			return withBook(cmd, args[0], func(s *session) error {
				data, err := s.book.Resource(args[1])
				if err != nil {
					return err
				}

				sniffed := mimetype.Detect(data)
				fields := []zap.Field{
					zap.String("path", args[1]),
					zap.Int("bytes", len(data)),
					zap.String("detected", sniffed.String()),
				}
				if declared := declaredType(s.book, args[1]); declared != "" {
					fields = append(fields, zap.String("declared", declared))
					if !sniffed.Is(declared) {
						s.log.Warn("declared media type does not match content", fields...)
					}
				}
				s.log.Info("extracted resource", fields...)

				return writeOutput(cmd, output, data)
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	return cmd
}

// declaredType looks path up in the manifest. It returns "" when the book
// has no readable metadata or the manifest declares no type.
func declaredType(book *epubmeta.Book, path string) string {
	meta, err := book.Meta()
	if err != nil {
		return ""
	}
	if mt := meta.Manifest[path]; mt != nil {
		return *mt
	}
	return ""
}

func newCoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cover <epub>",
		Short: "Extract the cover image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			maxWidth, _ := cmd.Flags().GetInt("max-width")
			if maxWidth < 0 {
				return errors.Errorf("invalid --max-width: %d (must be >= 0)", maxWidth)
			}

			return withBook(cmd, args[0], func(s *session) error {
				cover, err := s.book.Cover()
				if err != nil {
					return err
				}
				s.log.Info("found cover",
					zap.String("path", cover.Path),
					zap.String("media_type", cover.MediaType),
					zap.Int("bytes", len(cover.Data)))

				data := cover.Data
				if maxWidth > 0 {
					img, err := thumbnail.New(maxWidth).Scale(cover.Data)
					switch {
					case errors.Is(err, thumbnail.ErrUnsupported):
						s.log.Warn("cover is not a raster image, writing it unscaled", zap.Error(err))
					case err != nil:
						return errors.WithMessage(err, "scale cover")
					case img.Resized:
						s.log.Info("scaled cover",
							zap.Int("width", img.Width),
							zap.Int("height", img.Height),
							zap.String("media_type", img.MediaType()))
						data = img.Data
					}
				}

				return writeOutput(cmd, output, data)
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().Int("max-width", 0, "Downscale raster covers wider than this many pixels (0: keep size)")
	return cmd
}

// writeOutput writes data to path, or to the command's stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
