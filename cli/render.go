package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/heathj/commentrender/page"
	"github.com/heathj/commentrender/parser"
)

func newRenderCmd() *cobra.Command {
	var (
		out         string
		contentType string
	)
	cmd := &cobra.Command{
		Use:   "render [FILE|-]",
		Short: "Render the comments of an HTML page and print the page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open input")
				}
				defer f.Close()
				in = f
			}

			p, err := page.Load(in, e.log,
				parser.WithContentType(contentType),
				parser.WithScripting(e.cfg.Scripting),
			)
			if err != nil {
				return err
			}
			r, err := e.cfg.Renderer(e.log)
			if err != nil {
				return err
			}
			if err := r.Attach(p, e.cfg.Marker); err != nil {
				return err
			}
			if err := p.Ready(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return errors.Wrap(err, "create output")
				}
				defer f.Close()
				w = f
			}
			if _, err := io.WriteString(w, p.HTML()); err != nil {
				return errors.Wrap(err, "write output")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the page to this file instead of stdout")
	cmd.Flags().StringVar(&contentType, "content-type", "", "Content-Type of the input, used to pick its charset")
	return cmd
}
