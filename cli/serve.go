package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heathj/commentrender/server"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve HTML pages with their comments rendered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd)
			r, err := e.cfg.Renderer(e.log)
			if err != nil {
				return err
			}
			srv := server.New(server.Config{
				Renderer:  r,
				Marker:    e.cfg.Marker,
				PagesDir:  e.cfg.PagesDir,
				Scripting: e.cfg.Scripting,
				Log:       e.log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, e.cfg.HTTPAddr)
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().String("pages-dir", "", "directory of HTML pages to serve")
	bindFlags(v, cmd.Flags().Lookup, map[string]string{
		"http_addr": "addr",
		"pages_dir": "pages-dir",
	})
	return cmd
}
