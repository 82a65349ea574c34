package mcpadb

import (
	"context"

	"github.com/jessevdk/go-flags"
)

// Run parses args and serves MCP on the configured transport until it stops.
func Run(args []string) error {
	ctx := context.Background()
	options, err := LoadOptions(ctx, args)
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}
	srv, err := NewServer(ctx, options)
	if err != nil {
		return err
	}
	if options.Transport == TransportStdio {
		return srv.Stdio(ctx).ListenAndServe()
	}
	return srv.HTTP(ctx, "").ListenAndServe()
}
