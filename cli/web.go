// ABOUTME: CLI command that starts the local web dashboard
package cli

import (
	"flag"
	"fmt"

	"github.com/serviceradar/radar/web"
)

func WebCommand(app *App, args []string) error {
	fs := flag.NewFlagSet("web", flag.ExitOnError)
	port := fs.Int("port", 8080, "Port to listen on")
	if err := fs.Parse(args); err != nil {
		return err
	}

	server, err := web.NewServer(app.Cache, app.API, app.Store)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}
	return server.Start(*port)
}
