package main

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/ghuser/storefront/pkg/app"
	"github.com/ghuser/storefront/pkg/config"
	"github.com/ghuser/storefront/pkg/logger"
)

// storefront routes: list every registered route.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List all registered HTTP routes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return printRoutes(cmd.OutOrStdout(), cfg)
	},
}

type route struct {
	method string
	path   string
}

func printRoutes(out io.Writer, cfg *config.Config) error {
	a := &app.Application{Config: cfg, Logger: logger.Discard()}
	routes, err := collectRoutes(newHandler(a, nil, time.Now()))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH")
	fmt.Fprintln(w, "------\t----")
	for _, rt := range routes {
		fmt.Fprintf(w, "%s\t%s\n", rt.method, rt.path)
	}
	return w.Flush()
}

func collectRoutes(r chi.Routes) ([]route, error) {
	var routes []route
	err := chi.Walk(r, func(method, path string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path = strings.Replace(path, "/*/", "/", -1)
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		routes = append(routes, route{method: method, path: path})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk routes: %w", err)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].path != routes[j].path {
			return routes[i].path < routes[j].path
		}
		return routes[i].method < routes[j].method
	})
	return routes, nil
}
