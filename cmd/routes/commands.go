// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"rivaas.dev/routing/collection"
	"rivaas.dev/routing/loader"
)

func (c *cli) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "List routes in match order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if routes.Count() == 0 {
				_, _ = fmt.Fprintln(out, "No routes defined")
				return nil
			}

			rows := make([][]string, 0, routes.Count())
			for _, e := range routes.All() {
				host := e.Route.Host()
				if host == "" {
					host = "ANY"
				}
				rows = append(rows, []string{
					e.Name,
					orAny(e.Route.Methods(), "|"),
					orAny(e.Route.Schemes(), "|"),
					host,
					e.Route.Path(),
					strconv.Itoa(e.Priority),
				})
			}
			renderTable(out, []string{"Name", "Method", "Scheme", "Host", "Path", "Priority"}, rows)

			showAliases, _ := cmd.Flags().GetBool("aliases")
			if aliases := routes.Aliases(); showAliases && len(aliases) > 0 {
				rows = rows[:0]
				for _, na := range aliases {
					deprecated := "-"
					if d, ok := na.Alias.Deprecation(na.Name); ok {
						deprecated = d.Package + " " + d.Version
					}
					rows = append(rows, []string{na.Name, na.Alias.Target(), deprecated})
				}
				renderTable(out, []string{"Alias", "Target", "Deprecated since"}, rows)
			}
			return nil
		},
	}
	cmd.Flags().Bool("aliases", false, "also list aliases")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE NAME",
		Short: "Show the details of a route or alias",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			routes, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}

			name := args[1]
			r, err := routes.Get(name)
			if err != nil {
				return err
			}
			if r == nil {
				return fmt.Errorf("%w: %s", collection.ErrRouteNotFound, name)
			}

			rows := [][]string{{"Route Name", name}}
			if alias, ok := routes.Alias(name); ok {
				rows = append(rows, []string{"Alias Of", alias.Target()})
			}
			host := r.Host()
			if host == "" {
				host = "ANY"
			}
			rows = append(rows,
				[]string{"Path", r.Path()},
				[]string{"Host", host},
				[]string{"Scheme", orAny(r.Schemes(), "|")},
				[]string{"Method", orAny(r.Methods(), "|")},
				[]string{"Condition", r.Condition()},
				[]string{"Priority", strconv.Itoa(routes.Priority(name))},
				[]string{"Requirements", formatMap(r.Requirements())},
				[]string{"Defaults", formatMap(r.Defaults())},
				[]string{"Options", formatMap(r.Options())},
			)
			renderTable(cmd.OutOrStdout(), []string{"Property", "Value"}, rows)
			return nil
		},
	}
}

func (c *cli) urlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url FILE NAME [KEY=VALUE...]",
		Short: "Generate the URL of a route",
		Long:  "Generate the URL of a route. Parameters that are not part of the path are added to the query string.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make(map[string]string, len(args)-2)
			for _, arg := range args[2:] {
				k, v, ok := strings.Cut(arg, "=")
				if !ok || k == "" {
					return fmt.Errorf("invalid parameter %q, expected KEY=VALUE", arg)
				}
				params[k] = v
			}

			query := url.Values{}
			raw, _ := cmd.Flags().GetStringArray("query")
			for _, q := range raw {
				k, v, ok := strings.Cut(q, "=")
				if !ok || k == "" {
					return fmt.Errorf("invalid query %q, expected KEY=VALUE", q)
				}
				query.Add(k, v)
			}

			routes, err := c.load(cmd, args[0])
			if err != nil {
				return err
			}

			u, err := routes.URL(args[1], params, query)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}
	cmd.Flags().StringArrayP("query", "q", nil, "query parameter KEY=VALUE (repeatable)")
	return cmd
}

func (c *cli) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Reload a route file whenever it or its imports change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			summary := func(event string, routes *collection.Collection) {
				_, _ = fmt.Fprintf(out, "%s %s: %d routes, %d aliases\n",
					time.Now().Format(time.TimeOnly), event, routes.Count(), len(routes.Aliases()))
			}

			w, err := loader.NewWatcher(ctx, c.loader(), args[0],
				loader.WithDebounce(c.v.GetDuration("debounce")),
				loader.OnReload(func(routes *collection.Collection) { summary("reloaded", routes) }),
			)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			summary("loaded", w.Current())

			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().Duration("debounce", loader.DefaultDebounce, "quiet period before reloading (env ROUTES_DEBOUNCE)")
	_ = c.v.BindPFlag("debounce", cmd.Flags().Lookup("debounce"))
	return cmd
}

// formatMap renders m as sorted "key: value" lines.
func formatMap[V any](m map[string]V) string {
	if len(m) == 0 {
		return "NONE"
	}
	lines := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v, err := cast.ToStringE(m[k])
		if err != nil {
			v = fmt.Sprint(m[k])
		}
		lines = append(lines, k+": "+v)
	}
	return strings.Join(lines, "\n")
}
