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
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rivaas.dev/routing/collection"
	"rivaas.dev/routing/loader"
	"rivaas.dev/routing/logging"
)

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	v      *viper.Viper
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.SetEnvPrefix("ROUTES")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "routes",
		Short:         "Inspect route files",
		Long:          "Inspect YAML, TOML and JSON route files: list routes in match order, show route details, generate URLs and watch for changes.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file with defaults for the flags below")
	flags.String("log-level", "warn", "log level: debug, info, warn, error (env ROUTES_LOG_LEVEL)")
	flags.String("log-format", "console", "log format: console, text, json (env ROUTES_LOG_FORMAT)")
	for _, name := range []string{"config", "log-level", "log-format"} {
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		c.listCmd(),
		c.showCmd(),
		c.urlCmd(),
		c.watchCmd(),
	)
	return root
}

// setup reads the optional config file and configures logging.
func (c *cli) setup(cmd *cobra.Command) error {
	if file := c.v.GetString("config"); file != "" {
		c.v.SetConfigFile(file)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	level, err := logging.ParseLevel(c.v.GetString("log-level"))
	if err != nil {
		return err
	}
	format, err := logging.ParseHandlerType(c.v.GetString("log-format"))
	if err != nil {
		return err
	}

	c.logger, err = logging.New(
		logging.WithHandlerType(format),
		logging.WithLevel(level),
		logging.WithOutput(cmd.ErrOrStderr()),
	)
	return err
}

func (c *cli) loader() *loader.Loader {
	return loader.New(loader.WithLogger(c.logger.Slog()))
}

func (c *cli) load(cmd *cobra.Command, file string) (*collection.Collection, error) {
	start := time.Now()
	routes, err := c.loader().Load(cmd.Context(), file)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("route file loaded", "file", file, "duration", time.Since(start))
	return routes, nil
}
