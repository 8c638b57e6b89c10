package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shamank/cetus-sdk-go/pkg/config"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func resolve(c *cli.Context) (config.Module, config.Env, config.Options, error) {
	m, err := config.ParseModule(c.String(flagModule))
	if err != nil {
		return "", "", config.Options{}, err
	}
	env, err := config.ParseEnv(c.String(flagEnv))
	if err != nil {
		return "", "", config.Options{}, err
	}
	opts, err := config.Load(m, env, c.String(flagCfg))
	if err != nil {
		return "", "", config.Options{}, err
	}
	return m, env, opts, nil
}

func listCmd(c *cli.Context) error {
	w := c.App.Writer
	color.New(color.FgHiBlue, color.Bold).Fprintln(w, "Preset deployments")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODULE\tENV\tVERSION\tPACKAGE")
	for _, m := range config.Modules() {
		for _, env := range config.EnvsOf(m) {
			opts, err := config.Lookup(m, env)
			if err != nil {
				return err
			}
			version, pkg := "-", "-"
			if p, ok := opts.Package(m); ok {
				version = fmt.Sprint(p.Version)
				pkg = p.PackageID
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m, env, version, pkg)
		}
	}
	return tw.Flush()
}

func showCmd(c *cli.Context) error {
	_, _, opts, err := resolve(c)
	if err != nil {
		return err
	}
	return encode(c.App.Writer, c.String(flagOutput), opts)
}

func encode(w io.Writer, format string, opts config.Options) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(opts); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func validateCmd(c *cli.Context) error {
	m, env, _, err := resolve(c)
	if err != nil {
		color.New(color.FgHiRed).Fprintf(c.App.Writer, "%s/%s: %v\n", c.String(flagModule), c.String(flagEnv), err)
		return err
	}
	color.New(color.FgHiGreen).Fprintf(c.App.Writer, "%s/%s: OK\n", m, env)
	return nil
}

func versionCmd(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s %s (commit %s)\n", appName, version, commit)
	return nil
}
