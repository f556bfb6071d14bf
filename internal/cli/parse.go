package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/ryanbekhen/cookie"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [set-cookie...]",
		Short: "parse Set-Cookie values given as arguments or stdin lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.values(args)
			if err != nil {
				return err
			}
			return a.parse(values, stringFlag(cmd, "format", format, a.config.Format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, header or json")
	return cmd
}

func (a *app) parse(values []string, format string) error {
	render, err := renderer(format)
	if err != nil {
		return err
	}

	failed := 0
	for _, v := range values {
		c, err := a.parser.Parse(v)
		if err != nil {
			a.logger.Error().Err(err).Str("value", v).Msg("invalid Set-Cookie")
			failed++
			continue
		}
		line, err := render(c)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(a.out, line); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values failed to parse", failed, len(values))
	}
	return nil
}

func renderer(format string) (func(*cookie.Cookie) (string, error), error) {
	switch format {
	case formatText:
		return func(c *cookie.Cookie) (string, error) { return c.String(), nil }, nil
	case formatHeader:
		return func(c *cookie.Cookie) (string, error) { return c.HeaderValue(), nil }, nil
	case formatJSON:
		return func(c *cookie.Cookie) (string, error) {
			data, err := json.Marshal(c)
			return string(data), err
		}, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
