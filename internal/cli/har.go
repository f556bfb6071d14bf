package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/ryanbekhen/cookie"
	"github.com/ryanbekhen/cookie/internal/har"
	"github.com/spf13/cobra"
)

// harResult is one Set-Cookie of a HAR entry checked against the entry's own request.
type harResult struct {
	URL     string         `json:"url"`
	Cookie  *cookie.Cookie `json:"cookie"`
	Applies bool           `json:"applies"`
}

func newHARCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "har file.har",
		Short: "check the Set-Cookie headers recorded in a HAR file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			return a.har(data, stringFlag(cmd, "format", format, a.config.Format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or json")
	return cmd
}

func (a *app) har(data []byte, format string) error {
	if format != formatText && format != formatJSON {
		return fmt.Errorf("unknown format %q", format)
	}

	entries, err := har.Parse(data)
	if err != nil {
		return err
	}
	a.logger.Debug().Str("entries", fmt.Sprint(len(entries))).Msg("loaded HAR")

	for _, entry := range entries {
		h := cookie.Header{cookie.HeaderSetCookie: entry.SetCookie}
		cookies, err := a.parser.ParseHeader(h)
		if err != nil {
			a.logger.Warn().Err(err).Str("url", entry.URL).Msg("invalid Set-Cookie in HAR entry")
		}

		for _, c := range cookies {
			c.Origin(entry.Host)
			res := harResult{
				URL:     entry.URL,
				Cookie:  c,
				Applies: c.Applies(entry.Host, entry.Path, entry.Secure),
			}
			if err := a.writeHARResult(res, format); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *app) writeHARResult(res harResult, format string) error {
	if format == formatJSON {
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	}

	status := "skip"
	if res.Applies {
		status = "send"
	}
	_, err := fmt.Fprintf(a.out, "%s %s %s\n", status, res.URL, res.Cookie.String())
	return err
}
