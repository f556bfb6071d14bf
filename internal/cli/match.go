package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/ryanbekhen/cookie"
	"github.com/ryanbekhen/cookie/internal/rawreq"
	"github.com/spf13/cobra"
)

// ErrNoDomain is returned by match when no request host is known.
var ErrNoDomain = errors.New("match needs --domain or --request")

// target is the request cookies are matched against.
type target struct {
	domain string
	path   string
	secure bool
	cookie string // Cookie header already present on the request
}

func newMatchCmd(a *app) *cobra.Command {
	var (
		domain  string
		path    string
		secure  bool
		origin  bool
		request string
	)

	cmd := &cobra.Command{
		Use:   "match [set-cookie...]",
		Short: "print the Cookie header a request would carry",
		Long: "match parses Set-Cookie values and prints the Cookie header built from\n" +
			"the ones that apply to the request. The request comes from --domain,\n" +
			"--path and --secure, or from a raw HTTP request head given with --request.",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := target{
				domain: stringFlag(cmd, "domain", domain, a.config.Domain),
				path:   stringFlag(cmd, "path", path, a.config.Path),
				secure: boolFlag(cmd, "secure", secure, a.config.Secure),
			}
			if request != "" {
				data, err := os.ReadFile(request) //nolint:gosec
				if err != nil {
					return err
				}
				req, err := rawreq.Parse(data)
				if err != nil {
					return err
				}
				t = target{domain: req.Host, path: req.Path, secure: req.Secure, cookie: req.Cookie}
			}
			if t.domain == "" {
				return ErrNoDomain
			}

			values, err := a.values(args)
			if err != nil {
				return err
			}
			return a.match(values, t, boolFlag(cmd, "origin", origin, a.config.Origin))
		},
	}
	cmd.Flags().StringVar(&domain, "domain", "", "request host")
	cmd.Flags().StringVar(&path, "path", "/", "request path")
	cmd.Flags().BoolVar(&secure, "secure", false, "request is sent over https")
	cmd.Flags().BoolVar(&origin, "origin", true, "assign the request host to cookies without a Domain")
	cmd.Flags().StringVarP(&request, "request", "r", "", "file holding a raw HTTP request head")
	return cmd
}

func (a *app) match(values []string, t target, origin bool) error {
	h := make(cookie.Header)
	for _, v := range values {
		h.Add(cookie.HeaderSetCookie, v)
	}

	cookies, err := a.parser.ParseHeader(h)
	if err != nil {
		a.logger.Warn().Err(err).Msg("some Set-Cookie values were skipped")
	}

	applicable := make(map[string]bool, len(cookies))
	var sent []cookie.RequestCookie
	for _, c := range cookies {
		if origin {
			c.Origin(t.domain)
		}
		switch {
		case c.Expired():
			a.logger.Debug().Str("cookie", c.Name).Msg("expired")
		case !c.Applies(t.domain, t.path, t.secure):
			a.logger.Debug().Str("cookie", c.Name).Str("domain", c.Domain).Str("path", c.PathOrDefault()).Msg("does not apply")
		default:
			applicable[c.Name] = true
			sent = append(sent, c.RequestCookie())
		}
	}

	out := make(cookie.Header)
	for _, rc := range cookie.ParseCookieHeader(t.cookie) {
		if !applicable[rc.Name] {
			out.AddCookie(rc)
		}
	}
	for _, rc := range sent {
		out.AddCookie(rc)
	}

	_, err = fmt.Fprintln(a.out, out.Get(cookie.HeaderCookie))
	return err
}
