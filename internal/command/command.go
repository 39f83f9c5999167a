// Package command is the terminal front end: it plays the role the page and
// form components play in a browser storefront. Each command validates its
// input, calls into the stores or clients, and surfaces errors as notices at
// the point of the action. Nothing propagates to a global error boundary and
// nothing is retried.
package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"atelier-storefront/internal/cart"
	"atelier-storefront/internal/commerce"
	"atelier-storefront/internal/config"
	"atelier-storefront/internal/content"
	"atelier-storefront/internal/notify"
	"atelier-storefront/internal/session"
)

type Deps struct {
	Config   *config.Config
	Sessions *session.Manager
	Cart     *cart.Store
	Commerce *commerce.Client
	Content  *content.Client
	Notices  notify.Bus
	In       io.Reader
	Out      io.Writer
	Log      *slog.Logger
}

func (d *Deps) logger() *slog.Logger {
	if d.Log == nil {
		return slog.Default()
	}
	return d.Log
}

type HandlerFunc func(ctx context.Context, deps *Deps, args []string) error

type command struct {
	usage   string
	summary string
	run     HandlerFunc
}

var registry = map[string]command{
	"login":          {"login <email>", "log in; the password is prompted", runLogin},
	"signup":         {"signup <email>", "create an account and log in", runSignup},
	"logout":         {"logout", "revoke the token and clear the session", runLogout},
	"me":             {"me", "show the logged-in customer", runMe},
	"recover":        {"recover <email>", "start password recovery", runRecover},
	"update-profile": {"update-profile [flags]", "change profile fields", runUpdateProfile},
	"account":        {"account [view]", "open the account panel", runAccount},
	"addresses":      {"addresses <list|add|update|remove> ...", "manage the address book", runAddresses},
	"products":       {"products", "list the catalog", runProducts},
	"product":        {"product <handle>", "show one product with variants", runProduct},
	"cart":           {"cart <list|add|remove|set-qty> ...", "edit the cart", runCart},
	"checkout":       {"checkout", "hand the cart to the backend checkout", runCheckout},
	"articles":       {"articles", "list published blog articles", runArticles},
	"article":        {"article <slug>", "show one article", runArticle},
}

// Run dispatches one subcommand.
func Run(ctx context.Context, deps *Deps, args []string) error {
	if len(args) == 0 || args[0] == "help" {
		printUsage(deps.Out)
		return nil
	}

	cmd, ok := registry[args[0]]
	if !ok {
		fmt.Fprintf(deps.Out, "unknown command %q\n\n", args[0])
		printUsage(deps.Out)
		return fmt.Errorf("unknown command %q", args[0])
	}

	return cmd.run(ctx, deps, args[1:])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: storefront <command> [arguments]")
	fmt.Fprintln(w)

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %-36s %s\n", registry[name].usage, registry[name].summary)
	}
}

func usageError(deps *Deps, usage string) error {
	fmt.Fprintf(deps.Out, "usage: storefront %s\n", usage)
	return fmt.Errorf("usage: %s", usage)
}
