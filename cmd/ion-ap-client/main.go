// Command ion-ap-client is a command-line client for the ion-AP access
// point API: it sends business documents and views, retrieves and
// deletes outgoing and incoming transactions.
//
// The API key is taken from the IONAP_API_KEY environment variable or
// the config file (~/.ion-ap-client.conf by default, see create-config).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	ionap "github.com/ionite/ion-ap-client-go"
	"github.com/ionite/ion-ap-client-go/config"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		exitWithError(err)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "ion-ap-client",
		Usage: "command-line client for the ion-AP access point API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "use the specified configuration file"},
			&cli.BoolFlag{Name: "json", Aliases: []string{"j"}, Usage: "print output as JSON"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "verbose mode, print API requests as well"},
			&cli.StringFlag{Name: "api-version", Value: ionap.DialectV3.Name, Usage: "API generation to speak (v1, v2 or v3)"},
		},
		Commands: []*cli.Command{
			sendCommand(),
			transactionsCommand("send-status", "view and retrieve outgoing transactions", ionap.DirectionSend),
			transactionsCommand("receive", "view and retrieve incoming transactions and documents", ionap.DirectionReceive),
			createConfigCommand(),
		},
	}
	// Errors are rendered in main so that remote failures keep their
	// status/body shape.
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

func exitWithError(err error) {
	var remote *ionap.RemoteError
	var coder cli.ExitCoder
	switch {
	case errors.As(err, &remote):
		fmt.Printf("Error response: %d\n%s\n", remote.StatusCode, remote.Payload.String())
		os.Exit(1)
	case errors.As(err, &coder):
		if msg := coder.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(coder.ExitCode())
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newClient resolves credentials and builds the API client for one
// invocation.
func newClient(c *cli.Context) (*ionap.Client, error) {
	creds, err := config.Resolve(c.String("config"))
	if err != nil {
		return nil, err
	}

	name := c.String("api-version")
	dialect, ok := ionap.DialectByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown API version %q", name)
	}

	return ionap.New(creds,
		ionap.WithDialect(dialect),
		ionap.WithRequestLogger(newRequestLogger(c.Bool("verbose"))),
	), nil
}

func sendCommand() *cli.Command {
	return &cli.Command{
		Name:      "send",
		Usage:     "send an XML document (or full SBDH)",
		ArgsUsage: "<filename>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "sender", Usage: "sender participant identifier"},
			&cli.StringFlag{Name: "receiver", Usage: "receiver participant identifier"},
			&cli.StringFlag{Name: "process", Usage: "process identifier"},
			&cli.StringFlag{Name: "document-id", Usage: "document type identifier"},
			&cli.BoolFlag{Name: "check", Usage: "re-fetch the transaction state after a short delay"},
		},
		Action: runSend,
	}
}

func runSend(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: ion-ap-client send <filename>", 2)
	}

	document, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}

	client, err := newClient(c)
	if err != nil {
		return err
	}

	var routing *ionap.RoutingParams
	if c.String("sender") != "" || c.String("receiver") != "" ||
		c.String("process") != "" || c.String("document-id") != "" {
		routing = &ionap.RoutingParams{
			Sender:     c.String("sender"),
			Receiver:   c.String("receiver"),
			Process:    c.String("process"),
			DocumentID: c.String("document-id"),
		}
	}

	var ref *ionap.TransactionRef
	if c.Bool("check") {
		ref, err = client.SubmitAndCheck(c.Context, document, routing)
	} else {
		ref, err = client.Submit(c.Context, document, routing)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Status: %s Transaction id %s\n", ref.State, ref.ID)
	return nil
}

// transactionsCommand covers one direction of the transaction API:
// no arguments lists, one argument shows a single transaction, and a
// second argument runs a sub-action (delete or a sub-resource kind).
func transactionsCommand(name, usage string, dir ionap.Direction) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[transaction-id] [delete|document|receipt|errors|logs|metadata]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Usage: "index of the first transaction to show"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: 10, Usage: "number of transactions to show"},
		},
		Action: func(c *cli.Context) error {
			return runTransactions(c, dir)
		},
	}
}

func runTransactions(c *cli.Context, dir ionap.Direction) error {
	client, err := newClient(c)
	if err != nil {
		return err
	}
	p := newPresenter(c)

	switch c.NArg() {
	case 0:
		cursor := ionap.Cursor{Start: c.Int("offset"), Count: c.Int("limit")}
		page, err := client.List(c.Context, dir, cursor)
		if err != nil {
			return err
		}
		return p.page(page)

	case 1:
		tx, err := client.Get(c.Context, dir, c.Args().Get(0))
		if err != nil {
			return err
		}
		return p.transaction(tx)

	default:
		id, action := c.Args().Get(0), c.Args().Get(1)
		if action == "delete" {
			return client.Delete(c.Context, dir, id)
		}
		kind, ok := ionap.ParseSubResourceKind(action)
		if !ok {
			return cli.Exit(fmt.Sprintf("Unknown command: %s", action), 2)
		}
		payload, err := client.SubResource(c.Context, dir, id, kind)
		if err != nil {
			return err
		}
		return p.payload(payload)
	}
}

func createConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-config",
		Usage: "create an initial default config file",
		Action: func(c *cli.Context) error {
			path, err := config.WriteDefault(c.String("config"))
			if err != nil {
				return err
			}
			fmt.Printf("Default configuration written to %s\n", path)
			return nil
		},
	}
}
