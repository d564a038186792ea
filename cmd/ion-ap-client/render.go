package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	ionap "github.com/ionite/ion-ap-client-go"
)

// presenter turns decoded API results into terminal output: tab-aligned
// columns by default, raw structured JSON with --json.
type presenter struct {
	jsonOutput bool
	out        io.Writer
}

func newPresenter(c *cli.Context) *presenter {
	return &presenter{
		jsonOutput: c.Bool("json"),
		out:        os.Stdout,
	}
}

func (p *presenter) page(page *ionap.Page) error {
	if p.jsonOutput {
		items := make([]map[string]any, 0, len(page.Items))
		for _, tx := range page.Items {
			items = append(items, tx.Raw)
		}
		return p.renderJSON(map[string]any{
			"total": page.Total,
			"items": items,
		})
	}

	first, last := page.Range()
	fmt.Fprintf(p.out, "Showing transactions %d-%d (of %d)\n", first, last, page.Total)

	w := tabwriter.NewWriter(p.out, 0, 8, 2, ' ', 0)
	for _, tx := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			tx.ID, tx.State, tx.CreatedOn, ionap.StripScheme(tx.Counterparty))
	}
	return w.Flush()
}

func (p *presenter) transaction(tx *ionap.Transaction) error {
	if p.jsonOutput {
		return p.renderJSON(tx.Raw)
	}

	keys := make([]string, 0, len(tx.Raw))
	for k := range tx.Raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(p.out, 0, 8, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(w, "%s:\t%s\n", k, renderValue(tx.Raw[k]))
	}
	return w.Flush()
}

func (p *presenter) payload(pl ionap.Payload) error {
	_, err := fmt.Fprintln(p.out, pl.String())
	return err
}

func (p *presenter) renderJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return ionap.StripScheme(val)
	case map[string]any, []any:
		out, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(out)
	default:
		return fmt.Sprint(val)
	}
}
