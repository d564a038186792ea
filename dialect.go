package ionap

import "fmt"

// PaginationStyle selects the query parameter pair a dialect uses for
// listing windows.
type PaginationStyle int

const (
	// PaginateOffsetLimit sends offset= and limit= parameters.
	PaginateOffsetLimit PaginationStyle = iota
	// PaginatePageSize sends page= and page_size= parameters, with
	// page numbering starting at 1.
	PaginatePageSize
)

// EnvelopeStyle selects the field names of a dialect's list response
// envelope.
type EnvelopeStyle int

const (
	// EnvelopeDataPagination reads items from "data" and the total from
	// "pagination.total".
	EnvelopeDataPagination EnvelopeStyle = iota
	// EnvelopeResultsCount reads items from "results" and the total
	// from "count".
	EnvelopeResultsCount
)

// Dialect describes one generation of the remote API: its version path
// segment, path roots, pagination parameter names, response envelope
// and the sub-resource kinds it exposes. All client operations are
// driven by the active dialect; supporting a new API generation means
// declaring a new Dialect value, not new code paths.
type Dialect struct {
	Name    string
	Version string

	// Submit is the document submission path.
	Submit string
	// Roots maps each direction onto its transaction collection root.
	Roots map[Direction]string
	// ListSlash appends a slash to the collection root before the
	// pagination query, as the older generations require.
	ListSlash bool

	Pagination PaginationStyle
	Envelope   EnvelopeStyle

	// Kinds lists the sub-resource kinds available per direction.
	Kinds map[Direction][]SubResourceKind
}

// DialectV1 is the original temporary API: transaction status under
// send/status, no sub-resources beyond the received document.
var DialectV1 = Dialect{
	Name:    "v1",
	Version: "v1",
	Submit:  "send/new/document/",
	Roots: map[Direction]string{
		DirectionSend:    "send/status/transaction",
		DirectionReceive: "receive",
	},
	ListSlash:  true,
	Pagination: PaginateOffsetLimit,
	Envelope:   EnvelopeDataPagination,
	Kinds: map[Direction][]SubResourceKind{
		DirectionReceive: {KindDocument},
	},
}

// DialectV2 is the intermediate generation with page-numbered
// pagination and a results/count envelope.
var DialectV2 = Dialect{
	Name:    "v2",
	Version: "v2",
	Submit:  "send/document",
	Roots: map[Direction]string{
		DirectionSend:    "send/transaction",
		DirectionReceive: "receive/transaction",
	},
	ListSlash:  true,
	Pagination: PaginatePageSize,
	Envelope:   EnvelopeResultsCount,
	Kinds: map[Direction][]SubResourceKind{
		DirectionSend:    {KindErrors},
		DirectionReceive: {KindDocument, KindErrors},
	},
}

// DialectV3 is the current generation and the default for [New].
var DialectV3 = Dialect{
	Name:    "v3",
	Version: "v3",
	Submit:  "send-document",
	Roots: map[Direction]string{
		DirectionSend:    "send-transactions",
		DirectionReceive: "receive-transactions",
	},
	Pagination: PaginateOffsetLimit,
	Envelope:   EnvelopeDataPagination,
	Kinds: map[Direction][]SubResourceKind{
		DirectionSend:    {KindErrors, KindLogs, KindMetadata},
		DirectionReceive: {KindDocument, KindReceipt, KindErrors, KindLogs, KindMetadata},
	},
}

// DialectByName returns the dialect for an API version name.
func DialectByName(name string) (Dialect, bool) {
	for _, d := range []Dialect{DialectV1, DialectV2, DialectV3} {
		if d.Name == name {
			return d, true
		}
	}
	return Dialect{}, false
}

// Supports reports whether the dialect exposes the sub-resource kind
// for the given direction.
func (d Dialect) Supports(dir Direction, kind SubResourceKind) bool {
	for _, k := range d.Kinds[dir] {
		if k == kind {
			return true
		}
	}
	return false
}

func (d Dialect) valid() bool {
	return d.Name != "" && d.Submit != "" && len(d.Roots) > 0
}

func (d Dialect) listPath(dir Direction, c Cursor) string {
	root := d.Roots[dir]
	if d.ListSlash {
		root += "/"
	}
	switch d.Pagination {
	case PaginatePageSize:
		page := 1
		if c.Count > 0 {
			page = c.Start/c.Count + 1
		}
		return fmt.Sprintf("%s?page=%d&page_size=%d", root, page, c.Count)
	default:
		return fmt.Sprintf("%s?offset=%d&limit=%d", root, c.Start, c.Count)
	}
}

func (d Dialect) getPath(dir Direction, id string) string {
	return d.Roots[dir] + "/" + id
}

func (d Dialect) subResourcePath(dir Direction, id string, kind SubResourceKind) string {
	return d.Roots[dir] + "/" + id + "/" + string(kind)
}

// deletePath keeps the trailing slash all generations require on
// DELETE.
func (d Dialect) deletePath(dir Direction, id string) string {
	return d.Roots[dir] + "/" + id + "/"
}

// decodePage normalizes a list response envelope into the common Page
// shape. The cursor supplies the window start when the envelope does
// not echo it back.
func (d Dialect) decodePage(p Payload, c Cursor) (*Page, error) {
	m, ok := p.Map()
	if !ok {
		return nil, fmt.Errorf("unexpected list response shape: %s", p.Raw())
	}

	page := &Page{Start: c.Start}
	var items any
	switch d.Envelope {
	case EnvelopeResultsCount:
		items = m["results"]
		page.Total = intField(m, "count")
	default:
		items = m["data"]
		if pg, ok := m["pagination"].(map[string]any); ok {
			page.Total = intField(pg, "total")
			if _, present := pg["offset"]; present {
				page.Start = intField(pg, "offset")
			}
		}
	}

	list, ok := items.([]any)
	if !ok {
		return nil, fmt.Errorf("list response has no transaction items: %s", p.Raw())
	}
	for _, item := range list {
		if im, ok := item.(map[string]any); ok {
			page.Items = append(page.Items, transactionFromMap(im))
		}
	}
	return page, nil
}

func intField(m map[string]any, key string) int {
	if f, ok := m[key].(float64); ok {
		return int(f)
	}
	return 0
}
