package ionap

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client talks to one ion-AP endpoint with one set of credentials and
// one API dialect. It holds no state across calls beyond the resolved
// endpoint; construct it once per invocation and pass it around.
type Client struct {
	creds    Credentials
	endpoint string
	options  *Options
	rest     *resty.Client
}

// New creates a client for the given credentials. The credentials are
// not checked here; every operation verifies them before issuing
// network I/O so that unset or placeholder keys fail with [AuthError]
// without a single request leaving the process.
func New(creds Credentials, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	rest := resty.New().
		SetAuthScheme("Token").
		SetAuthToken(creds.APIKey).
		SetHeaders(options.requestHeaders)
	if options.timeout > 0 {
		rest.SetTimeout(options.timeout)
	}

	return &Client{
		creds:    creds,
		endpoint: endpointURL(creds.BaseURL, options.dialect),
		options:  options,
		rest:     rest,
	}
}

// endpointURL joins the base URL and the dialect's version segment,
// forcing exactly one slash at each seam however the base was supplied.
func endpointURL(base string, d Dialect) string {
	base = strings.TrimRight(base, "/") + "/"
	return base + d.Version + "/"
}

// Submit posts an XML business document for sending. Routing parameters
// are optional; when present they are appended as query parameters with
// participant identifiers scheme-qualified first. The returned ref
// carries the server-assigned transaction id and its initial state.
func (c *Client) Submit(ctx context.Context, document []byte, routing *RoutingParams) (*TransactionRef, error) {
	path := c.dialect().Submit
	if q := routing.query(); q != "" {
		path += "?" + q
	}

	payload, err := c.do(ctx, http.MethodPost, path, document, negotiateXMLBody, true)
	if err != nil {
		return nil, err
	}

	m, ok := payload.Map()
	if !ok {
		return nil, fmt.Errorf("unexpected submit response: %s", payload.Raw())
	}
	return &TransactionRef{
		ID:    firstString(m, "id", "transaction_id"),
		State: firstString(m, "state", "status"),
	}, nil
}

// SubmitAndCheck submits a document, waits the configured advisory
// delay and fetches the transaction once to pick up a fresher state.
// The re-check is best effort: the server may not have reached a stable
// state yet, and a failed re-check returns the submit result rather
// than an error.
func (c *Client) SubmitAndCheck(ctx context.Context, document []byte, routing *RoutingParams) (*TransactionRef, error) {
	ref, err := c.Submit(ctx, document, routing)
	if err != nil {
		return nil, err
	}
	if ref.ID == "" {
		return ref, nil
	}

	if delay := c.options.statusCheckDelay; delay > 0 {
		select {
		case <-ctx.Done():
			return ref, nil
		case <-time.After(delay):
		}
	}

	tx, err := c.Get(ctx, DirectionSend, ref.ID)
	if err != nil {
		c.options.requestLogger.Warnf("status re-check of %s failed: %v", ref.ID, err)
		return ref, nil
	}
	if tx.State != "" {
		ref.State = tx.State
	}
	return ref, nil
}

// List fetches one window of the transaction listing for a direction.
// The cursor is dialect-neutral; it is mapped onto offset/limit or
// page/page_size parameters and the response envelope is normalized to
// the common [Page] shape.
func (c *Client) List(ctx context.Context, dir Direction, cursor Cursor) (*Page, error) {
	if c == nil {
		return nil, fmt.Errorf("ion-AP client is nil")
	}
	d := c.dialect()
	if _, ok := d.Roots[dir]; !ok {
		return nil, fmt.Errorf("API %s has no %s transactions", d.Name, dir)
	}

	payload, err := c.do(ctx, http.MethodGet, d.listPath(dir, cursor), nil, negotiateJSON, true)
	if err != nil {
		return nil, err
	}
	return d.decodePage(payload, cursor)
}

// Get fetches the full metadata of one transaction.
func (c *Client) Get(ctx context.Context, dir Direction, id string) (*Transaction, error) {
	payload, err := c.do(ctx, http.MethodGet, c.dialect().getPath(dir, id), nil, negotiateJSON, true)
	if err != nil {
		return nil, err
	}

	m, ok := payload.Map()
	if !ok {
		return nil, fmt.Errorf("unexpected transaction response: %s", payload.Raw())
	}
	tx := transactionFromMap(m)
	return &tx, nil
}

// SubResource fetches one artifact of a transaction. Document and
// receipt are negotiated as XML and returned raw; the other kinds are
// JSON. A kind the active dialect does not expose for the direction
// fails with [UnsupportedOperationError] before any network call.
func (c *Client) SubResource(ctx context.Context, dir Direction, id string, kind SubResourceKind) (Payload, error) {
	d := c.dialect()
	if !d.Supports(dir, kind) {
		return Payload{}, &UnsupportedOperationError{Dialect: d.Name, Direction: dir, Kind: kind}
	}

	neg, structured := negotiateJSON, true
	if kind == KindDocument || kind == KindReceipt {
		neg, structured = negotiateXMLResponse, false
	}
	return c.do(ctx, http.MethodGet, d.subResourcePath(dir, id, kind), nil, neg, structured)
}

// Delete removes a transaction. Deleting an id the server no longer
// knows surfaces the server's [RemoteError] unchanged; the client adds
// no not-found handling of its own.
func (c *Client) Delete(ctx context.Context, dir Direction, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.dialect().deletePath(dir, id), nil, negotiateJSON, false)
	return err
}

// Dialect returns the active API dialect.
func (c *Client) Dialect() Dialect {
	return c.options.dialect
}

func (c *Client) dialect() Dialect {
	if c == nil {
		return Dialect{}
	}
	return c.options.dialect
}

// query renders the routing parameters, qualifying the participant
// identifiers. Nil or empty params yield an empty string so the submit
// path carries no query at all.
func (r *RoutingParams) query() string {
	if r == nil {
		return ""
	}

	q := url.Values{}
	if r.Sender != "" {
		q.Set("sender_id", NormalizeParticipantID(r.Sender))
	}
	if r.Receiver != "" {
		q.Set("receiver_id", NormalizeParticipantID(r.Receiver))
	}
	if r.Process != "" {
		q.Set("process_id", r.Process)
	}
	if r.DocumentID != "" {
		q.Set("document_id", r.DocumentID)
	}
	return q.Encode()
}
