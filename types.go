package ionap

// PlaceholderAPIKey is the api_key value written by a freshly created
// config file. Credentials carrying it are treated as unset.
const PlaceholderAPIKey = "<api key>"

// DefaultBaseURL is the ion-AP test instance used when no api_url is
// configured.
const DefaultBaseURL = "https://test.ion-ap.net/api/"

// Credentials is the resolved API key and base URL for one endpoint.
// The value is immutable; resolve it once and pass it to [New].
type Credentials struct {
	APIKey  string
	BaseURL string
}

// Valid reports whether the credentials can be used for authenticated
// calls. The placeholder key counts as unset.
func (c Credentials) Valid() bool {
	return c.APIKey != "" && c.APIKey != PlaceholderAPIKey
}

// Direction selects the outgoing or incoming side of the transaction API.
type Direction string

const (
	DirectionSend    Direction = "send"
	DirectionReceive Direction = "receive"
)

// SubResourceKind names an artifact scoped to one transaction.
type SubResourceKind string

const (
	KindDocument SubResourceKind = "document"
	KindReceipt  SubResourceKind = "receipt"
	KindErrors   SubResourceKind = "errors"
	KindLogs     SubResourceKind = "logs"
	KindMetadata SubResourceKind = "metadata"
)

// ParseSubResourceKind maps a command string onto the closed kind enum.
func ParseSubResourceKind(s string) (SubResourceKind, bool) {
	switch SubResourceKind(s) {
	case KindDocument, KindReceipt, KindErrors, KindLogs, KindMetadata:
		return SubResourceKind(s), true
	}
	return "", false
}

// TransactionRef is the server's acknowledgement of a submitted document.
type TransactionRef struct {
	ID    string
	State string
}

// Transaction is the metadata of one send or receive event. The remote
// generations disagree on field names, so the common fields are lifted
// out and the full decoded object is kept in Raw for rendering.
type Transaction struct {
	ID           string
	State        string
	CreatedOn    string
	Counterparty string
	DocumentType string
	Raw          map[string]any
}

// transactionFromMap normalizes one decoded transaction object. Key
// fallbacks cover the envelope drift between API generations.
func transactionFromMap(m map[string]any) Transaction {
	return Transaction{
		ID:           firstString(m, "id", "transaction_id", "message_id"),
		State:        firstString(m, "state", "status"),
		CreatedOn:    firstString(m, "created_on", "timestamp"),
		Counterparty: firstString(m, "receiver", "sender", "from_id"),
		DocumentType: firstString(m, "document_type", "collaboration_info_action"),
		Raw:          m,
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Cursor is the pagination window in dialect-neutral form: Start is the
// zero-based index of the first item wanted, Count the page size.
type Cursor struct {
	Start int
	Count int
}

// Page is one window of a transaction listing, normalized from whichever
// envelope the active dialect uses.
type Page struct {
	Total int
	Start int
	Items []Transaction
}

// Range returns the one-based display range of the page. An empty page
// yields (0, 0).
func (p *Page) Range() (first, last int) {
	if p == nil || len(p.Items) == 0 {
		return 0, 0
	}
	first = p.Start + 1
	last = first + len(p.Items) - 1
	return first, last
}

// RoutingParams are the optional addressing identifiers attached to a
// document submission. Sender and Receiver are participant identifiers
// and are scheme-qualified with [NormalizeParticipantID] before they are
// sent; Process and DocumentID are passed through as given.
type RoutingParams struct {
	Sender     string
	Receiver   string
	Process    string
	DocumentID string
}
