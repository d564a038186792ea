package ionap

import (
	"context"
	"fmt"
)

// negotiation declares the request and response media types of one
// call. An empty field leaves the header unset.
type negotiation struct {
	contentType string
	accept      string
}

var (
	// negotiateJSON is used for all control calls.
	negotiateJSON = negotiation{contentType: "application/json", accept: "application/json"}
	// negotiateXMLBody submits an XML document and expects a JSON
	// acknowledgement.
	negotiateXMLBody = negotiation{contentType: "application/xml", accept: "application/json"}
	// negotiateXMLResponse downloads an XML artifact.
	negotiateXMLResponse = negotiation{accept: "application/xml"}
)

// redactedAuth replaces the token in diagnostics. The raw API key is
// never logged, even in verbose mode.
const redactedAuth = "Token <api key>"

// do performs one request/response cycle against the resolved endpoint.
// It fails with [AuthError] before any network I/O when the credentials
// are unset, classifies non-2xx responses as [RemoteError], and decodes
// 2xx bodies per the structured flag (JSON with transparent raw-text
// fallback, or raw unconditionally). There are no retries; failures are
// reported immediately.
func (c *Client) do(ctx context.Context, method, path string, body []byte, neg negotiation, structured bool) (Payload, error) {
	if c == nil {
		return Payload{}, fmt.Errorf("ion-AP client is nil")
	}

	if err := c.options.Validate(); err != nil {
		return Payload{}, fmt.Errorf("invalid options: %w", err)
	}

	if !c.creds.Valid() {
		return Payload{}, &AuthError{
			Reason: "API key not set, create a configuration file or set the IONAP_API_KEY environment variable",
		}
	}

	url := c.endpoint + path
	c.logRequest(method, url, neg)

	req := c.rest.R().SetContext(ctx)
	if neg.contentType != "" {
		req.SetHeader("Content-Type", neg.contentType)
	}
	if neg.accept != "" {
		req.SetHeader("Accept", neg.accept)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		c.options.requestLogger.Errorf("%s %s failed: %v", method, url, err)
		return Payload{}, fmt.Errorf("%s %s: %w", method, url, err)
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		// Error bodies get the structured-first decode regardless of
		// what the call negotiated.
		remote := &RemoteError{StatusCode: status, Payload: decodePayload(resp.Body(), true)}
		c.options.requestLogger.Warnf("%s %s: status %d", method, url, status)
		return Payload{}, remote
	}

	c.options.requestLogger.Debugf("%s %s: status %d", method, url, status)
	return decodePayload(resp.Body(), structured), nil
}

func (c *Client) logRequest(method, url string, neg negotiation) {
	log := c.options.requestLogger
	log.Debugf("request: %s %s", method, url)
	log.Debugf("  Authorization: %s", redactedAuth)
	if neg.contentType != "" {
		log.Debugf("  Content-Type: %s", neg.contentType)
	}
	if neg.accept != "" {
		log.Debugf("  Accept: %s", neg.accept)
	}
	for k, v := range c.options.requestHeaders {
		log.Debugf("  %s: %s", k, v)
	}
}
