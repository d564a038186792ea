package ionap

import "encoding/json"

// Payload is the decoded body of one response. It is either structured
// (JSON that decoded successfully) or raw text; callers branch on
// [Payload.Structured] instead of re-parsing the body. A failed JSON
// decode is not an error, the raw text is substituted transparently.
type Payload struct {
	structured bool
	value      any
	raw        string
}

// decodePayload applies the two-stage decode rule: when structured
// decoding is wanted, try JSON first and fall back to the raw text;
// otherwise return the raw text unconditionally.
func decodePayload(body []byte, structured bool) Payload {
	p := Payload{raw: string(body)}
	if !structured || len(body) == 0 {
		return p
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return p
	}
	p.structured = true
	p.value = v
	return p
}

// Structured returns the decoded JSON value, or false when the payload
// is raw text.
func (p Payload) Structured() (any, bool) {
	return p.value, p.structured
}

// Map returns the decoded value as a JSON object, or false when the
// payload is raw or not an object.
func (p Payload) Map() (map[string]any, bool) {
	m, ok := p.value.(map[string]any)
	return m, ok
}

// Raw returns the response body as text, regardless of whether it also
// decoded as JSON.
func (p Payload) Raw() string {
	return p.raw
}

// String renders structured payloads as indented JSON and raw payloads
// verbatim.
func (p Payload) String() string {
	if p.structured {
		if out, err := json.MarshalIndent(p.value, "", "  "); err == nil {
			return string(out)
		}
	}
	return p.raw
}
