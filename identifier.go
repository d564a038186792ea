package ionap

import "strings"

// ParticipantScheme is the identifier scheme assumed for bare
// participant identifiers.
const ParticipantScheme = "iso6523-actorid-upis"

// NormalizeParticipantID qualifies a bare participant identifier with
// the default scheme. Identifiers that already carry a scheme separator
// are returned unchanged, so the function is idempotent:
//
//	NormalizeParticipantID("0106:12345678") = "iso6523-actorid-upis::0106:12345678"
//	NormalizeParticipantID("iso6523-actorid-upis::0106:12345678") is a no-op
func NormalizeParticipantID(id string) string {
	if id == "" || strings.Contains(id, "::") {
		return id
	}
	return ParticipantScheme + "::" + id
}

// StripScheme removes the scheme prefix from a qualified identifier for
// display. Bare identifiers are returned unchanged.
func StripScheme(id string) string {
	if i := strings.Index(id, "::"); i >= 0 {
		return id[i+2:]
	}
	return id
}
