package statusping

import "encoding/json"

// statusDocument is the subset of the Status response's JSON document
// (common.StatusResponse.JSON, carried opaquely by the wire package —
// see DESIGN.md's wire-package section) this CLI cares about printing.
// Grounded on the teacher's JSONCodec (codec/json_codec.go): the same
// Marshal/Unmarshal-via-encoding/json approach, applied here to the one
// JSON document this protocol actually carries instead of a whole RPC
// envelope.
type statusDocument struct {
	Description json.RawMessage `json:"description"`
	Players     struct {
		Max    int `json:"max"`
		Online int `json:"online"`
	} `json:"players"`
	Version struct {
		Name     string `json:"name"`
		Protocol int32  `json:"protocol"`
	} `json:"version"`
}

// motdText extracts a human-readable MOTD from the description field,
// which the protocol allows to be either a plain string or a chat
// component object — this CLI only needs the plain-string case to print
// something useful, so an object description falls back to its raw JSON.
func (d statusDocument) motdText() string {
	var s string
	if err := json.Unmarshal(d.Description, &s); err == nil {
		return s
	}
	return string(d.Description)
}

func parseStatusJSON(raw string) (statusDocument, error) {
	var doc statusDocument
	err := json.Unmarshal([]byte(raw), &doc)
	return doc, err
}
