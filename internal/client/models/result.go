package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Messages used for results synthesised on the client side.
const (
	ErrMsgNonJSON   = "non-JSON response"
	ErrMsgMalformed = "malformed response"
	ErrMsgNoUserID  = "response missing usuario_id"
)

// Status is the part of every response envelope. OK is the discriminant:
// when it is false, Error carries the message reported by the endpoint or
// synthesised here, and Raw holds the original body if it could not be
// decoded. Fields keeps every top-level key of a decoded envelope, including
// the ones no typed field covers.
type Status struct {
	OK     bool                       `json:"ok"`
	Error  string                     `json:"error,omitempty"`
	Raw    string                     `json:"raw,omitempty"`
	Fields map[string]json.RawMessage `json:"-"`
}

// Failed reports whether the call did not succeed.
func (s Status) Failed() bool { return !s.OK }

// Field returns the raw value of key as sent by the endpoint.
func (s Status) Field(key string) (json.RawMessage, bool) {
	v, ok := s.Fields[key]
	return v, ok
}

// ID is an opaque identifier issued by the remote service. Spreadsheet
// backends may emit it as a JSON number, so both numbers and strings decode.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("usuario_id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// AuthResult answers register and login.
type AuthResult struct {
	Status
	UserID ID `json:"usuario_id,omitempty"`
}

// Course is a single record of the course catalogue. Its shape belongs to
// the remote service.
type Course map[string]any

// Title returns the first non-empty human-readable field of c.
func (c Course) Title() string {
	for _, k := range []string{"nombre", "name", "titulo", "title", "id"} {
		if v, ok := c[k]; ok && v != nil {
			if s := fmt.Sprint(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// CoursesResult answers list_materias.
type CoursesResult struct {
	Status
	Courses []Course `json:"materias,omitempty"`
}

// ProgressResult answers load_progress. Progress is passed through verbatim.
type ProgressResult struct {
	Status
	Progress json.RawMessage `json:"progreso,omitempty"`
}

// SaveResult answers save_progress.
type SaveResult struct {
	Status
}

// failure builds the synthetic status for a body that could not be decoded.
func failure(msg, body string) Status {
	return Status{OK: false, Error: msg, Raw: body}
}

// truthy follows the loose truth test the endpoint's own clients apply to ok:
// false, null, 0, "" and a missing key are false, anything else is true.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

// text renders a raw value as a message: strings are unquoted, null is
// empty, anything else is kept as JSON text.
func text(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// decode splits body into its top-level fields. Only a body that is not
// JSON, or not a JSON object, yields a synthetic failure; everything else
// keeps ok and error as the endpoint sent them.
func decode(body string) (Status, bool) {
	b := []byte(body)
	if !json.Valid(b) {
		return failure(ErrMsgNonJSON, body), false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return failure(ErrMsgMalformed, body), false
	}

	st := Status{OK: truthy(fields["ok"]), Fields: fields}
	if e, ok := fields["error"]; ok {
		st.Error = text(e)
	}
	if r, ok := fields["raw"]; ok {
		st.Raw = text(r)
	}
	return st, true
}

// DecodeAuth decodes a register or login answer. A usuario_id of an
// unexpected type leaves UserID empty; the value stays in Fields.
func DecodeAuth(body string) *AuthResult {
	st, ok := decode(body)
	res := &AuthResult{Status: st}
	if !ok {
		return res
	}
	if raw, ok := st.Fields["usuario_id"]; ok {
		var id ID
		if err := json.Unmarshal(raw, &id); err == nil {
			res.UserID = id
		}
	}
	return res
}

// DecodeCourses decodes a list_materias answer. The catalogue may be a list
// of records or an object keyed by course id; in the latter case records
// are ordered by key and get an "id" entry when they lack one.
func DecodeCourses(body string) *CoursesResult {
	st, ok := decode(body)
	res := &CoursesResult{Status: st}
	if !ok {
		return res
	}
	if raw, ok := st.Fields["materias"]; ok {
		res.Courses = parseCourses(raw)
	}
	return res
}

func parseCourses(raw json.RawMessage) []Course {
	var list []Course
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var byID map[string]Course
	if err := json.Unmarshal(raw, &byID); err != nil || byID == nil {
		return nil
	}
	keys := make([]string, 0, len(byID))
	for k := range byID {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list = make([]Course, 0, len(keys))
	for _, k := range keys {
		c := byID[k]
		if c == nil {
			c = Course{}
		}
		if _, ok := c["id"]; !ok {
			c["id"] = k
		}
		list = append(list, c)
	}
	return list
}

// DecodeProgress decodes a load_progress answer.
func DecodeProgress(body string) *ProgressResult {
	st, ok := decode(body)
	res := &ProgressResult{Status: st}
	if ok {
		res.Progress = st.Fields["progreso"]
	}
	return res
}

// DecodeSave decodes a save_progress answer.
func DecodeSave(body string) *SaveResult {
	st, _ := decode(body)
	return &SaveResult{Status: st}
}
