package api

import (
	"encoding/json"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var fastjson = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope is the one canonical response shape. The platform API is not
// consistent about its envelope keys (`status` vs `success`, `data` vs an
// entity-named key); normalization happens here, once, so nothing past this
// package ever sees the inconsistency.
type Envelope struct {
	Success bool
	Message string
	Data    json.RawMessage

	raw []byte // full body, for entity-named data keys
}

// Failure builds the uniform failure envelope.
func Failure(msg string) *Envelope {
	if msg == "" {
		msg = "request failed"
	}
	return &Envelope{Success: false, Message: msg}
}

type wireEnvelope struct {
	Success *bool           `json:"success"`
	Status  *bool           `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// parseEnvelope normalizes a raw JSON body. ok=false means the body was not
// a JSON object carrying either flag; callers turn that into Failure.
func parseEnvelope(body []byte) (*Envelope, bool) {
	var w wireEnvelope
	if err := fastjson.Unmarshal(body, &w); err != nil {
		return nil, false
	}
	flag := w.Success
	if flag == nil {
		flag = w.Status
	}
	if flag == nil {
		return nil, false
	}
	msg := w.Message
	if msg == "" {
		msg = w.Error
	}
	return &Envelope{Success: *flag, Message: msg, Data: w.Data, raw: body}, true
}

// DecodeData unmarshals the `data` member into out.
func (e *Envelope) DecodeData(out any) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("envelope: no data member")
	}
	return fastjson.Unmarshal(e.Data, out)
}

// DecodeKey unmarshals a top-level entity-named member (e.g. "user",
// "withdrawals") into out. Per-endpoint adapters use this where the backend
// skips the `data` wrapper.
func (e *Envelope) DecodeKey(key string, out any) error {
	if len(e.raw) == 0 {
		return fmt.Errorf("envelope: empty body")
	}
	var top map[string]json.RawMessage
	if err := fastjson.Unmarshal(e.raw, &top); err != nil {
		return err
	}
	raw, ok := top[key]
	if !ok {
		return fmt.Errorf("envelope: no %q member", key)
	}
	return fastjson.Unmarshal(raw, out)
}
