package types

import "time"

// DataKind tags the shape of the payload carried by an Envelope.
type DataKind string

const (
	DataKindSnapshot   DataKind = "snapshot"
	DataKindTimeseries DataKind = "timeseries"
	DataKindConfig     DataKind = "config"
	DataKindSummary    DataKind = "summary"
	DataKindSystemList DataKind = "system_list"
)

// Envelope is the standardized result returned by every tool call. Failures
// are reported inside the envelope (Success=false plus a message) rather than
// as protocol errors, so the caller always gets the same shape back.
type Envelope struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	DataType DataKind       `json:"data_type"`
	Metadata map[string]any `json:"metadata"`
	// Data is the raw vendor payload; the typed structs marshal back to the
	// vendor's own field names.
	Data any `json:"data"`
	// Structured is the derived view with descriptive field names, omitted
	// when an operation has none.
	Structured any `json:"structured,omitempty"`
}

// NewEnvelope returns an envelope of the given kind with the metadata
// timestamp already set.
func NewEnvelope(kind DataKind, success bool, message string) Envelope {
	return Envelope{
		Success:  success,
		Message:  message,
		DataType: kind,
		Metadata: map[string]any{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
}

// WithSerial records the serial the operation resolved to.
func (e Envelope) WithSerial(serial string) Envelope {
	if serial != "" {
		e.Metadata["serial_used"] = serial
	}
	return e
}

// WithMeta adds one metadata key.
func (e Envelope) WithMeta(key string, value any) Envelope {
	e.Metadata[key] = value
	return e
}

// WithData attaches the raw vendor payload.
func (e Envelope) WithData(data any) Envelope {
	e.Data = data
	return e
}

// WithStructured attaches the derived view.
func (e Envelope) WithStructured(structured any) Envelope {
	e.Structured = structured
	return e
}
