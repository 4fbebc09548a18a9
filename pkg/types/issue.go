package types

import (
	"bytes"
	"encoding/json"
)

// IssueRecord describes one issue to file
type IssueRecord struct {
	Title  string   `yaml:"title"`
	Body   string   `yaml:"body"`
	Labels []string `yaml:"labels"`
}

// Clone returns a copy that shares no memory with r
func (r IssueRecord) Clone() IssueRecord {
	out := r
	if r.Labels != nil {
		out.Labels = append([]string(nil), r.Labels...)
	}
	return out
}

// LabelSet returns the labels with duplicates removed, keeping first occurrence order
func (r IssueRecord) LabelSet() []string {
	seen := make(map[string]struct{}, len(r.Labels))
	labels := make([]string, 0, len(r.Labels))
	for _, label := range r.Labels {
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	return labels
}

// Status is the outcome of a single create call
type Status string

const (
	StatusCreated Status = "created"
	StatusFailed  Status = "failed"
)

// Result contains the outcome of submitting one IssueRecord
type Result struct {
	Record     IssueRecord
	Status     Status
	StatusCode int
	Issue      *IssueInfo
	APIError   *APIError
	// ErrorBody is the response body as sent by GitHub, when it was valid JSON
	ErrorBody json.RawMessage
}

// Created reports whether the issue was created
func (r Result) Created() bool {
	return r.Status == StatusCreated
}

// ErrorPayload returns the failure body as compact JSON. The raw body wins
// over the typed APIError; an empty object is returned when neither is set.
func (r Result) ErrorPayload() []byte {
	if len(r.ErrorBody) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, r.ErrorBody); err == nil {
			return buf.Bytes()
		}
	}
	if r.APIError != nil {
		if data, err := json.Marshal(r.APIError); err == nil {
			return data
		}
	}
	return []byte("{}")
}

// APIError is the decoded error payload GitHub returns with a non-201 response
type APIError struct {
	Message          string          `json:"message"`
	Errors           []APIErrorEntry `json:"errors,omitempty"`
	DocumentationURL string          `json:"documentation_url,omitempty"`
}

// APIErrorEntry is one item of the "errors" array in a GitHub error payload
type APIErrorEntry struct {
	Resource string `json:"resource,omitempty"`
	Field    string `json:"field,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}
