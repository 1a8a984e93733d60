package domain

import (
	"sort"
	"time"
)

// Document is an opaque response body made of nested maps, slices and
// scalars, with the transport envelope removed.
type Document map[string]any

// Envelope is the transport metadata of a single response.
type Envelope struct {
	StatusCode int
	RequestID  string
}

// Page is one raw response of a service call.
type Page struct {
	Document  Document
	NextToken string
	Envelope  Envelope
}

// ConfigMapping is the per-region result. A missing category means the fetch
// failed or was skipped; an empty successful fetch is still present.
type ConfigMapping map[Category]Document

// Sorted returns the categories in lexical order.
func (m ConfigMapping) Sorted() []Category {
	out := make([]Category, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type Failure struct {
	Category Category `json:"category"`
	ItemID   string   `json:"item_id,omitempty"`
	Code     string   `json:"code"`
	Reason   string   `json:"reason"`
}

// RegionSnapshot is what the collector hands back for one region.
type RegionSnapshot struct {
	Region   string
	Config   ConfigMapping
	Skipped  []Category
	Failures []Failure
}

type RegionReport struct {
	Region    string     `json:"region"`
	Persisted []Category `json:"persisted"`
	Skipped   []Category `json:"skipped"`
	Failures  []Failure  `json:"failures"`
}

// RunReport summarises one snapshot run and explains every absent category.
type RunReport struct {
	RunID      string         `json:"run_id"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Profile    string         `json:"profile,omitempty"`
	OutputDir  string         `json:"output_dir"`
	VPCs       []string       `json:"vpcs"`
	SkipData   []Category     `json:"skip_data"`
	Regions    []RegionReport `json:"regions"`
}

// Identity is returned by the credential check.
type Identity struct {
	Account     string
	ARN         string
	UserID      string
	RegionCount int
}
