package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Asset describes where a source's raw content came from.
// Exactly one of URL or FilePath is populated for url/file sources;
// both are empty for pasted text, in which case Kind alone identifies it.
type Asset struct {
	URL      string
	FilePath string
	Kind     string // e.g. "pdf_document", "html_content", "video_transcript", "pasted_text"
}

// Insight is a named transformation result attached to a source.
// Insights are append-only; the pipeline never removes them.
type Insight struct {
	Kind    string // the transformation's title, e.g. "Summary"
	Content string
}

// SourceRecord is the durable unit representing one ingested piece of content.
// It may be enriched with insights and an embedding after saving.
type SourceRecord struct {
	Id         ID
	Title      string
	FullText   string
	Asset      Asset
	Insights   []Insight
	Vector     []float32 // Embedding vector for semantic search (populated on request)
	InsertedAt time.Time
	UpdatedAt  time.Time
	Metadata   map[string]string // Optional metadata (e.g. "original_url", "original_filename")
}

// Collection groups saved sources, mirroring a user-facing workspace.
type Collection struct {
	Id         ID
	Name       string
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// TransformationSpec describes one LLM transformation to apply to saved sources.
// Specs are immutable during a pipeline run.
type TransformationSpec struct {
	Name         string `yaml:"name"`
	Title        string `yaml:"title"`
	Prompt       string `yaml:"prompt"`
	ApplyDefault bool   `yaml:"apply_default"`
}

// SearchResult represents a search result with the full source and relevance score.
type SearchResult struct {
	Source *SourceRecord
	Score  float32
}
