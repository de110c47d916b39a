package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalGraph converts a Digraph to JSON bytes.
// Nodes are sorted by id for deterministic output.
func MarshalGraph(g *Digraph, meta Meta) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, meta, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraphFile writes a Digraph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Digraph, meta Meta, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, meta, f)
}

// WriteGraph writes a Digraph as JSON to an io.Writer.
// Use MarshalGraph for in-memory serialization or WriteGraphFile for files.
func WriteGraph(g *Digraph, meta Meta, w io.Writer) error {
	return writeGraphTo(g, meta, w)
}

// ReadGraphFile reads a JSON file and returns the decoded Digraph along
// with its metadata. Returns validation errors for malformed graphs.
func ReadGraphFile(path string) (*Digraph, Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readGraphFrom(f)
}

// ReadGraph decodes a JSON graph from an io.Reader into a Digraph.
// Use ReadGraphFile for files or pass bytes.NewReader for in-memory data.
func ReadGraph(r io.Reader) (*Digraph, Meta, error) {
	return readGraphFrom(r)
}

func writeGraphTo(g *Digraph, meta Meta, w io.Writer) error {
	out := FromDigraph(g, meta)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readGraphFrom(r io.Reader) (*Digraph, Meta, error) {
	var data Graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, Meta{}, fmt.Errorf("decode: %w", err)
	}
	g, err := ToDigraph(data)
	if err != nil {
		return nil, Meta{}, err
	}
	return g, data.Meta, nil
}
