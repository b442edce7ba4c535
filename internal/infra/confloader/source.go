package confloader

import (
	"errors"
	"sort"
)

// Source identifies the layer a configuration key was last set by.
type Source string

// Sources in increasing precedence.
const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// Origin pairs a dotted key with the source that set it.
type Origin struct {
	Key    string
	Source Source
}

// sortedOrigins returns m as a slice ordered by key.
func sortedOrigins(m map[string]Source) []Origin {
	out := make([]Origin, 0, len(m))
	for k, s := range m {
		out = append(out, Origin{Key: k, Source: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

var errNoBytes = errors.New("confloader: map source has no byte form")

// mapSource feeds an already nested map to koanf.
type mapSource map[string]any

func (m mapSource) ReadBytes() ([]byte, error) { return nil, errNoBytes }

func (m mapSource) Read() (map[string]any, error) { return m, nil }
