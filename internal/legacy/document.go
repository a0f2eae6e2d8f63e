package legacy

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is one menu in a legacy menu file: the sectioned content plus the
// layout options and level it was composed with. A file may hold several
// documents separated by "---".
type Document struct {
	ID      string  `yaml:"id,omitempty"`
	Level   string  `yaml:"level,omitempty"`
	Options Options `yaml:"options,omitempty"`
	Content `yaml:",inline"`
}

// Named returns d keyed for ConvertAll. The id falls back to the level and
// then to the 1-based position i+1.
func (d Document) Named(i int) Named {
	id := d.ID
	if id == "" {
		id = d.Level
	}
	if id == "" {
		id = fmt.Sprintf("menu-%d", i+1)
	}
	return Named{
		ID:      id,
		Content: d.Content,
		Context: &DisplayContext{Level: d.Level},
		Options: d.Options,
	}
}

// Decode reads every document from r. Unknown keys are an error.
func Decode(r io.Reader) ([]Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []Document
	for {
		var d Document
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode legacy document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, d)
	}
	if len(docs) == 0 {
		return nil, errors.New("no legacy menu documents")
	}
	return docs, nil
}
