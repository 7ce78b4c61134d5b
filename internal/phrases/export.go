package phrases

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the deck serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml", or "json".
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported deck format %q", value)
	}
}

// Deck is the exported form of a phrase collection.
type Deck struct {
	Phrases []Phrase `json:"phrases" yaml:"phrases"`
}

// Export writes phrases to w.
func Export(w io.Writer, phrases []Phrase, format Format) error {
	deck := Deck{Phrases: phrases}
	if deck.Phrases == nil {
		deck.Phrases = []Phrase{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(deck); err != nil {
			return fmt.Errorf("encode json deck: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(deck); err != nil {
			return fmt.Errorf("encode yaml deck: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml deck: %w", err)
		}
	default:
		return fmt.Errorf("unsupported deck format %q", format)
	}
	return nil
}

// Import reads a deck written by Export.
func Import(r io.Reader, format Format) ([]Phrase, error) {
	var deck Deck
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&deck); err != nil {
			return nil, fmt.Errorf("decode json deck: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&deck); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml deck: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported deck format %q", format)
	}
	return deck.Phrases, nil
}
