package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mitchellh/mapstructure"
)

// LoadFromFile reads a provider export: a JSON array of normalized posting
// records. Descriptions may still carry HTML markup; it is stripped here so
// the scoring engine only ever sees plain text.
func LoadFromFile(path string) (*Jobs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var items []map[string]any
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("decoding postings: %w", err)
	}

	var list []*Job
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   &list,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(items); err != nil {
		return nil, fmt.Errorf("mapping postings: %w", err)
	}

	for _, job := range list {
		job.Description = StripMarkup(job.Description)
	}

	return &Jobs{Items: list}, nil
}

// StripMarkup flattens an HTML description to plain text. Plain strings pass
// through unchanged.
func StripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
