package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/digidrobe/digidrobe-go/internal/domain"
)

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	item := domain.ClothingItem{ID: 1, Name: "white tee", Category: domain.CategoryTops}

	if err := render(&buf, "json", item); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"name": "white tee"`) {
		t.Fatalf("unexpected json output: %s", out)
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	item := domain.ClothingItem{ID: 1, Name: "white tee", Category: domain.CategoryTops}

	if err := render(&buf, "yaml", item); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "name: white tee") {
		t.Fatalf("unexpected yaml output: %s", out)
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := render(&buf, "xml", struct{}{}); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
