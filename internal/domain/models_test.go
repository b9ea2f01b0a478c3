package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampParsesBackendFormats(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		// Bare ISO-8601 as emitted by the backend (no zone, assumed UTC).
		{`"2026-03-14T09:26:53.589793"`, time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)},
		{`"2026-03-14T09:26:53"`, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)},
		{`"2026-03-14T09:26:53Z"`, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)},
		{`null`, time.Time{}},
	}

	for _, tc := range cases {
		var ts Timestamp
		if err := ts.UnmarshalJSON([]byte(tc.raw)); err != nil {
			t.Fatalf("UnmarshalJSON(%s): %v", tc.raw, err)
		}
		if !ts.Equal(tc.want) {
			t.Fatalf("UnmarshalJSON(%s) = %v, want %v", tc.raw, ts.Time, tc.want)
		}
	}

	var ts Timestamp
	if err := ts.UnmarshalJSON([]byte(`"yesterday"`)); err == nil {
		t.Fatalf("expected error for garbage timestamp")
	}
}

func TestClothingItemDecodesWireRecord(t *testing.T) {
	payload := []byte(`{
		"id": 42,
		"name": "white tee",
		"category": "tops",
		"primaryColor": "white",
		"imagePath": "uploads/abc.png",
		"isFavorite": true,
		"createdAt": "2026-03-14T09:26:53.589793",
		"lastWorn": null,
		"wearCount": 3
	}`)

	var item ClothingItem
	if err := json.Unmarshal(payload, &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.ID != 42 || item.PrimaryColor != "white" || item.WearCount != 3 {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.CreatedAt == nil || item.CreatedAt.IsZero() {
		t.Fatalf("createdAt not parsed: %+v", item.CreatedAt)
	}
}

func TestOutfitFeedbackOmitsNilFields(t *testing.T) {
	liked := true
	data, err := json.Marshal(OutfitFeedback{Liked: &liked})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"liked":true}` {
		t.Fatalf("body = %s", data)
	}

	data, err = json.Marshal(OutfitFeedback{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{}` {
		t.Fatalf("empty feedback body = %s", data)
	}
}
