package wardrobe

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/digidrobe/digidrobe-go/internal/domain"
)

func TestGetWardrobeCategoryQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)

	cases := []struct {
		category  string
		wantQuery string
	}{
		{"tops", "category=tops"},
		{"shoes", "category=shoes"},
		{"all", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := client.GetWardrobe(context.Background(), tc.category); err != nil {
			t.Fatalf("GetWardrobe(%q): %v", tc.category, err)
		}
		if gotQuery != tc.wantQuery {
			t.Fatalf("GetWardrobe(%q) query = %q, want %q", tc.category, gotQuery, tc.wantQuery)
		}
	}
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"item 99 does not exist"}`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.GetClothingItem(context.Background(), 99)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "item 99 does not exist" {
		t.Fatalf("message = %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
}

func TestAPIErrorFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `<html>oops</html>`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.GetTodaysOutfit(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "HTTP 500" {
		t.Fatalf("message = %q, want HTTP 500", apiErr.Message)
	}
}

func TestAPIErrorAcceptsErrorFieldSpelling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"Not enough items in wardrobe"}`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.GetTodaysOutfit(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Not enough items in wardrobe" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestDeleteIssuesDeleteAndSkipsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/wardrobe/7" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		// Deliberately not valid item JSON; the client must not parse it.
		io.WriteString(w, `{"message":"Item deleted"}`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	if err := client.DeleteClothingItem(context.Background(), 7); err != nil {
		t.Fatalf("DeleteClothingItem: %v", err)
	}
}

func TestHistoryLimitDefaultsAndHonorsExplicit(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)

	if _, err := client.GetOutfitHistory(context.Background(), 0); err != nil {
		t.Fatalf("GetOutfitHistory(0): %v", err)
	}
	if gotLimit != "20" {
		t.Fatalf("default limit = %q, want 20", gotLimit)
	}

	if _, err := client.GetOutfitHistory(context.Background(), 5); err != nil {
		t.Fatalf("GetOutfitHistory(5): %v", err)
	}
	if gotLimit != "5" {
		t.Fatalf("limit = %q, want 5", gotLimit)
	}
}

func TestAddClothingItemRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/wardrobe" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Fatalf("content type = %q", ct)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["name"] != "white tee" || body["category"] != "tops" {
			t.Fatalf("unexpected body %v", body)
		}

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":42,"name":"white tee","category":"tops","isFavorite":false,"wearCount":0}`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	item, err := client.AddClothingItem(context.Background(), domain.ItemPatch{Name: "white tee", Category: "tops"})
	if err != nil {
		t.Fatalf("AddClothingItem: %v", err)
	}
	if item.ID != 42 || item.Name != "white tee" || item.Category != "tops" {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.IsFavorite || item.WearCount != 0 {
		t.Fatalf("flags not passed through: %+v", item)
	}
}

func TestFeedbackOmitsUnsetFields(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		io.WriteString(w, `{"id":7,"isLiked":true,"isSaved":false}`)
	}))
	defer srv.Close()

	liked := true
	client := New(srv.URL, nil)
	outfit, err := client.SubmitOutfitFeedback(context.Background(), 7, domain.OutfitFeedback{Liked: &liked})
	if err != nil {
		t.Fatalf("SubmitOutfitFeedback: %v", err)
	}
	if gotPath != "/outfit/7/feedback" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody != `{"liked":true}` {
		t.Fatalf("body = %q, want {\"liked\":true}", gotBody)
	}
	if !outfit.IsLiked {
		t.Fatalf("outfit not marked liked: %+v", outfit)
	}
}

func TestGenerateOutfitOmitsEmptyStyle(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		io.WriteString(w, `{"id":1,"styleTag":"Clean Casual","items":{"top":{"id":2,"name":"tee","category":"tops"}}}`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)

	outfit, err := client.GenerateOutfit(context.Background(), "")
	if err != nil {
		t.Fatalf("GenerateOutfit: %v", err)
	}
	if gotBody != `{}` {
		t.Fatalf("body = %q, want {}", gotBody)
	}
	if outfit.Items[domain.SlotTop].Name != "tee" {
		t.Fatalf("slot map not decoded: %+v", outfit)
	}

	if _, err := client.GenerateOutfit(context.Background(), "casual"); err != nil {
		t.Fatalf("GenerateOutfit(casual): %v", err)
	}
	if gotBody != `{"style":"casual"}` {
		t.Fatalf("body = %q", gotBody)
	}
}

func TestMalformedResponseIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `not json at all`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	_, err := client.GetClothingItem(context.Background(), 1)

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
}

func TestExtractImageFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/extract-image" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["url"] != "https://shop.example/tee" {
			t.Fatalf("url = %q", body["url"])
		}
		io.WriteString(w, `{"success":true,"imageUrl":"https://cdn.example/tee.jpg","sourceUrl":"https://shop.example/tee"}`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	result, err := client.ExtractImageFromURL(context.Background(), "https://shop.example/tee")
	if err != nil {
		t.Fatalf("ExtractImageFromURL: %v", err)
	}
	if !result.Success || result.ImageURL != "https://cdn.example/tee.jpg" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		io.WriteString(w, `{"status":"healthy","service":"digidrobe-api"}`)
	}))
	defer srv.Close()

	client := New(srv.URL, nil)
	status, err := client.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	if status.Status != "healthy" || status.Service != "digidrobe-api" {
		t.Fatalf("unexpected status %+v", status)
	}
}
