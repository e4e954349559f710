package cms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBankResolverFindsMatchOnLaterPage(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		items := make([]Item, 100)
		for i := range items {
			items[i] = Item{ID: "bank-other", FieldData: FieldData{"name": "Annen Bank"}}
		}
		if offset == 100 {
			items[42] = Item{ID: "bank-42", FieldData: FieldData{"name": "987654321"}}
		}
		json.NewEncoder(w).Encode(itemListResponse{Items: items})
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "test-token", "kortsync-test")
	resolver := NewBankResolver(client, "banks", 100, 4)

	id, found := resolver.Resolve(context.Background(), "987654321")

	require.True(t, found)
	require.Equal(t, "bank-42", id)
	require.Equal(t, 2, requests, "resolution should stop at the matching page")
}

func TestBankResolverNotFoundWithinPageCap(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		items := make([]Item, 100)
		for i := range items {
			items[i] = Item{ID: "bank-other", FieldData: FieldData{"name": "Annen Bank"}}
		}
		json.NewEncoder(w).Encode(itemListResponse{Items: items})
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "test-token", "kortsync-test")
	resolver := NewBankResolver(client, "banks", 100, 4)

	_, found := resolver.Resolve(context.Background(), "ukjent")

	require.False(t, found)
	require.Equal(t, 4, requests, "scan is capped at four pages")
}

func TestBankResolverSkipsFailedPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if offset == 0 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		items := make([]Item, 100)
		for i := range items {
			items[i] = Item{ID: "bank-other", FieldData: FieldData{"name": "Annen Bank"}}
		}
		if offset == 100 {
			items[0] = Item{ID: "bank-1", FieldData: FieldData{"name": "Sparebanken"}}
		}
		json.NewEncoder(w).Encode(itemListResponse{Items: items})
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "test-token", "kortsync-test")
	resolver := NewBankResolver(client, "banks", 100, 4)

	id, found := resolver.Resolve(context.Background(), "Sparebanken")

	require.True(t, found)
	require.Equal(t, "bank-1", id)
}
