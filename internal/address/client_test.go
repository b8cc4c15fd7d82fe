package address

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookup_OK(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"cep":"36542-000","logradouro":"Rua Principal","bairro":"Centro","localidade":"Senador Firmino","uf":"MG"}`)
	}))
	defer srv.Close()

	addr, err := NewClient(srv.URL).Lookup("36.542-000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/ws/36542000/json/" {
		t.Fatalf("expected normalized CEP in path, got %s", gotPath)
	}
	if addr.CEP != "36542000" {
		t.Fatalf("expected normalized CEP 36542000, got %s", addr.CEP)
	}
	if addr.City != "Senador Firmino" || addr.State != "MG" || addr.Street != "Rua Principal" {
		t.Fatalf("unexpected address: %+v", addr)
	}
}

func TestLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"erro": true}`)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Lookup("99999999"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookup_MalformedCEPSkipsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	for _, cep := range []string{"", "1234", "123456789", "abcdefgh"} {
		if _, err := client.Lookup(cep); err != ErrInvalidCEP {
			t.Fatalf("Lookup(%q): expected ErrInvalidCEP, got %v", cep, err)
		}
	}
	if called {
		t.Fatal("expected no request for malformed CEPs")
	}
}

func TestLookup_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Lookup("36542000"); err != ErrLookupFailed {
		t.Fatalf("expected ErrLookupFailed, got %v", err)
	}
}
