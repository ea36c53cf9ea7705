package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func valuesJSON(values [][]any) []byte {
	b, _ := json.Marshal(map[string]any{"values": values})
	return b
}

func newTestSource(t *testing.T, srv *httptest.Server) *Source {
	t.Helper()
	src, err := New("test-key", "sheet-id", "Sheet1!A:H")
	if err != nil {
		t.Fatal(err)
	}
	src.SetBaseURL(srv.URL)
	return src
}

func TestFetchRawRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key, url = %s", r.URL)
		}
		w.Write(valuesJSON([][]any{
			{"FROM-ORIGIN", "AREA", "RATE", "VENDOR NAME"},
			{"SILIGURI", "GELEPHU", 21000.0, "NITESH SINGH"},
			{"SILIGURI", "KATIHAR", 9700.0}, // short row, trailing cells blank
		}))
	}))
	defer srv.Close()

	rows, err := newTestSource(t, srv).FetchRawRows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0]["FROM-ORIGIN"] != "SILIGURI" || rows[0]["RATE"] != 21000.0 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1]["VENDOR NAME"] != "" {
		t.Errorf("short row: VENDOR NAME = %v, want empty string", rows[1]["VENDOR NAME"])
	}
}

func TestFetchRawRowsHeaderOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(valuesJSON([][]any{{"FROM-ORIGIN", "AREA"}}))
	}))
	defer srv.Close()

	rows, err := newTestSource(t, srv).FetchRawRows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestFetchRawRowsRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write(valuesJSON([][]any{
			{"FROM-ORIGIN", "AREA"},
			{"SILIGURI", "GELEPHU"},
		}))
	}))
	defer srv.Close()

	rows, err := newTestSource(t, srv).FetchRawRows(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want 1", len(rows))
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestFetchRawRowsDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := newTestSource(t, srv).FetchRawRows(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestUpdateRow(t *testing.T) {
	var gotTarget string
	var gotBody struct {
		Values [][]any `json:"values"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write(valuesJSON([][]any{{"FROM-ORIGIN", "AREA", "RATE"}}))
		case http.MethodPut:
			gotTarget = r.URL.Path
			if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
				t.Errorf("decode body: %v", err)
			}
			if r.URL.Query().Get("valueInputOption") != "RAW" {
				t.Errorf("valueInputOption missing, url = %s", r.URL)
			}
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	updated, err := newTestSource(t, srv).UpdateRow(context.Background(), map[string]any{
		"FROM-ORIGIN": "SILIGURI",
		"AREA":        "KATIHAR",
		"RATE":        9900,
	}, 6)
	if err != nil {
		t.Fatal(err)
	}
	if !updated {
		t.Error("updated = false, want true")
	}

	// Zero-based data row 6 lands on sheet row 8.
	if want := "/v4/spreadsheets/sheet-id/values/Sheet1!A8"; gotTarget != want {
		t.Errorf("target = %q, want %q", gotTarget, want)
	}
	if len(gotBody.Values) != 1 || len(gotBody.Values[0]) != 3 {
		t.Fatalf("body values = %+v", gotBody.Values)
	}
	if gotBody.Values[0][0] != "SILIGURI" || gotBody.Values[0][1] != "KATIHAR" {
		t.Errorf("row values = %+v", gotBody.Values[0])
	}
}

func TestUpdateRowRejectsNegativeIndex(t *testing.T) {
	src, err := New("test-key", "sheet-id", "Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := src.UpdateRow(context.Background(), map[string]any{}, -1); err == nil {
		t.Fatal("expected error for negative index")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New("", "sheet-id", ""); err == nil {
		t.Error("expected error for empty api key")
	}
	if _, err := New("key", "", ""); err == nil {
		t.Error("expected error for empty spreadsheet id")
	}

	src, err := New("key", "sheet-id", "Rates!A1:H100")
	if err != nil {
		t.Fatal(err)
	}
	if src.sheetName != "Rates" {
		t.Errorf("sheetName = %q, want Rates", src.sheetName)
	}
}
