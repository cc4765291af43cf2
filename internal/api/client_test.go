package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-123")
	if err := c.Do(context.Background(), http.MethodGet, "/jobs", nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}

	c.ClearToken()
	if err := c.Do(context.Background(), http.MethodGet, "/jobs", nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization after ClearToken = %q, want empty", gotAuth)
	}
}

func TestDoUnauthorizedClearsTokenAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	defer srv.Close()

	hookFired := false
	c := NewClient(srv.URL, WithOnUnauthorized(func() { hookFired = true }))
	c.SetToken("stale")

	err := c.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false, want true", err)
	}
	if got := c.Token(); got != "" {
		t.Errorf("token after 401 = %q, want empty", got)
	}
	if !hookFired {
		t.Error("onUnauthorized hook did not fire")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if apiErr.Message != "token expired" {
		t.Errorf("message = %q, want %q", apiErr.Message, "token expired")
	}
}

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"server message", http.StatusBadRequest, `{"message":"title is required"}`, "title is required"},
		{"empty body", http.StatusInternalServerError, ``, ""},
		{"non-json body", http.StatusBadGateway, `<html>oops</html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL).Do(context.Background(), http.MethodGet, "/x", nil, nil, nil)
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error is %T, want *Error", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api error with message", &Error{Status: 400, Message: "bad input"}, "bad input"},
		{"api error without message", &Error{Status: 502}, "fallback"},
		{"plain error", errors.New("dial tcp: refused"), "fallback"},
		{"nil", nil, "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err, "fallback"); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaginationUnmarshalBothShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Pagination
	}{
		{
			"long shape",
			`{"currentPage":2,"totalPages":5,"total":42,"hasNextPage":true,"hasPrevPage":true}`,
			Pagination{CurrentPage: 2, TotalPages: 5, Total: 42, HasNextPage: true, HasPrevPage: true},
		},
		{
			"short shape",
			`{"current":3,"pages":3,"totalJobs":25}`,
			Pagination{CurrentPage: 3, TotalPages: 3, Total: 25, HasNextPage: false, HasPrevPage: true},
		},
		{
			"first page derives flags",
			`{"current":1,"pages":4,"totalJobs":40}`,
			Pagination{CurrentPage: 1, TotalPages: 4, Total: 40, HasNextPage: true, HasPrevPage: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Pagination
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestJobDraftValidate(t *testing.T) {
	valid := JobDraft{
		Title:       "Backend Engineer",
		Description: "Build APIs",
		Company:     Company{Name: "Acme"},
		Salary:      Salary{Min: 50000, Max: 90000},
	}

	tests := []struct {
		name    string
		mutate  func(*JobDraft)
		wantErr bool
	}{
		{"valid", func(*JobDraft) {}, false},
		{"missing title", func(d *JobDraft) { d.Title = "" }, true},
		{"missing description", func(d *JobDraft) { d.Description = "" }, true},
		{"missing company", func(d *JobDraft) { d.Company.Name = "" }, true},
		{"min above max", func(d *JobDraft) { d.Salary.Min = 100; d.Salary.Max = 50 }, true},
		{"zero salary skips range check", func(d *JobDraft) { d.Salary = Salary{} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
