package ytprompt

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWatchPageTitleFetcher(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
		wantErr bool
	}{
		{
			name: "strips YouTube suffix and whitespace",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html><head><title> Demo Video - YouTube </title></head><body></body></html>`)
			},
			want: "Demo Video",
		},
		{
			name: "title without suffix",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html><head><title>Plain Title</title></head></html>`)
			},
			want: "Plain Title",
		},
		{
			name: "non-200 response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusNotFound)
			},
			wantErr: true,
		},
		{
			name: "document without title element",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html><head></head><body><p>hi</p></body></html>`)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			fetcher := &WatchPageTitleFetcher{WatchURL: srv.URL + "/watch?v="}
			got, err := fetcher.FetchTitle(context.Background(), "abc12345678")
			if tt.wantErr {
				if err == nil {
					t.Fatal("FetchTitle() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchTitle() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FetchTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOEmbedTitleFetcher(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
		wantErr bool
	}{
		{
			name: "title field returned",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"title":"Demo Video","author_name":"someone"}`)
			},
			want: "Demo Video",
		},
		{
			name: "missing title field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"author_name":"someone"}`)
			},
			want: "Video sin título",
		},
		{
			name: "non-200 response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", http.StatusBadRequest)
			},
			wantErr: true,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"title":`)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			fetcher := &OEmbedTitleFetcher{OEmbedURL: srv.URL + "/oembed"}
			got, err := fetcher.FetchTitle(context.Background(), "abc12345678")
			if tt.wantErr {
				if err == nil {
					t.Fatal("FetchTitle() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchTitle() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FetchTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
