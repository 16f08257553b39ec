// SPDX-License-Identifier: MPL-2.0

package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// releaseServer serves a latest-release payload and records the request.
func releaseServer(t *testing.T, tag string) (*httptest.Server, *http.Request) {
	t.Helper()
	var seen http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = *r
		if r.URL.Path != "/repos/Julian-Bruyers/qrlan-cli/releases/latest" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://github.com/Julian-Bruyers/qrlan-cli/releases/tag/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"v1.2.3", "v1.2.3", true},
		{"1.2.3", "v1.2.3", true},
		{"release-2.0.1", "v2.0.1", true},
		{"dev", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := normalizeVersion(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeVersion(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCheckReportsNewerMinor(t *testing.T) {
	t.Parallel()

	srv, req := releaseServer(t, "v1.3.0")
	c := NewClient(WithBaseURL(srv.URL))

	update, err := c.Check(context.Background(), "1.2.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update == nil {
		t.Fatal("expected an update notice")
	}
	if update.LatestVersion != "1.3.0" || update.CurrentVersion != "1.2.5" {
		t.Errorf("update = %+v", update)
	}
	if update.ReleaseURL == "" {
		t.Error("release URL missing")
	}
	if ua := req.Header.Get("User-Agent"); ua != userAgent {
		t.Errorf("User-Agent = %q, want %q", ua, userAgent)
	}
}

func TestCheckIgnoresPatchReleases(t *testing.T) {
	t.Parallel()

	srv, _ := releaseServer(t, "v1.2.9")
	c := NewClient(WithBaseURL(srv.URL))

	update, err := c.Check(context.Background(), "v1.2.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update != nil {
		t.Errorf("patch release must not notify, got %+v", update)
	}
}

func TestCheckUpToDate(t *testing.T) {
	t.Parallel()

	srv, _ := releaseServer(t, "v1.2.0")
	c := NewClient(WithBaseURL(srv.URL))

	update, err := c.Check(context.Background(), "v1.2.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update != nil {
		t.Errorf("expected no update, got %+v", update)
	}
}

func TestCheckRejectsDevVersion(t *testing.T) {
	t.Parallel()

	c := NewClient()
	if _, err := c.Check(context.Background(), "dev"); err == nil {
		t.Fatal("expected an error for a non-release version")
	}
}

func TestLatestReleaseHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(WithBaseURL(srv.URL))
	if _, err := c.LatestRelease(context.Background()); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestInstallHint(t *testing.T) {
	t.Parallel()

	u := &Update{CurrentVersion: "1.0.0", LatestVersion: "2.0.0"}
	if u.InstallHint() == "" {
		t.Error("install hint is empty")
	}
}
