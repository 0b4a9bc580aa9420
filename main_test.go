package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/CrestNiraj12/cafelike/domain"
)

func TestResolveVersionInfo(t *testing.T) {
	settings := map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2026-01-02T03:04:05Z",
	}

	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", settings)
	if v != "v1.2.3" || c != "0123456789ab" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected resolved info: %s %s %s", v, c, d)
	}

	v, c, d = resolveVersionInfo("v9", "abc", "today", "v1.2.3", settings)
	if v != "v9" || c != "abc" || d != "today" {
		t.Fatalf("linker-provided values must win: %s %s %s", v, c, d)
	}

	v, _, _ = resolveVersionInfo("dev", "none", "unknown", "(devel)", nil)
	if v != "dev" {
		t.Fatalf("(devel) must not replace dev: %s", v)
	}
}

func TestMergeCafeIDs(t *testing.T) {
	got := mergeCafeIDs([]int64{3, 0, 1}, []domain.CafeID{1, 7, 3, 7})
	if diff := cmp.Diff([]domain.CafeID{3, 1, 7}, got); diff != "" {
		t.Fatalf("unexpected merge (-want +got):\n%s", diff)
	}
}

// likesBackend mimics the Flask likes API and records writes.
type likesBackend struct {
	mu     sync.Mutex
	liked  map[string]bool
	writes []string
}

func (b *likesBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch r.URL.Path {
	case "/api/likes":
		_ = json.NewEncoder(w).Encode(map[string]bool{"likes": b.liked[r.URL.Query().Get("cafe_id")]})
	case "/api/like", "/api/unlike":
		var body struct {
			CafeID json.Number `json:"cafe_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		action := strings.TrimPrefix(r.URL.Path, "/api/")
		b.writes = append(b.writes, action+" "+body.CafeID.String())
		b.liked[body.CafeID.String()] = action == "like"
		_ = json.NewEncoder(w).Encode(map[string]json.Number{action + "d": body.CafeID})
	default:
		http.NotFound(w, r)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	t.Setenv("CAFELIKE_STATE", filepath.Join(dir, "ui_state.json"))
	t.Setenv("CAFELIKE_LOG", filepath.Join(dir, "cafelike.log"))
	t.Setenv("CAFELIKE_SESSION", "")
	t.Setenv("CAFELIKE_SESSION_COOKIE", "")
	t.Setenv("CAFELIKE_TIMEOUT", "")
	t.Setenv("CAFELIKE_DEBUG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_ToggleFlipsState(t *testing.T) {
	backend := &likesBackend{liked: map[string]bool{"2": true}}
	srv := httptest.NewServer(backend)
	defer srv.Close()

	out, err := runCLI(t, "--api-url", srv.URL+"/api", "toggle", "2")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if out != "cafe 2: ♡ Like (not liked)\n" {
		t.Fatalf("unexpected output: %q", out)
	}

	out, err = runCLI(t, "--api-url", srv.URL+"/api", "toggle", "2")
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if out != "cafe 2: ♥ (liked)\n" {
		t.Fatalf("unexpected output: %q", out)
	}
	if diff := cmp.Diff([]string{"unlike 2", "like 2"}, backend.writes); diff != "" {
		t.Fatalf("unexpected writes (-want +got):\n%s", diff)
	}
}

func TestCLI_LikeUnlikeAndStatus(t *testing.T) {
	backend := &likesBackend{liked: map[string]bool{}}
	srv := httptest.NewServer(backend)
	defer srv.Close()
	api := srv.URL + "/api/"

	if _, err := runCLI(t, "--api-url", api, "like", "5"); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if _, err := runCLI(t, "--api-url", api, "unlike", "6"); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	out, err := runCLI(t, "--api-url", api, "status", "5", "6", "7")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	want := "cafe 5: liked\ncafe 6: not liked\ncafe 7: not liked\n"
	if out != want {
		t.Fatalf("unexpected status output:\n%s", out)
	}
}

func TestCLI_RejectsInvalidIDs(t *testing.T) {
	_, err := runCLI(t, "toggle", "abc")
	if !errors.Is(err, domain.ErrInvalidCafeID) {
		t.Fatalf("expected invalid cafe id, got %v", err)
	}
	_, err = runCLI(t, "status", "--", "1", "-2")
	if !errors.Is(err, domain.ErrInvalidCafeID) {
		t.Fatalf("expected invalid cafe id for negative id, got %v", err)
	}
	_, err = runCLI(t, "like", "0")
	if !errors.Is(err, domain.ErrInvalidCafeID) {
		t.Fatalf("expected invalid cafe id for zero, got %v", err)
	}
}

func TestCLI_MistypedCommandSuggests(t *testing.T) {
	_, err := runCLI(t, "stauts", "1")
	if err == nil {
		t.Fatalf("expected unknown command error")
	}
	if errors.Is(err, domain.ErrInvalidCafeID) {
		t.Fatalf("typo reported as invalid cafe id: %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, `unknown command "stauts"`) || !strings.Contains(msg, "Did you mean this?") || !strings.Contains(msg, "\tstatus") {
		t.Fatalf("expected suggestion for status, got %q", msg)
	}

	_, err = runCLI(t, "zzz")
	if !errors.Is(err, domain.ErrInvalidCafeID) {
		t.Fatalf("expected unrelated word to be an invalid cafe id, got %v", err)
	}
}

func TestCLI_BackendErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := runCLI(t, "--api-url", srv.URL+"/api", "toggle", "1")
	if !errors.Is(err, domain.ErrInvalidResponse) {
		t.Fatalf("expected invalid response, got %v", err)
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "cafelike ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
