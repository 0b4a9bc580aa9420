package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

// DefaultCookieName is the cookie Flask stores its signed session in.
const DefaultCookieName = "session"

// SessionProvider supplies the cookie that identifies the current user to
// the backend. A nil cookie means "send no cookie".
type SessionProvider interface {
	SessionCookie() (*http.Cookie, error)
}

// NoSession is used when no session is configured.
type NoSession struct{}

func (NoSession) SessionCookie() (*http.Cookie, error) { return nil, nil }

// FileSessionProvider builds the session cookie from a file on disk. The
// file holds either the bare cookie value or a Cookie header copied from a
// browser ("session=...; other=..."), in which case the configured cookie
// is picked out of it.
type FileSessionProvider struct {
	path string
	name string
}

// NewFileSessionProvider creates a SessionProvider reading from path. An
// empty path yields NoSession; an empty name means DefaultCookieName.
func NewFileSessionProvider(path, name string) SessionProvider {
	if strings.TrimSpace(path) == "" {
		return NoSession{}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultCookieName
	}
	return &FileSessionProvider{path: path, name: name}
}

// SessionCookie reads the file on every call so a refreshed login is picked
// up without a restart.
func (f *FileSessionProvider) SessionCookie() (*http.Cookie, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading session from %s: %w", f.path, err)
	}

	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(data)), "Cookie:"))
	if raw == "" {
		return nil, fmt.Errorf("session file %s is empty", f.path)
	}
	if !strings.Contains(raw, "=") {
		return &http.Cookie{Name: f.name, Value: raw}, nil
	}

	cookies, err := http.ParseCookie(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing cookies in %s: %w", f.path, err)
	}
	for _, c := range cookies {
		if c.Name == f.name {
			return &http.Cookie{Name: c.Name, Value: c.Value}, nil
		}
	}
	return nil, fmt.Errorf("session file %s has no %q cookie", f.path, f.name)
}
