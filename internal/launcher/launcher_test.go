package launcher

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

func TestParseBrowser(t *testing.T) {
	tests := []struct {
		in     string
		want   Browser
		wantOK bool
	}{
		{"Chrome", Chrome, true},
		{"chrome", Chrome, true},
		{"FIREFOX", Firefox, true},
		{"edge", Edge, true},
		{"Brave", Brave, true},
		{"safari", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseBrowser(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseBrowser(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCommandsFor(t *testing.T) {
	const url = "https://www.kayak.com/flights/SFO-LAX/2025-07-04"

	tests := []struct {
		name    string
		browser Browser
		goos    string
		want    [][]string
	}{
		{
			name:    "chrome on darwin",
			browser: Chrome,
			goos:    "darwin",
			want:    [][]string{{"open", "-na", "Google Chrome", "--args", "--incognito", url}},
		},
		{
			name:    "firefox on linux",
			browser: Firefox,
			goos:    "linux",
			want:    [][]string{{"firefox", "-private-window", url}},
		},
		{
			name:    "chrome on linux falls back to chromium",
			browser: Chrome,
			goos:    "linux",
			want: [][]string{
				{"google-chrome", "--incognito", url},
				{"chromium-browser", "--incognito", url},
			},
		},
		{
			name:    "edge on windows ends with start fallback",
			browser: Edge,
			goos:    "windows",
			want: [][]string{
				{`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`, "--inprivate", url},
				{`C:\Program Files\Microsoft\Edge\Application\msedge.exe`, "--inprivate", url},
				{"cmd", "/C", "start", "msedge", "--inprivate", url},
			},
		},
		{
			name:    "unsupported os",
			browser: Chrome,
			goos:    "plan9",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commandsFor(tt.browser, tt.goos, url)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestCommandsFor_BraveWindowsHasNoStartFallback(t *testing.T) {
	cmds := commandsFor(Brave, "windows", "https://example.com")
	if len(cmds) != 2 {
		t.Fatalf("got %d candidates, want 2 install paths only", len(cmds))
	}
	for _, c := range cmds {
		if c[0] == "cmd" {
			t.Errorf("unexpected start fallback: %v", c)
		}
	}
}

func newTestLauncher(goos string, run func(name string, args ...string) error) *Launcher {
	l := New(Config{Interval: time.Millisecond})
	l.goos = goos
	l.run = run
	return l
}

func TestLaunch_FallsThroughCandidates(t *testing.T) {
	var attempts [][]string
	l := newTestLauncher("linux", func(name string, args ...string) error {
		attempts = append(attempts, append([]string{name}, args...))
		if name == "google-chrome" {
			return errors.New("not installed")
		}
		return nil
	})

	ok, msg := l.Launch("https://example.com", Chrome)
	if !ok {
		t.Fatalf("launch failed: %s", msg)
	}
	if len(attempts) != 2 || attempts[1][0] != "chromium-browser" {
		t.Errorf("unexpected attempt sequence: %v", attempts)
	}
}

func TestLaunch_AllCandidatesFail(t *testing.T) {
	l := newTestLauncher("linux", func(name string, args ...string) error {
		return errors.New("not installed")
	})

	ok, msg := l.Launch("https://example.com", Firefox)
	if ok {
		t.Fatal("expected launch to fail")
	}
	if msg != "Firefox not found" {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestLaunch_UnsupportedOS(t *testing.T) {
	l := newTestLauncher("plan9", func(name string, args ...string) error {
		t.Fatal("run should not be called")
		return nil
	})

	ok, msg := l.Launch("https://example.com", Chrome)
	if ok {
		t.Fatal("expected launch to fail")
	}
	if msg != "browser Chrome not supported on plan9" {
		t.Errorf("unexpected message: %s", msg)
	}
}

func TestLaunchAll_ReportsPerLink(t *testing.T) {
	calls := 0
	l := newTestLauncher("linux", func(name string, args ...string) error {
		calls++
		if calls > 2 {
			return errors.New("not installed")
		}
		return nil
	})

	links := models.LinkSet{
		{Site: "Kayak", URL: "https://www.kayak.com/a"},
		{Site: "Momondo", URL: "https://www.momondo.com/b"},
		{Site: "Firefox-only", URL: "https://example.com/c"},
	}

	results := l.LaunchAll(context.Background(), links, Firefox)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !results[0].Success || !results[1].Success {
		t.Errorf("first two launches should succeed: %+v", results)
	}
	if results[2].Success {
		t.Errorf("third launch should fail: %+v", results[2])
	}
	for i, link := range links {
		if results[i].Site != link.Site {
			t.Errorf("result %d out of order: %+v", i, results[i])
		}
	}
}

func TestLaunchAll_CancelledContext(t *testing.T) {
	l := newTestLauncher("linux", func(name string, args ...string) error {
		return nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	links := models.LinkSet{
		{Site: "Kayak", URL: "https://www.kayak.com/a"},
		{Site: "Momondo", URL: "https://www.momondo.com/b"},
	}

	results := l.LaunchAll(ctx, links, Chrome)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[1].Success {
		t.Error("launch after cancellation should fail")
	}
}
