package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/time/rate"

	"github.com/dharmasatrya/flightincognito/internal/models"
)

// Launcher opens URLs in fresh private windows, one at a time, paced so
// a burst of windows does not overwhelm the OS.
type Launcher struct {
	goos  string
	run   func(name string, args ...string) error
	pacer *rate.Limiter
}

type Config struct {
	// Interval is the minimum gap between successive window launches.
	Interval time.Duration
}

func DefaultConfig() Config {
	return Config{Interval: 300 * time.Millisecond}
}

func New(cfg Config) *Launcher {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 300 * time.Millisecond
	}
	return &Launcher{
		goos:  runtime.GOOS,
		run:   startDetached,
		pacer: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Start()
}

// Launch opens url in a fresh private window. Best effort: an
// unsupported or missing browser is reported in the message, never as
// an error.
func (l *Launcher) Launch(url string, browser Browser) (bool, string) {
	candidates := commandsFor(browser, l.goos, url)
	if len(candidates) == 0 {
		return false, fmt.Sprintf("browser %s not supported on %s", browser, l.goos)
	}

	for _, c := range candidates {
		if err := l.run(c[0], c[1:]...); err == nil {
			return true, fmt.Sprintf("launched %s on %s", browser, l.goos)
		}
	}

	return false, fmt.Sprintf("%s not found", browser)
}

// LaunchAll opens every link sequentially, waiting on the pacer between
// windows. A failed launch is recorded and the rest still proceed.
func (l *Launcher) LaunchAll(ctx context.Context, links models.LinkSet, browser Browser) []models.LaunchResult {
	results := make([]models.LaunchResult, 0, len(links))

	for i, link := range links {
		if i > 0 {
			if err := l.pacer.Wait(ctx); err != nil {
				results = append(results, models.LaunchResult{
					Site:    link.Site,
					URL:     link.URL,
					Success: false,
					Message: err.Error(),
				})
				continue
			}
		}

		ok, msg := l.Launch(link.URL, browser)
		results = append(results, models.LaunchResult{
			Site:    link.Site,
			URL:     link.URL,
			Success: ok,
			Message: msg,
		})
	}

	return results
}
