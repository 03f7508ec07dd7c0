package launcher

import "strings"

// Browser selects which installed browser receives the windows.
type Browser string

const (
	Chrome  Browser = "Chrome"
	Firefox Browser = "Firefox"
	Edge    Browser = "Edge"
	Brave   Browser = "Brave"
)

// ParseBrowser matches a browser name case-insensitively.
func ParseBrowser(s string) (Browser, bool) {
	for _, b := range []Browser{Chrome, Firefox, Edge, Brave} {
		if strings.EqualFold(s, string(b)) {
			return b, true
		}
	}
	return "", false
}

// privateFlags maps each browser to its private-window flag. The
// vendors never agreed on a spelling.
var privateFlags = map[Browser]string{
	Chrome:  "--incognito",
	Firefox: "-private-window",
	Edge:    "--inprivate",
	Brave:   "--incognito",
}

var darwinApps = map[Browser]string{
	Chrome:  "Google Chrome",
	Firefox: "Firefox",
	Edge:    "Microsoft Edge",
	Brave:   "Brave Browser",
}

var linuxBinaries = map[Browser][]string{
	Chrome:  {"google-chrome", "chromium-browser"},
	Firefox: {"firefox"},
	Edge:    {"microsoft-edge"},
	Brave:   {"brave-browser"},
}

var windowsPaths = map[Browser][]string{
	Chrome: {
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	},
	Firefox: {
		`C:\Program Files\Mozilla Firefox\firefox.exe`,
		`C:\Program Files (x86)\Mozilla Firefox\firefox.exe`,
	},
	Edge: {
		`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
		`C:\Program Files\Microsoft\Edge\Application\msedge.exe`,
	},
	Brave: {
		`C:\Program Files\BraveSoftware\Brave-Browser\Application\brave.exe`,
		`C:\Program Files (x86)\BraveSoftware\Brave-Browser\Application\brave.exe`,
	},
}

// Brave ships no well-known shell alias, so it has no start fallback.
var windowsFallbacks = map[Browser]string{
	Chrome:  "chrome",
	Firefox: "firefox",
	Edge:    "msedge",
}

// commandsFor returns candidate command lines in preference order for
// opening url in a fresh private window. An empty result means the
// browser is not supported on this OS.
func commandsFor(browser Browser, goos, url string) [][]string {
	flag, ok := privateFlags[browser]
	if !ok {
		return nil
	}

	switch goos {
	case "darwin":
		return [][]string{{"open", "-na", darwinApps[browser], "--args", flag, url}}

	case "windows":
		var cmds [][]string
		for _, path := range windowsPaths[browser] {
			cmds = append(cmds, []string{path, flag, url})
		}
		if alias, ok := windowsFallbacks[browser]; ok {
			cmds = append(cmds, []string{"cmd", "/C", "start", alias, flag, url})
		}
		return cmds

	case "linux":
		var cmds [][]string
		for _, bin := range linuxBinaries[browser] {
			cmds = append(cmds, []string{bin, flag, url})
		}
		return cmds
	}

	return nil
}
