package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"parishterm/infra/api"
	"parishterm/infra/config"
	"parishterm/infra/editor"
	"parishterm/infra/logging"
	"parishterm/infra/session"
	"parishterm/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: parishterm [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("parishterm %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Build infrastructure. The logger writes to a file only; stderr
	// belongs to the TUI.
	logger, err := logging.NewFileLogger(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cookies := session.NewFileCookieSource(cfg.CookiesPath)
	client := api.NewClient(cfg.ServerURL, cookies, logger)

	// 3. Build services (concrete types satisfy app.* interfaces).
	// The viewer's id is resolved asynchronously by the root model; a
	// discovery failure just means browsing anonymously.
	sessionSvc := api.NewSessionService(client)
	commentSvc := api.NewCommentService(client)
	postSvc := api.NewPostService(client)
	editorSvc := editor.NewEnvEditor()

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Posts:    postSvc,
		Comments: commentSvc,
		Session:  sessionSvc,
		Editor:   editorSvc,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "parishterm: %v\n", err)
		os.Exit(1)
	}
}
