package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/edgemenu/internal/app"
	"github.com/atomicstack/edgemenu/internal/geometry"
	"github.com/atomicstack/edgemenu/internal/menu"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	def := app.DefaultConfig()
	a := cfg.App
	if len(a.Edges) != 2 || a.Edges[0] != geometry.Near || a.Edges[1] != geometry.Far {
		t.Fatalf("expected near,far edges, got %v", a.Edges)
	}
	if a.RowHeight != def.RowHeight || a.EdgeMargin != def.EdgeMargin {
		t.Fatalf("unexpected geometry defaults %#v", a)
	}
	if !a.Traverse || a.AllowOffscreen {
		t.Fatalf("unexpected behaviour flags traverse=%v offscreen=%v", a.Traverse, a.AllowOffscreen)
	}
	if len(a.Items) != len(menu.DefaultItems()) {
		t.Fatalf("expected default items, got %d", len(a.Items))
	}
	if cfg.File != path {
		t.Fatalf("expected file %q, got %q", path, cfg.File)
	}
	if cfg.Flags["edges"] != "near,far" {
		t.Fatalf("expected edges flag near,far, got %q", cfg.Flags["edges"])
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadArgsPrecedence(t *testing.T) {
	path := writeConfig(t, `
[menu]
edges = ["far"]
row_height = 3
edge_margin = 4

[indicator]
position_percent = 25
`)
	env := []string{
		"EDGEMENU_ROW_HEIGHT=5",
		"EDGEMENU_EDGE_MARGIN=6",
	}
	cfg, err := LoadArgs([]string{"--config", path, "--edge-margin", "7"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	a := cfg.App
	if a.EdgeMargin != 7 {
		t.Fatalf("flag should win, got edge margin %d", a.EdgeMargin)
	}
	if a.RowHeight != 5 {
		t.Fatalf("env should beat file, got row height %v", a.RowHeight)
	}
	if a.IndicatorPercent != 25 {
		t.Fatalf("file should beat default, got percent %v", a.IndicatorPercent)
	}
	if len(a.Edges) != 1 || a.Edges[0] != geometry.Far {
		t.Fatalf("expected far edge from file, got %v", a.Edges)
	}
}

func TestLoadArgsBadEnvFallsBack(t *testing.T) {
	path := writeConfig(t, "[menu]\nrow_height = 3\n")
	cfg, err := LoadArgs([]string{"--config", path}, []string{"EDGEMENU_ROW_HEIGHT=tall"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.RowHeight != 3 {
		t.Fatalf("expected file row height 3, got %v", cfg.App.RowHeight)
	}
}

func TestLoadArgsBadFileValue(t *testing.T) {
	path := writeConfig(t, "[menu]\ntraverse = \"sometimes\"\n")
	if _, err := LoadArgs([]string{"--config", path}, nil); err == nil {
		t.Fatalf("expected error for bad traverse value")
	} else if !strings.Contains(err.Error(), "menu.traverse") {
		t.Fatalf("expected error to name the key, got %v", err)
	}
}

func TestLoadArgsItemsFromFile(t *testing.T) {
	path := writeConfig(t, `
[[items]]
id = "copy"
label = "Copy"

[[items]]
id = "paste"
`)
	cfg, err := LoadArgs([]string{"--config", path}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	items := cfg.App.Items
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "copy" || items[0].Label != "Copy" {
		t.Fatalf("unexpected first item %#v", items[0])
	}
	if items[1].ID != "paste" || items[1].Label != "Paste" {
		t.Fatalf("unexpected second item %#v", items[1])
	}
}

func TestLoadArgsItemsFlagOverridesFile(t *testing.T) {
	path := writeConfig(t, "[[items]]\nid = \"copy\"\n")
	cfg, err := LoadArgs([]string{"--config", path, "--items", "undo=Undo it,redo"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	items := cfg.App.Items
	if len(items) != 2 || items[0].ID != "undo" || items[0].Label != "Undo it" || items[1].ID != "redo" {
		t.Fatalf("unexpected items %#v", items)
	}
	if cfg.Flags["items"] != "2" {
		t.Fatalf("expected items flag 2, got %q", cfg.Flags["items"])
	}
}

func TestLoadArgsConfigFromEnv(t *testing.T) {
	path := writeConfig(t, "[ui]\nfooter = false\n")
	cfg, err := LoadArgs(nil, []string{"EDGEMENU_CONFIG=" + path})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled by file")
	}
	if cfg.File != path {
		t.Fatalf("expected file %q, got %q", path, cfg.File)
	}
}

func TestLoadArgsMissingExplicitFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := LoadArgs([]string{"--config", missing}, nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadArgsRejectsUnknownEdge(t *testing.T) {
	path := writeConfig(t, "")
	if _, err := LoadArgs([]string{"--config", path, "--edges", "near,top"}, nil); err == nil {
		t.Fatalf("expected error for unknown edge")
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	path := writeConfig(t, "")
	if _, err := LoadArgs([]string{"--config", path, "--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
}

func TestLoadArgsHelpReturnsUsage(t *testing.T) {
	_, err := LoadArgs([]string{"-h"}, nil)
	var usage *UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("usage error should unwrap to flag.ErrHelp")
	}
	if !strings.Contains(usage.Usage, "-row-height") {
		t.Fatalf("usage should list flags, got %q", usage.Usage)
	}
}

func TestLoadArgsLogging(t *testing.T) {
	path := writeConfig(t, "[logging]\nfile = \"from-file.log\"\ntrace = true\n")
	cfg, err := LoadArgs([]string{"--config", path, "--log-file", "flag.log"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Logging.FilePath != "flag.log" {
		t.Fatalf("expected flag log file, got %q", cfg.Logging.FilePath)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from file")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Config{App: app.Config{
		RowHeight:        0,
		IndicatorWidth:   0,
		IndicatorHeight:  1,
		IndicatorPercent: 120,
		EdgeMargin:       0,
	}}
	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"edge", "row height", "indicator size", "indicator percent", "edge margin", "no items"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestParseEdgesDeduplicates(t *testing.T) {
	edges, err := parseEdges(" right , left,far ")
	if err != nil {
		t.Fatalf("parseEdges: %v", err)
	}
	if len(edges) != 2 || edges[0] != geometry.Far || edges[1] != geometry.Near {
		t.Fatalf("unexpected edges %v", edges)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde expands to home", input: "~/edgemenu.toml", expected: filepath.Join(home, "edgemenu.toml")},
		{name: "tilde only", input: "~", expected: home},
		{name: "absolute path unchanged", input: "/etc/edgemenu.toml", expected: "/etc/edgemenu.toml"},
		{name: "relative path unchanged", input: "conf/edgemenu.toml", expected: "conf/edgemenu.toml"},
		{name: "tilde inside a name unchanged", input: "a~/b", expected: "a~/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.expected {
				t.Fatalf("expandPath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidateRejectsNonFiniteScalars(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := LoadArgs([]string{
		"--config", path,
		"--indicator-percent", "NaN",
		"--border-margin", "Inf",
		"--bounce-to", "-Inf",
	}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	err = Validate(cfg)
	if err == nil {
		t.Fatalf("expected non-finite values to be rejected")
	}
	for _, want := range []string{"indicator percent", "border margin", "bounce offsets"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}
