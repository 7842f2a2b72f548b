package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/atomicstack/edgemenu/internal/app"
	"github.com/atomicstack/edgemenu/internal/geometry"
	"github.com/atomicstack/edgemenu/internal/menu"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig           = "EDGEMENU_CONFIG"
	envEdges            = "EDGEMENU_EDGES"
	envAllowOffscreen   = "EDGEMENU_ALLOW_OFFSCREEN"
	envTraverse         = "EDGEMENU_TRAVERSE"
	envEdgeMargin       = "EDGEMENU_EDGE_MARGIN"
	envRowHeight        = "EDGEMENU_ROW_HEIGHT"
	envBorderMargin     = "EDGEMENU_BORDER_MARGIN"
	envBounceFrom       = "EDGEMENU_BOUNCE_FROM"
	envBounceTo         = "EDGEMENU_BOUNCE_TO"
	envIndicatorWidth   = "EDGEMENU_INDICATOR_WIDTH"
	envIndicatorHeight  = "EDGEMENU_INDICATOR_HEIGHT"
	envIndicatorPercent = "EDGEMENU_INDICATOR_PERCENT"
	envItems            = "EDGEMENU_ITEMS"
	envWidth            = "EDGEMENU_WIDTH"
	envHeight           = "EDGEMENU_HEIGHT"
	envShowFooter       = "EDGEMENU_FOOTER"
	envPrint            = "EDGEMENU_PRINT"
	envTrace            = "EDGEMENU_TRACE"
	envLogFile          = "EDGEMENU_LOG_FILE"
)

const (
	configDirName  = "edgemenu"
	configFileName = "config.toml"
	localFileName  = "edgemenu.toml"
)

// Load parses configuration from CLI arguments, environment variables and
// the optional TOML file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	def := app.DefaultConfig()

	fs := flag.NewFlagSet("edgemenu", flag.ContinueOnError)
	usage := new(strings.Builder)
	fs.SetOutput(usage)

	configPath := fs.String("config", "", "path to a TOML config file")
	edges := fs.String("edges", joinEdges(def.Edges), "comma separated edges that start a drag (near,far)")
	allowOffscreen := fs.Bool("allow-offscreen", def.AllowOffscreen, "let the menu be dragged past the screen bounds")
	traverse := fs.Bool("traverse", def.Traverse, "move the indicator across when dragging from the opposite edge")
	edgeMargin := fs.Int("edge-margin", def.EdgeMargin, "columns from a border that count as the edge")
	rowHeight := fs.Float64("row-height", def.RowHeight, "menu row height in terminal rows")
	borderMargin := fs.Float64("border-margin", def.BorderMargin, "indicator inset from its border at rest")
	bounceFrom := fs.Float64("bounce-from", def.Bounce.From, "indicator overshoot offset")
	bounceTo := fs.Float64("bounce-to", def.Bounce.To, "indicator settle offset")
	indicatorWidth := fs.Int("indicator-width", def.IndicatorWidth, "indicator width in cells")
	indicatorHeight := fs.Int("indicator-height", def.IndicatorHeight, "indicator height in rows")
	indicatorPercent := fs.Float64("indicator-percent", def.IndicatorPercent, "resting indicator position as a percentage of the height")
	items := fs.String("items", "", "comma separated menu items (overrides the config file)")
	width := fs.Int("width", def.Width, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", def.Height, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", def.ShowFooter, "show the key hint footer")
	printID := fs.Bool("print", def.Print, "print the selected item id and exit")
	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	logFile := fs.String("log-file", "", "path to the log file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, &UsageError{Usage: usage.String()}
		}
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path, explicit := *configPath, set["config"]
	if !explicit {
		if v, ok := env[envConfig]; ok && strings.TrimSpace(v) != "" {
			path, explicit = v, true
		}
	}
	k, usedPath, err := loadFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	r := resolver{set: set, env: env, file: k}
	cfg := Config{File: usedPath}
	a := def

	edgeText := r.str("edges", *edges, envEdges, "menu.edges", joinEdges(def.Edges))
	if a.Edges, err = parseEdges(edgeText); err != nil {
		return Config{}, err
	}
	a.AllowOffscreen = r.boolean("allow-offscreen", *allowOffscreen, envAllowOffscreen, "menu.allow_offscreen", def.AllowOffscreen)
	a.Traverse = r.boolean("traverse", *traverse, envTraverse, "menu.traverse", def.Traverse)
	a.EdgeMargin = r.integer("edge-margin", *edgeMargin, envEdgeMargin, "menu.edge_margin", def.EdgeMargin)
	a.RowHeight = r.float("row-height", *rowHeight, envRowHeight, "menu.row_height", def.RowHeight)
	a.BorderMargin = r.float("border-margin", *borderMargin, envBorderMargin, "indicator.border_margin", def.BorderMargin)
	a.Bounce.From = r.float("bounce-from", *bounceFrom, envBounceFrom, "indicator.bounce_from", def.Bounce.From)
	a.Bounce.To = r.float("bounce-to", *bounceTo, envBounceTo, "indicator.bounce_to", def.Bounce.To)
	a.IndicatorWidth = r.integer("indicator-width", *indicatorWidth, envIndicatorWidth, "indicator.width", def.IndicatorWidth)
	a.IndicatorHeight = r.integer("indicator-height", *indicatorHeight, envIndicatorHeight, "indicator.height", def.IndicatorHeight)
	a.IndicatorPercent = r.float("indicator-percent", *indicatorPercent, envIndicatorPercent, "indicator.position_percent", def.IndicatorPercent)
	a.Width = r.integer("width", *width, envWidth, "ui.width", def.Width)
	a.Height = r.integer("height", *height, envHeight, "ui.height", def.Height)
	a.ShowFooter = r.boolean("footer", *footer, envShowFooter, "ui.footer", def.ShowFooter)
	a.Print = r.boolean("print", *printID, envPrint, "ui.print", def.Print)
	if err := r.err(); err != nil {
		return Config{}, err
	}

	itemText := r.str("items", *items, envItems, "", "")
	switch {
	case strings.TrimSpace(itemText) != "":
		a.Items = menu.ParseItems(itemText)
	case k != nil && k.Exists("items"):
		var entries []menu.Item
		if err := k.Unmarshal("items", &entries); err != nil {
			return Config{}, fmt.Errorf("config %s: items: %w", usedPath, err)
		}
		a.Items = menu.Normalize(entries)
	}

	if a.Width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	}
	if a.Height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	}

	cfg.App = a
	cfg.Logging = Logging{
		FilePath: r.str("log-file", *logFile, envLogFile, "logging.file", ""),
		Trace:    r.boolean("trace", *trace, envTrace, "logging.trace", false),
	}
	cfg.Flags = map[string]string{
		"config":            usedPath,
		"edges":             joinEdges(a.Edges),
		"allow-offscreen":   strconv.FormatBool(a.AllowOffscreen),
		"traverse":          strconv.FormatBool(a.Traverse),
		"edge-margin":       strconv.Itoa(a.EdgeMargin),
		"row-height":        formatFloat(a.RowHeight),
		"border-margin":     formatFloat(a.BorderMargin),
		"bounce-from":       formatFloat(a.Bounce.From),
		"bounce-to":         formatFloat(a.Bounce.To),
		"indicator-width":   strconv.Itoa(a.IndicatorWidth),
		"indicator-height":  strconv.Itoa(a.IndicatorHeight),
		"indicator-percent": formatFloat(a.IndicatorPercent),
		"items":             strconv.Itoa(len(a.Items)),
		"width":             strconv.Itoa(a.Width),
		"height":            strconv.Itoa(a.Height),
		"footer":            strconv.FormatBool(a.ShowFooter),
		"print":             strconv.FormatBool(a.Print),
		"trace":             strconv.FormatBool(cfg.Logging.Trace),
		"logFile":           cfg.Logging.FilePath,
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// loadFile reads the TOML config. An explicit path must exist; otherwise
// the XDG config location and then ./edgemenu.toml are tried.
func loadFile(path string, explicit bool) (*koanf.Koanf, string, error) {
	if !explicit {
		path = discoverFile()
		if path == "" {
			return nil, "", nil
		}
	}
	path = expandPath(path)
	if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("config file %s: %w", path, err)
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, "", fmt.Errorf("config file %s: %w", path, err)
	}
	return k, path, nil
}

func discoverFile() string {
	if p, err := xdg.SearchConfigFile(configDirName + "/" + configFileName); err == nil {
		return p
	}
	if _, err := os.Stat(localFileName); err == nil {
		return localFileName
	}
	return ""
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

func parseEdges(text string) ([]geometry.EdgeSide, error) {
	var edges []geometry.EdgeSide
	seen := make(map[geometry.EdgeSide]bool)
	for _, part := range strings.Split(text, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		edge, err := geometry.ParseEdgeSide(part)
		if err != nil {
			return nil, err
		}
		if seen[edge] {
			continue
		}
		seen[edge] = true
		edges = append(edges, edge)
	}
	return edges, nil
}

func joinEdges(edges []geometry.EdgeSide) string {
	parts := make([]string, len(edges))
	for i, edge := range edges {
		parts[i] = edge.String()
	}
	return strings.Join(parts, ",")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// resolver picks each setting from the first source that has it. A bad
// environment value falls back to the next source; a bad file value is an
// error because the file is the user's declared configuration.
type resolver struct {
	set  map[string]bool
	env  map[string]string
	file *koanf.Koanf
	errs []error
}

func (r *resolver) fileValue(key string) (string, bool) {
	if r.file == nil || key == "" || !r.file.Exists(key) {
		return "", false
	}
	switch v := r.file.Get(key).(type) {
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, part := range v {
			parts = append(parts, fmt.Sprint(part))
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(v), true
	}
}

func (r *resolver) envValue(key string) (string, bool) {
	v, ok := r.env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (r *resolver) fail(key, value string, err error) {
	r.errs = append(r.errs, fmt.Errorf("config %s = %q: %w", key, value, err))
}

func (r *resolver) str(flagName, flagVal, envKey, fileKey, def string) string {
	if r.set[flagName] {
		return flagVal
	}
	if v, ok := r.envValue(envKey); ok {
		return v
	}
	if v, ok := r.fileValue(fileKey); ok {
		return v
	}
	return def
}

func (r *resolver) boolean(flagName string, flagVal bool, envKey, fileKey string, def bool) bool {
	if r.set[flagName] {
		return flagVal
	}
	if v, ok := r.envValue(envKey); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	if v, ok := r.fileValue(fileKey); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.fail(fileKey, v, err)
			return def
		}
		return b
	}
	return def
}

func (r *resolver) integer(flagName string, flagVal int, envKey, fileKey string, def int) int {
	if r.set[flagName] {
		return flagVal
	}
	if v, ok := r.envValue(envKey); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if v, ok := r.fileValue(fileKey); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			r.fail(fileKey, v, err)
			return def
		}
		return n
	}
	return def
}

func (r *resolver) float(flagName string, flagVal float64, envKey, fileKey string, def float64) float64 {
	if r.set[flagName] {
		return flagVal
	}
	if v, ok := r.envValue(envKey); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	if v, ok := r.fileValue(fileKey); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			r.fail(fileKey, v, err)
			return def
		}
		return f
	}
	return def
}

func (r *resolver) err() error {
	return errors.Join(r.errs...)
}

// UsageError is returned when -h or -help is passed. Usage holds the
// rendered flag defaults.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string { return flag.ErrHelp.Error() }

func (e *UsageError) Unwrap() error { return flag.ErrHelp }

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprint(os.Stdout, usage.Usage)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the interaction geometry is usable.
func Validate(cfg Config) error {
	a := cfg.App
	var errs []error
	if len(a.Edges) == 0 {
		errs = append(errs, errors.New("at least one edge must be enabled"))
	}
	if !geometry.Positive(a.RowHeight) {
		errs = append(errs, fmt.Errorf("row height must be > 0 (got %v)", a.RowHeight))
	}
	if a.IndicatorWidth <= 0 || a.IndicatorHeight <= 0 {
		errs = append(errs, fmt.Errorf("indicator size must be positive (got %dx%d)", a.IndicatorWidth, a.IndicatorHeight))
	}
	if !geometry.Finite(a.IndicatorPercent) || a.IndicatorPercent < 0 || a.IndicatorPercent > 100 {
		errs = append(errs, fmt.Errorf("indicator percent must be within 0-100 (got %v)", a.IndicatorPercent))
	}
	if !geometry.Finite(a.BorderMargin) {
		errs = append(errs, fmt.Errorf("border margin must be finite (got %v)", a.BorderMargin))
	}
	if !geometry.Finite(a.Bounce.From) || !geometry.Finite(a.Bounce.To) {
		errs = append(errs, fmt.Errorf("bounce offsets must be finite (got %v, %v)", a.Bounce.From, a.Bounce.To))
	}
	if a.EdgeMargin < 1 {
		errs = append(errs, fmt.Errorf("edge margin must be >= 1 (got %d)", a.EdgeMargin))
	}
	if len(a.Items) == 0 {
		errs = append(errs, errors.New("menu has no items"))
	}
	return errors.Join(errs...)
}
