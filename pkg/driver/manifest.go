package driver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"kaynat/interpreter-go/pkg/gui"
	"kaynat/interpreter-go/pkg/interpreter"
	"kaynat/interpreter-go/pkg/stdlib"
)

// ManifestName is the project file looked up by FindManifest.
const ManifestName = "kaynat.yml"

// Manifest represents the parsed contents of kaynat.yml.
type Manifest struct {
	Path     string
	Name     string
	Entry    string
	LogLevel string
	REPL     REPLSettings
	GUI      gui.Defaults
	Disabled []string
}

// REPLSettings configures the interactive shell.
type REPLSettings struct {
	HistoryFile string
	Prompt      string
}

// DefaultPrompt is used when the manifest does not name one.
const DefaultPrompt = ">>> "

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type manifestFile struct {
	Name     string     `yaml:"name"`
	Entry    string     `yaml:"entry"`
	LogLevel string     `yaml:"log_level"`
	REPL     replFile   `yaml:"repl"`
	GUI      guiFile    `yaml:"gui"`
	Stdlib   stdlibFile `yaml:"stdlib"`
}

type replFile struct {
	HistoryFile string `yaml:"history_file"`
	Prompt      string `yaml:"prompt"`
}

type guiFile struct {
	DefaultWidth      *int   `yaml:"default_width"`
	DefaultHeight     *int   `yaml:"default_height"`
	DefaultBackground string `yaml:"default_background"`
}

type stdlibFile struct {
	Disable []string `yaml:"disable"`
}

// LoadManifest parses kaynat.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest, issues := raw.toManifest(absPath)
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return manifest, nil
}

func (raw manifestFile) toManifest(path string) (*Manifest, []string) {
	var issues []string
	m := &Manifest{
		Path:     path,
		Name:     strings.TrimSpace(raw.Name),
		Entry:    strings.TrimSpace(raw.Entry),
		LogLevel: strings.ToLower(strings.TrimSpace(raw.LogLevel)),
		REPL: REPLSettings{
			HistoryFile: strings.TrimSpace(raw.REPL.HistoryFile),
			Prompt:      raw.REPL.Prompt,
		},
		GUI: gui.DefaultWindow,
	}
	if m.REPL.Prompt == "" {
		m.REPL.Prompt = DefaultPrompt
	}
	if m.Entry != "" && filepath.Ext(m.Entry) != ".kn" {
		issues = append(issues, fmt.Sprintf("entry %q must be a .kn file", m.Entry))
	}
	if m.LogLevel != "" {
		if _, err := ParseLogLevel(m.LogLevel); err != nil {
			issues = append(issues, err.Error())
		}
	}
	if w := raw.GUI.DefaultWidth; w != nil {
		if *w <= 0 {
			issues = append(issues, fmt.Sprintf("gui.default_width must be positive, got %d", *w))
		}
		m.GUI.Width = *w
	}
	if h := raw.GUI.DefaultHeight; h != nil {
		if *h <= 0 {
			issues = append(issues, fmt.Sprintf("gui.default_height must be positive, got %d", *h))
		}
		m.GUI.Height = *h
	}
	if bg := strings.TrimSpace(raw.GUI.DefaultBackground); bg != "" {
		m.GUI.Background = bg
	}

	known := make(map[string]bool)
	for _, g := range stdlib.Groups() {
		known[g] = true
	}
	for i, g := range raw.Stdlib.Disable {
		g = strings.ToLower(strings.TrimSpace(g))
		if !known[g] {
			issues = append(issues, fmt.Sprintf("stdlib.disable[%d]: unknown group %q", i, g))
			continue
		}
		m.Disabled = append(m.Disabled, g)
	}
	return m, issues
}

// FindManifest walks up from dir looking for kaynat.yml. It returns an empty
// path and no error when none exists.
func FindManifest(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("manifest: resolve %s: %w", dir, err)
	}
	for {
		candidate := filepath.Join(current, ManifestName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("manifest: stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

// EntryPath resolves the entry script relative to the manifest directory.
func (m *Manifest) EntryPath() string {
	if m == nil || m.Entry == "" {
		return ""
	}
	if filepath.IsAbs(m.Entry) {
		return m.Entry
	}
	return filepath.Join(filepath.Dir(m.Path), m.Entry)
}

// HistoryPath resolves the REPL history file relative to the manifest
// directory.
func (m *Manifest) HistoryPath() string {
	if m == nil || m.REPL.HistoryFile == "" {
		return ""
	}
	if filepath.IsAbs(m.REPL.HistoryFile) {
		return m.REPL.HistoryFile
	}
	return filepath.Join(filepath.Dir(m.Path), m.REPL.HistoryFile)
}

// InterpreterOptions translates the manifest into interpreter options. A nil
// manifest yields none.
func (m *Manifest) InterpreterOptions() []interpreter.Option {
	if m == nil {
		return nil
	}
	opts := []interpreter.Option{interpreter.WithGuiDefaults(m.GUI)}
	if len(m.Disabled) > 0 {
		opts = append(opts, interpreter.WithStdlib(stdlib.WithDisabled(m.Disabled...)))
	}
	return opts
}

// ParseLogLevel maps debug|info|warn|error to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log_level %q must be one of debug, info, warn, error", level)
}
