package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tilelabs/slider/puzzle/heuristic"
	"github.com/tilelabs/slider/puzzle/shuffle"
	"github.com/tilelabs/slider/puzzle/state"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Preset bundles the knobs for one puzzle configuration.
type Preset struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	GridSize      int    `json:"grid_size"`
	Difficulty    string `json:"difficulty"`
	Heuristic     string `json:"heuristic"`
	MaxIterations int    `json:"max_iterations,omitempty"`
}

// Validate checks every preset field against the ranges the puzzle core
// accepts. A zero MaxIterations means the solver default.
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}
	if p.GridSize < state.MinSize || p.GridSize > state.MaxSize {
		return fmt.Errorf("%w: grid_size %d outside [%d, %d]",
			ErrInvalidPreset, p.GridSize, state.MinSize, state.MaxSize)
	}
	if _, err := shuffle.Parse(p.Difficulty); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}
	if _, err := heuristic.Parse(p.Heuristic); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}
	if p.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations must not be negative", ErrInvalidPreset)
	}
	return nil
}

// PresetInfo summarizes a preset file for listings.
type PresetInfo struct {
	Filename    string `json:"filename"`
	PresetID    string `json:"preset_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	GridSize    int    `json:"grid_size"`
	Difficulty  string `json:"difficulty"`
	Heuristic   string `json:"heuristic"`
}

// Manager handles preset loading and caching
type Manager struct {
	presetDir     string
	defaultPreset *Preset
	presets       map[string]*Preset
	mu            sync.RWMutex
}

// NewManager creates a new preset manager over presetDir
func NewManager(presetDir string) (*Manager, error) {
	if _, err := os.Stat(presetDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("preset directory does not exist: %s", presetDir)
	}

	m := &Manager{
		presetDir: presetDir,
		presets:   make(map[string]*Preset),
	}

	if err := m.loadDefaultPreset(); err != nil {
		return nil, fmt.Errorf("failed to load default preset: %w", err)
	}

	return m, nil
}

// LoadPreset loads a preset by name
func (m *Manager) LoadPreset(name string) (*Preset, error) {
	m.mu.RLock()
	// Check cache first
	if preset, exists := m.presets[name]; exists {
		m.mu.RUnlock()
		return preset, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if preset, exists := m.presets[name]; exists {
		return preset, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	presetPath := filepath.Join(m.presetDir, filename)

	data, err := os.ReadFile(presetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}

	if err := preset.Validate(); err != nil {
		return nil, err
	}

	// Cache the preset
	m.presets[name] = &preset
	return &preset, nil
}

// ListPresets returns information about all available presets
func (m *Manager) ListPresets() ([]*PresetInfo, error) {
	entries, err := os.ReadDir(m.presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}

	var infos []*PresetInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		preset, err := m.LoadPreset(name)
		if err != nil {
			// Skip invalid presets
			continue
		}

		infos = append(infos, &PresetInfo{
			Filename:    entry.Name(),
			PresetID:    name, // identifier to use for session creation
			Name:        preset.Name,
			Description: preset.Description,
			GridSize:    preset.GridSize,
			Difficulty:  preset.Difficulty,
			Heuristic:   preset.Heuristic,
		})
	}

	return infos, nil
}

// GetDefault returns the default preset
func (m *Manager) GetDefault() *Preset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultPreset
}

// SetDefault sets the default preset by name
func (m *Manager) SetDefault(name string) error {
	preset, err := m.LoadPreset(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultPreset = preset
	return nil
}

// RefreshCache reloads all cached presets from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.presets = make(map[string]*Preset)
	m.mu.Unlock()

	return m.loadDefaultPreset()
}

// loadDefaultPreset loads the default preset. Must be called without m.mu
// held; it re-enters LoadPreset.
func (m *Manager) loadDefaultPreset() error {
	// Try classic.json first
	preset, err := m.LoadPreset("classic")
	if err != nil {
		preset = DefaultPreset()
		if infos, listErr := m.ListPresets(); listErr == nil && len(infos) > 0 {
			// Fall back to the first available preset
			if p, loadErr := m.LoadPreset(strings.TrimSuffix(infos[0].Filename, ".json")); loadErr == nil {
				preset = p
			}
		}
	}

	m.mu.Lock()
	m.defaultPreset = preset
	m.mu.Unlock()
	return nil
}

// SavePreset saves a preset to disk
func (m *Manager) SavePreset(name string, preset *Preset) error {
	if err := preset.Validate(); err != nil {
		return err
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	presetPath := filepath.Join(m.presetDir, filename)

	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	if err := os.WriteFile(presetPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}

	m.mu.Lock()
	m.presets[name] = preset
	m.mu.Unlock()

	return nil
}

// DefaultPreset is the built-in fallback used when no preset files exist.
func DefaultPreset() *Preset {
	return &Preset{
		Name:        "classic",
		Description: "Classic 4x4 fifteen puzzle",
		GridSize:    4,
		Difficulty:  string(shuffle.Medium),
		Heuristic:   string(heuristic.LinearConflict),
	}
}
