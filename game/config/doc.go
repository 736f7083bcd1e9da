// Package config provides puzzle preset management.
//
// The config package handles:
//   - Loading puzzle presets from JSON files
//   - Preset validation
//   - Default preset management
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets are stored as JSON files in the presets directory. Each preset
// defines:
//   - Grid size (3 to 15)
//   - Shuffle difficulty (easy, medium, hard)
//   - Solver heuristic (manhattan, linear_conflict, enhanced)
//   - Optional solver iteration budget
//
// Usage:
//
//	manager, err := config.NewManager("presets")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific preset
//	preset, err := manager.LoadPreset("classic")
//
//	// Get the default preset
//	preset = manager.GetDefault()
//
//	// List available presets
//	infos, err := manager.ListPresets()
//
// Validation:
//
// All presets are validated at load time: grid size range, known difficulty
// and heuristic names, and a non-negative iteration budget. Invalid files
// are skipped by listings and rejected by LoadPreset.
package config
