package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempPreset(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_preset_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}
	tmpfile.Close()

	return tmpfile.Name()
}

func TestValidatePreset_ValidPreset(t *testing.T) {
	validPreset := `{
		"name": "Test Preset",
		"description": "Test preset",
		"grid_size": 3,
		"difficulty": "easy",
		"heuristic": "manhattan",
		"max_iterations": 0
	}`

	path := writeTempPreset(t, validPreset)

	result := validatePreset(path)
	if !result.Valid {
		t.Errorf("Expected valid preset, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}

	found := false
	for _, info := range result.Errors {
		if contains(info, "Shuffle dry run") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected shuffle dry run info in result")
	}
}

func TestValidatePreset_InvalidJSON(t *testing.T) {
	path := writeTempPreset(t, `{"name": "test", invalid json}`)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to bad JSON")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Invalid JSON") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidatePreset_MissingFile(t *testing.T) {
	result := validatePreset("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Failed to read file") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidatePreset_GridTooSmall(t *testing.T) {
	preset := `{
		"name": "Tiny",
		"description": "Grid below the minimum",
		"grid_size": 2,
		"difficulty": "easy",
		"heuristic": "manhattan"
	}`

	path := writeTempPreset(t, preset)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to tiny grid")
	}
}

func TestValidatePreset_UnknownDifficulty(t *testing.T) {
	preset := `{
		"name": "Bad Difficulty",
		"description": "Unrecognized difficulty name",
		"grid_size": 4,
		"difficulty": "nightmare",
		"heuristic": "manhattan"
	}`

	path := writeTempPreset(t, preset)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to unknown difficulty")
	}
}

func TestValidatePreset_UnknownHeuristic(t *testing.T) {
	preset := `{
		"name": "Bad Heuristic",
		"description": "Unrecognized heuristic name",
		"grid_size": 4,
		"difficulty": "medium",
		"heuristic": "psychic"
	}`

	path := writeTempPreset(t, preset)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to unknown heuristic")
	}
}

func TestValidatePreset_MissingName(t *testing.T) {
	preset := `{
		"description": "No name field",
		"grid_size": 4,
		"difficulty": "medium",
		"heuristic": "manhattan"
	}`

	path := writeTempPreset(t, preset)

	result := validatePreset(path)
	if result.Valid {
		t.Error("Expected invalid preset due to missing name")
	}
}

// Helper function to check if a string contains a substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
