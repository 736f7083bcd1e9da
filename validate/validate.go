// Command validate provides a small CLI that validates puzzle preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid size bounds
//   - Difficulty and heuristic names
//   - Solver iteration budget sanity
//   - A shuffle dry run: each preset can produce a solvable scramble
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/puzzle/shuffle"
	"github.com/tilelabs/slider/puzzle/state"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset JSON file.
// It performs structural checks and then a dry-run shuffle to prove the
// preset yields a solvable board.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var preset config.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := preset.Validate(); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Dry run: shuffle a fresh board at the preset's difficulty and make
	// sure the result is solvable.
	board, err := state.New(preset.GridSize)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot build board: %v", err))
		return result
	}

	difficulty, err := shuffle.Parse(preset.Difficulty)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	shuffler := shuffle.New(1)
	score, err := shuffler.Shuffle(board, difficulty)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Shuffle dry run failed: %v", err))
		return result
	}

	if !board.Solvable() {
		result.Valid = false
		result.Errors = append(result.Errors, "Shuffle dry run produced an unsolvable board")
		return result
	}

	// Add informational data
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", preset.Name))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", preset.GridSize, preset.GridSize))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Difficulty: %s", preset.Difficulty))
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Heuristic: %s", preset.Heuristic))
	if preset.MaxIterations > 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Iteration budget: %d", preset.MaxIterations))
	} else {
		result.Errors = append(result.Errors, "✓ Iteration budget: solver default")
	}
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Shuffle dry run: scramble estimate %d, solvable", score))

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	presetDir := "../configs"
	files, err := filepath.Glob(filepath.Join(presetDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding preset files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validatePreset(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All presets are valid!")
	} else {
		fmt.Println("❌ Some presets have errors")
		os.Exit(1)
	}
}
