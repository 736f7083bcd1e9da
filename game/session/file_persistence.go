package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/puzzle/state"
)

// PresetSource resolves preset IDs when restoring persisted sessions.
// *config.Manager satisfies it.
type PresetSource interface {
	LoadPreset(name string) (*config.Preset, error)
	GetDefault() *config.Preset
}

// FilePersistence implements SessionPersistence using file system storage
type FilePersistence struct {
	sessionsDir string
	presets     PresetSource
}

// NewFilePersistence creates a new file-based session persistence layer
func NewFilePersistence(sessionsDir string, presets PresetSource) (*FilePersistence, error) {
	// Create sessions directory if it doesn't exist
	if err := os.MkdirAll(sessionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	return &FilePersistence{
		sessionsDir: sessionsDir,
		presets:     presets,
	}, nil
}

// Save persists a session to a JSON file
func (fp *FilePersistence) Save(session *Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	board, moves, version := session.Snapshot()
	data := PersistedSessionData{
		ID:             session.ID,
		PresetID:       session.PresetID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessed(),
		GridSize:       board.Size(),
		Cells:          board.Cells(),
		Moves:          moves,
		Version:        version,
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	filePath := fp.getFilePath(session.ID)
	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Load retrieves a session from a JSON file
func (fp *FilePersistence) Load(id string) (*Session, error) {
	filePath := fp.getFilePath(id)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, ErrSessionNotFound
	}

	jsonData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var data PersistedSessionData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	// Resolve the preset; sessions persisted before a preset file was
	// deleted fall back to the default.
	preset, err := fp.presets.LoadPreset(data.PresetID)
	if err != nil {
		preset = fp.presets.GetDefault()
	}

	board, err := state.NewFromCells(data.GridSize, data.Cells)
	if err != nil {
		return nil, fmt.Errorf("failed to restore board: %w", err)
	}

	session := newSession(data.ID, data.PresetID, preset, board)
	session.CreatedAt = data.CreatedAt
	session.setLastAccessed(data.LastAccessedAt)
	session.moves = data.Moves
	session.version = data.Version

	return session, nil
}

// Delete removes a session file
func (fp *FilePersistence) Delete(id string) error {
	filePath := fp.getFilePath(id)

	if !fp.Exists(id) {
		return ErrSessionNotFound
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}

// ListAll returns all persisted session IDs
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var sessionIDs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			sessionIDs = append(sessionIDs, strings.TrimSuffix(name, ".json"))
		}
	}

	return sessionIDs, nil
}

// Exists checks if a session file exists
func (fp *FilePersistence) Exists(id string) bool {
	filePath := fp.getFilePath(id)
	_, err := os.Stat(filePath)
	return err == nil
}

// getFilePath returns the full file path for a session ID
func (fp *FilePersistence) getFilePath(id string) string {
	return filepath.Join(fp.sessionsDir, fmt.Sprintf("%s.json", id))
}
