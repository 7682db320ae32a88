package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Baaaki/sportclub/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Action names recorded for admin mutations.
const (
	ActionApprove       = "approve"
	ActionReject        = "reject"
	ActionDeleteAccount = "delete_account"
)

// Entry is one admin action in the audit trail.
type Entry struct {
	EntryID   string    `json:"entry_id"`
	ActorID   uint      `json:"actor_id"`
	Action    string    `json:"action"`
	TargetID  uint      `json:"target_id"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Log is an append-only JSON-lines file of admin actions. Every entry is
// synced to disk before Record returns.
type Log struct {
	filePath string
	file     *os.File
	mu       sync.Mutex
}

// Open creates the audit log file (and its directory) if needed and opens it
// for appending.
func Open(filePath string) (*Log, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	return &Log{
		filePath: filePath,
		file:     file,
	}, nil
}

// Record appends an admin action and syncs it to disk.
func (l *Log) Record(actorID uint, action string, targetID uint, detail string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		EntryID:   uuid.New().String(),
		ActorID:   actorID,
		Action:    action,
		TargetID:  targetID,
		Detail:    detail,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logger.Log.Error("audit: failed to marshal entry",
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}

	if _, err := l.file.WriteString(string(data) + "\n"); err != nil {
		logger.Log.Error("audit: failed to write entry",
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}

	if err := l.file.Sync(); err != nil {
		logger.Log.Error("audit: failed to sync entry",
			zap.String("action", action),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Debug("audit: entry recorded",
		zap.String("entry_id", entry.EntryID),
		zap.String("action", action),
		zap.Uint("actor_id", actorID),
		zap.Uint("target_id", targetID),
	)

	return nil
}

// ReadAll returns every entry in the log, oldest first.
func (l *Log) ReadAll() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			logger.Log.Warn("audit: skipping corrupt entry", zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Close closes the underlying file.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}
