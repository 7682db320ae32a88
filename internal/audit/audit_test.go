package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Baaaki/sportclub/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) (*Log, string) {
	logger.Init(false)
	path := filepath.Join(t.TempDir(), "audit.log")
	log, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log, path
}

func TestRecordAndReadAll(t *testing.T) {
	log, _ := openTestLog(t)

	require.NoError(t, log.Record(1, ActionApprove, 7, "approved player account"))
	require.NoError(t, log.Record(1, ActionDeleteAccount, 7, ""))

	entries, err := log.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, ActionApprove, entries[0].Action)
	assert.Equal(t, uint(1), entries[0].ActorID)
	assert.Equal(t, uint(7), entries[0].TargetID)
	assert.Equal(t, "approved player account", entries[0].Detail)
	assert.NotEmpty(t, entries[0].EntryID)
	assert.False(t, entries[0].Timestamp.IsZero())

	assert.Equal(t, ActionDeleteAccount, entries[1].Action)
	assert.NotEqual(t, entries[0].EntryID, entries[1].EntryID)
}

func TestReadAllEmptyLog(t *testing.T) {
	log, _ := openTestLog(t)

	entries, err := log.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadAllSkipsCorruptLines(t *testing.T) {
	log, path := openTestLog(t)

	require.NoError(t, log.Record(1, ActionReject, 3, ""))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, log.Record(1, ActionApprove, 4, ""))

	entries, err := log.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionReject, entries[0].Action)
	assert.Equal(t, ActionApprove, entries[1].Action)
}

func TestEntriesSurviveReopen(t *testing.T) {
	logger.Init(false)
	path := filepath.Join(t.TempDir(), "audit.log")

	log, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, log.Record(2, ActionApprove, 9, ""))
	require.NoError(t, log.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, reopened.Record(2, ActionReject, 10, ""))

	entries, err := reopened.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(9), entries[0].TargetID)
	assert.Equal(t, uint(10), entries[1].TargetID)
}
