package combine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func collectPaths(t *testing.T, root string, exclude []string) []string {
	t.Helper()
	tasks, err := CollectTasks(Walk(root, exclude, zap.NewNop()))
	require.NoError(t, err)
	var rels []string
	for i, task := range tasks {
		assert.Equal(t, i, task.Index)
		assert.True(t, filepath.IsAbs(task.Path), task.Path)
		rels = append(rels, relativePath(root, task.Path))
	}
	return rels
}

func TestWalk_YieldsFilesDepthFirst(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.js":         "a",
		"sub/b.js":     "b",
		"sub/deep/c.c": "c",
		"z.txt":        "z",
	})
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0o755))

	got := collectPaths(t, root, nil)
	assert.Equal(t, []string{"a.js", "sub/b.js", "sub/deep/c.c", "z.txt"}, got)
}

func TestWalk_SkipsExcludedSubtreesAndFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.js":             "k",
		"secret/token.txt":    "t",
		"src/secret.json":     "{}",
		"src/app.js":          "a",
		"node_modules/x/y.js": "y",
	})

	got := collectPaths(t, root, []string{"secret", "node_modules"})
	assert.Equal(t, []string{"keep.js", "src/app.js"}, got)
	for _, p := range got {
		assert.False(t, strings.Contains(p, "secret"))
	}
}

func TestWalk_IgnoresEmptyExclusion(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.js": "a"})

	assert.Equal(t, []string{"a.js"}, collectPaths(t, root, []string{""}))
}

func TestWalk_MissingRootIsTraversalError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := CollectTasks(Walk(missing, nil, zap.NewNop()))
	require.Error(t, err)

	var terr *TraversalError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, missing, terr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWalk_FileRootIsTraversalError(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.js": "a"})

	_, err := CollectTasks(Walk(filepath.Join(root, "a.js"), nil, zap.NewNop()))
	var terr *TraversalError
	assert.True(t, errors.As(err, &terr))
}

func TestWalk_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.js": "a", "b/c.js": "c", "d.js": "d"})

	var seen []string
	for path, err := range Walk(root, nil, zap.NewNop()) {
		require.NoError(t, err)
		seen = append(seen, path)
		if len(seen) == 2 {
			break
		}
	}
	assert.Len(t, seen, 2)
}

func TestWalk_LogsExcludedEntries(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"keep.js":      "k",
		"secret/x.js":  "x",
		"notes.secret": "n",
	})

	core, logs := observer.New(zapcore.DebugLevel)
	tasks, err := CollectTasks(Walk(root, []string{"secret"}, zap.New(core)))
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	dirLogs := logs.FilterMessage("Skipping ignored directory during traversal").All()
	require.Len(t, dirLogs, 1)
	assert.Equal(t, filepath.Join(root, "secret"), dirLogs[0].ContextMap()["path"])
	assert.Equal(t, "secret", dirLogs[0].ContextMap()["exclusion"])

	fileLogs := logs.FilterMessage("Skipping ignored file during traversal").All()
	require.Len(t, fileLogs, 1)
	assert.Equal(t, filepath.Join(root, "notes.secret"), fileLogs[0].ContextMap()["path"])

	assert.Zero(t, logs.FilterField(zap.String("path", filepath.Join(root, "secret", "x.js"))).Len())
}

func TestWalk_UnreadableSubdirectoryFailsWholeWalk(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.js":     "a",
		"sub/b.js": "b",
		"z.js":     "z",
	})
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Chmod(sub, 0o000))
	t.Cleanup(func() { _ = os.Chmod(sub, 0o755) })

	core, logs := observer.New(zapcore.DebugLevel)
	var yielded []string
	var walkErr error
	for path, err := range Walk(root, nil, zap.New(core)) {
		if err != nil {
			walkErr = err
			break
		}
		yielded = append(yielded, path)
	}
	assert.Equal(t, []string{filepath.Join(root, "a.js")}, yielded)

	var terr *TraversalError
	require.True(t, errors.As(walkErr, &terr))
	assert.Equal(t, sub, terr.Path)
	assert.Equal(t, 1, logs.FilterMessage("Failed to read directory during traversal").Len())

	tasks, err := CollectTasks(Walk(root, nil, nil))
	assert.Nil(t, tasks)
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, sub, terr.Path)
}
