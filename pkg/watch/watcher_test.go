package watch_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/geyuegui/RIDE/pkg/testutil"
	"github.com/geyuegui/RIDE/pkg/watch"
)

type recordingInvalidator struct {
	mu          sync.Mutex
	invalidated []string
	resets      int
}

func (r *recordingInvalidator) Invalidate(source string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, source)
}

func (r *recordingInvalidator) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
}

func (r *recordingInvalidator) sawInvalidate(source string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.invalidated {
		if s == source {
			return true
		}
	}
	return false
}

func (r *recordingInvalidator) sawReset() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resets > 0
}

func TestWatcherInvalidatesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := testutil.MustWriteFile(t, dir, "suite.robot", "*** Keywords ***\n")

	target := &recordingInvalidator{}
	w, err := watch.NewWatcher(target, watch.WithLogger(testutil.TestLogger(t)))
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(dir))

	require.NoError(t, os.WriteFile(path, []byte("*** Keywords ***\nNew Kw\n"), 0o644))

	require.Eventually(t, func() bool {
		return target.sawInvalidate(path)
	}, 5*time.Second, 10*time.Millisecond, "write must invalidate the changed file")
}

func TestWatcherResetsOnRemove(t *testing.T) {
	dir := t.TempDir()
	path := testutil.MustWriteFile(t, dir, "res.robot", "x")

	target := &recordingInvalidator{}
	w, err := watch.NewWatcher(target, watch.WithLogger(testutil.TestLogger(t)))
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(dir))

	require.NoError(t, os.Remove(path))

	require.Eventually(t, func() bool {
		return target.sawReset()
	}, 5*time.Second, 10*time.Millisecond, "remove must reset cached state")
}
