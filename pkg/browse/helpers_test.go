package browse

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/filetug/allocfs/pkg/allocfs"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

var errRemote = errors.New("remote: 500 Internal Server Error")

type fakeClient struct {
	dirs       map[string][]allocfs.AllocFileInfo
	contents   map[string]string
	listErrs   map[string]error
	readErrs   map[string]error
	listCalls  []string
	readCalls  []string
	readLimits []int64
}

func newFakeClient() *fakeClient {
	modTime := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &fakeClient{
		dirs: map[string][]allocfs.AllocFileInfo{
			"/": {
				{Name: "web", IsDir: true, FileMode: "drwxrwxrwx", ModTime: modTime},
				{Name: "alloc", IsDir: true, FileMode: "drwxrwxrwx", ModTime: modTime},
			},
			"/web": {
				{Name: "run.exe", Size: 10, FileMode: "-rwxr-xr-x", ModTime: modTime},
				{Name: "local", IsDir: true, FileMode: "drwxrwxrwx", ModTime: modTime},
				{Name: "app.config.yaml", Size: 10, FileMode: "-rw-r--r--", ModTime: modTime},
				{Name: "secrets", IsDir: true, FileMode: "drwx------", ModTime: modTime},
			},
			"/web/local": {
				{Name: "nginx.conf", Size: 20, FileMode: "-rw-r--r--", ModTime: modTime},
			},
			"/web/secrets": {},
			"/x":           {{Name: "from-x.txt", Size: 1, FileMode: "-rw-r--r--"}},
			"/y":           {{Name: "from-y.txt", Size: 1, FileMode: "-rw-r--r--"}},
		},
		contents: map[string]string{
			"/web/app.config.yaml":  "port: 8080",
			"/web/local/nginx.conf": "server {}",
		},
		listErrs: map[string]error{},
		readErrs: map[string]error{},
	}
}

func (f *fakeClient) ListDirectory(_ context.Context, allocID, path string) ([]allocfs.AllocFileInfo, error) {
	f.listCalls = append(f.listCalls, allocID+":"+path)
	if err := f.listErrs[path]; err != nil {
		return nil, err
	}
	entries, ok := f.dirs[path]
	if !ok {
		return nil, errors.New("no such file or directory")
	}
	return append([]allocfs.AllocFileInfo(nil), entries...), nil
}

func (f *fakeClient) ReadFileContent(_ context.Context, allocID, path string, limit int64) (string, error) {
	f.readCalls = append(f.readCalls, allocID+":"+path)
	f.readLimits = append(f.readLimits, limit)
	if err := f.readErrs[path]; err != nil {
		return "", err
	}
	content, ok := f.contents[path]
	if !ok {
		return "", errors.New("no such file or directory")
	}
	if limit > 0 && int64(len(content)) > limit {
		content = content[:limit]
	}
	return content, nil
}

// eventLoop collects queued completions so tests decide the order in which
// responses "arrive".
type eventLoop struct {
	pending []func()
}

func (l *eventLoop) queueUpdate(f func()) {
	l.pending = append(l.pending, f)
}

func (l *eventLoop) runAll() {
	for len(l.pending) > 0 {
		l.run(0)
	}
}

func (l *eventLoop) run(i int) {
	f := l.pending[i]
	l.pending = append(l.pending[:i], l.pending[i+1:]...)
	f()
}

func newTestController(t *testing.T, client allocfs.Client, o ...Option) (*Controller, *eventLoop, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	loop := &eventLoop{}
	options := []Option{
		WithGo(func(f func()) { f() }),
		WithLogger(logger),
	}
	ctrl := NewController(client, loop.queueUpdate, append(options, o...)...)
	return ctrl, loop, hook
}

func entryNames(state State) []string {
	if state.Listing == nil {
		return nil
	}
	names := make([]string, len(state.Listing.Entries))
	for i, e := range state.Listing.Entries {
		names[i] = e.Name
	}
	return names
}

func hasLogMessage(hook *logtest.Hook, message string) bool {
	for _, entry := range hook.AllEntries() {
		if entry.Message == message {
			return true
		}
	}
	return false
}
