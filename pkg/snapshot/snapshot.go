package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	mu        sync.Mutex
	callCount = make(map[string]int)
)

// ValidateSnapshot compares obj, encoded as indented JSON, with the snapshot in
// testdata/<test name>-<call>.json. A missing snapshot is written and the check passes.
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	filename := nextFilename(t.Name())

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			create(t, filename, objJSON)
			return
		}

		t.Fatalf("could not read snapshot: %v", err)
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
	}
}

func nextFilename(testName string) string {
	mu.Lock()
	defer mu.Unlock()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)
	call := callCount[name]
	callCount[name] = call + 1

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func create(t *testing.T, filename string, objJSON []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(objJSON, '\n'), 0644); err != nil {
		t.Fatalf("could not write snapshot: %v", err)
	}
}
