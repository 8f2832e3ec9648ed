package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, ok, err := kv.Get("missing"); ok || err != nil {
		t.Errorf("missing key: ok=%v err=%v", ok, err)
	}
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set("a", "2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := kv.Set("", "x"); err == nil {
		t.Error("expected error for empty key")
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, _, err := kv.Get("a"); err == nil {
		t.Error("expected error after close")
	}

	// reopening runs the migration again and keeps the data
	kv, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()
	v, ok, err := kv.Get("a")
	if err != nil || !ok || v != "2" {
		t.Errorf("expected persisted 2, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestOpenSQLiteEmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestNotifiedPersistsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	n, err := LoadNotified(kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n.Contains("first-discovery") || len(n.IDs()) != 0 {
		t.Fatal("fresh store should be empty")
	}
	n.Add("first-discovery")
	n.Add("frontend-master")
	n.Add("first-discovery")
	kv.Close()

	kv, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer kv.Close()

	raw, _, _ := kv.Get(NotifiedKey)
	if raw != `["first-discovery","frontend-master"]` {
		t.Errorf("unexpected stored value %s", raw)
	}
	n, err = LoadNotified(kv)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !n.Contains("frontend-master") {
		t.Error("expected frontend-master after reload")
	}
	if got := n.IDs(); !reflect.DeepEqual(got, []string{"first-discovery", "frontend-master"}) {
		t.Errorf("ids: %v", got)
	}
}

func TestLoadNotifiedMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":   `{{nope`,
		"not array":  `{"a":1}`,
		"mixed type": `["ok", 3, null]`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			mem := Memory{NotifiedKey: raw}
			n, err := LoadNotified(mem)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			n.Add("first-discovery")
			if !n.Contains("first-discovery") {
				t.Error("add should be visible immediately")
			}
		})
	}

	n, _ := LoadNotified(Memory{NotifiedKey: `["ok", 3, null]`})
	if got := n.IDs(); !reflect.DeepEqual(got, []string{"ok"}) {
		t.Errorf("non-string entries should be skipped, got %v", got)
	}
}

type failingBackend struct{ Memory }

func (failingBackend) Set(string, string) error { return errors.New("disk full") }

func TestNotifiedWriteFailureSwallowed(t *testing.T) {
	n, err := LoadNotified(failingBackend{Memory{}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	n.Add("backend-master")
	if !n.Contains("backend-master") {
		t.Error("id should stay announced for the session")
	}
	if _, err := LoadNotified(nil); err == nil {
		t.Error("expected error for nil backend")
	}
}
