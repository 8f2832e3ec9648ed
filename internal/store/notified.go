package store

import (
	"log"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// NotifiedKey holds the JSON array of achievement ids whose banner was shown.
const NotifiedKey = "notifiedAchievements"

// Backend is the key-value storage behind Notified.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Notified is the set of announced achievement ids. Membership is kept in
// memory and written through to the backend on every addition.
type Notified struct {
	backend Backend
	raw     string
	ids     map[string]bool
}

// LoadNotified reads the announced set. A missing or malformed value starts empty.
func LoadNotified(backend Backend) (*Notified, error) {
	if backend == nil {
		return nil, errors.New("load notified: backend is nil")
	}
	raw, ok, err := backend.Get(NotifiedKey)
	if err != nil {
		return nil, errors.Wrap(err, "load notified")
	}

	n := &Notified{backend: backend, raw: "[]", ids: make(map[string]bool)}
	if !ok {
		return n, nil
	}
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
		log.Printf("store: ignoring malformed %s value %q", NotifiedKey, raw)
		return n, nil
	}

	n.raw = raw
	gjson.Parse(raw).ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			n.ids[v.String()] = true
		}
		return true
	})
	return n, nil
}

// Contains reports whether id was already announced.
func (n *Notified) Contains(id string) bool { return n.ids[id] }

// Add records id as announced. A failed write is logged and the id stays
// announced for the rest of the session.
func (n *Notified) Add(id string) {
	if n.ids[id] {
		return
	}
	n.ids[id] = true

	raw, err := sjson.Set(n.raw, "-1", id)
	if err != nil {
		log.Printf("store: append %s to %s: %v", id, NotifiedKey, err)
		return
	}
	n.raw = raw
	if err := n.backend.Set(NotifiedKey, raw); err != nil {
		log.Printf("store: persist %s: %v", NotifiedKey, err)
	}
}

// IDs returns the announced ids in the order they were stored.
func (n *Notified) IDs() []string {
	var out []string
	for _, v := range gjson.Parse(n.raw).Array() {
		if v.Type == gjson.String {
			out = append(out, v.String())
		}
	}
	return out
}

// Memory is a Backend that never touches disk.
type Memory map[string]string

// Get implements Backend.
func (m Memory) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

// Set implements Backend.
func (m Memory) Set(key, value string) error {
	m[key] = value
	return nil
}
