package integrity

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Entry is one asset's record in the integrity map file.
type Entry struct {
	AbsPath   string `json:"abs_path"`
	Integrity string `json:"integrity"`
	Static    string `json:"static"`
}

// Map accumulates integrity entries across one build, keyed by a
// normalized integrity key derived from the source path.
type Map struct {
	entries map[string]Entry
}

// NewMap returns an empty integrity map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Entry)}
}

// NormalizeKey derives an integrity-map key from compressedFile (the
// `.comp`-stripped source path), mirroring the original pipeline: strip
// the configured removal prefix, lowercase, and replace path/extension
// separators with underscores so the key is usable as a template
// placeholder (`{{key.integrity}}`).
func NormalizeKey(compressedFile, removalPrefix string) string {
	key := strings.Replace(compressedFile, removalPrefix, "", 1)
	key = strings.ToLower(key)
	for _, pair := range [][2]string{{"/", "_"}, {"-", "_"}, {".", "_"}} {
		key = strings.ReplaceAll(key, pair[0], pair[1])
	}
	return key
}

// Add records one entry under key, overwriting any existing entry
// with the same key.
func (m *Map) Add(key string, entry Entry) {
	m.entries[key] = entry
}

// Get returns the entry for key, if any.
func (m *Map) Get(key string) (Entry, bool) {
	e, ok := m.entries[key]
	return e, ok
}

// Keys returns the map's keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns a copy of the accumulated key->entry pairs.
func (m *Map) Entries() map[string]Entry {
	out := make(map[string]Entry, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// MergeFrom loads a prior map file (the generator's own long-standing
// "option to update and load an existent map file" todo) and fills in
// any key this build did not itself produce, so a hand-maintained or
// partial-build map file isn't clobbered by an incremental run.
func (m *Map) MergeFrom(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !gjson.ValidBytes(raw) {
		return nil
	}

	gjson.ParseBytes(raw).ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if _, ok := m.entries[k]; ok {
			return true
		}
		m.entries[k] = Entry{
			AbsPath:   value.Get("abs_path").String(),
			Integrity: value.Get("integrity").String(),
			Static:    value.Get("static").String(),
		}
		return true
	})
	return nil
}

// Marshal renders the map as indented JSON with keys in sorted order.
// The document is first assembled incrementally through sjson (the
// same library MergeFrom reads with, via gjson), then re-marshaled
// with the standard library for stable indentation and key ordering.
func (m *Map) Marshal() ([]byte, error) {
	doc := "{}"
	var err error
	for _, key := range m.Keys() {
		entry := m.entries[key]
		doc, err = sjson.Set(doc, key+".abs_path", entry.AbsPath)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.Set(doc, key+".integrity", entry.Integrity)
		if err != nil {
			return nil, err
		}
		doc, err = sjson.Set(doc, key+".static", entry.Static)
		if err != nil {
			return nil, err
		}
	}

	var assembled map[string]Entry
	if err := json.Unmarshal([]byte(doc), &assembled); err != nil {
		return nil, err
	}
	return json.MarshalIndent(assembled, "", "    ")
}

// WriteFile serializes the map to path.
func (m *Map) WriteFile(path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
