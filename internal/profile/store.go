package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/mwynn/ryzenadj-mcp/internal/options"
)

// Store reads and writes the profile document at a fixed path. Every
// mutating operation is a full read-modify-write of the file; nothing is
// cached between calls. The store is not protected against concurrent
// external writers — a single desktop session is the assumed usage.
type Store struct {
	path string
}

// DefaultPath returns the per-user location of the profile document.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "ryzenadj-mcp", "profiles.json"), nil
}

// NewStore returns a Store backed by the given file path, creating the
// parent directory if needed. An empty path selects DefaultPath.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, &StoreError{Message: "Failed to locate profile store", Err: err}
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &StoreError{Message: fmt.Sprintf("Failed to create %s", filepath.Dir(path)), Err: err}
	}
	return &Store{path: path}, nil
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

func defaultDocument() *Document {
	return &Document{
		Profiles: map[string]map[string]any{},
		Selected: "",
	}
}

// Normalize reconciles a raw value map against the option catalog: unknown
// keys are dropped, boolean entries are coerced, numeric entries are coerced
// to integers and clamped non-negative, and entries that cannot be coerced
// keep their catalog default. The result always covers the full catalog.
// Normalize is idempotent.
func Normalize(raw map[string]any) map[string]any {
	normalized := options.DefaultValues()
	for key, value := range raw {
		current, ok := normalized[key]
		if !ok {
			continue
		}
		if _, isBool := current.(bool); isBool {
			normalized[key] = truthy(value)
			continue
		}
		n, ok := coerceInt(value)
		if !ok {
			continue
		}
		if n < 0 {
			n = 0
		}
		normalized[key] = n
	}
	return normalized
}

// LoadAll reads the document from disk. A missing file initializes and
// persists an empty document. Unparseable files fail with a StoreError
// naming the path; individual profiles that are not objects are dropped
// rather than failing the load, and a dangling selection is reset. The
// cleaned document is written back before being returned.
func (s *Store) LoadAll() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := defaultDocument()
		if err := s.SaveAll(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, &StoreError{Message: fmt.Sprintf("Failed to read %s", s.path), Err: err}
	}

	var raw struct {
		Profiles map[string]any `json:"profiles"`
		Selected string         `json:"selected"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &StoreError{Message: fmt.Sprintf("Failed to read %s", s.path), Err: err}
	}

	doc := defaultDocument()
	for name, entry := range raw.Profiles {
		values, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		doc.Profiles[name] = Normalize(values)
	}
	if _, ok := doc.Profiles[raw.Selected]; ok {
		doc.Selected = raw.Selected
	}

	if err := s.SaveAll(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveAll serializes the whole document, pretty-printed with sorted keys,
// and overwrites the backing file.
func (s *Store) SaveAll(doc *Document) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StoreError{Message: fmt.Sprintf("Failed to write %s", s.path), Err: err}
	}
	if err := os.WriteFile(s.path, append(payload, '\n'), 0o644); err != nil {
		return &StoreError{Message: fmt.Sprintf("Failed to write %s", s.path), Err: err}
	}
	return nil
}

// Upsert stores a normalized copy of values under name, marks it selected,
// and persists. Blank names and the reserved baseline name are rejected.
func (s *Store) Upsert(name string, values map[string]any) (*Document, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &StoreError{Message: "Profile name must not be empty."}
	}
	if name == BaselineProfileName {
		return nil, &StoreError{Message: fmt.Sprintf("Profile '%s' is reserved and read-only.", name)}
	}
	doc, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	doc.Profiles[name] = Normalize(values)
	doc.Selected = name
	if err := s.SaveAll(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveBaseline writes the reserved baseline profile from captured values,
// leaving the current selection untouched. This is the only operation that
// may create or overwrite the baseline.
func (s *Store) SaveBaseline(values map[string]any) (*Document, error) {
	doc, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	doc.Profiles[BaselineProfileName] = Normalize(values)
	if err := s.SaveAll(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes the named profile and persists. Deleting the selected
// profile reassigns the selection to an arbitrary remaining profile, or to
// empty when none remain. The reserved baseline cannot be deleted.
func (s *Store) Delete(name string) (*Document, error) {
	if name == BaselineProfileName {
		return nil, &StoreError{Message: fmt.Sprintf("Profile '%s' is reserved and read-only.", name)}
	}
	doc, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if _, ok := doc.Profiles[name]; !ok {
		return nil, &StoreError{Message: fmt.Sprintf("Profile '%s' does not exist.", name)}
	}
	delete(doc.Profiles, name)
	if doc.Selected == name {
		doc.Selected = ""
		for remaining := range doc.Profiles {
			doc.Selected = remaining
			break
		}
	}
	if err := s.SaveAll(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Export reloads the document and writes it to an arbitrary destination
// path in the same format as the backing file.
func (s *Store) Export(destination string) error {
	doc, err := s.LoadAll()
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StoreError{Message: "Failed to export profiles", Err: err}
	}
	if err := os.WriteFile(destination, append(payload, '\n'), 0o644); err != nil {
		return &StoreError{Message: "Failed to export profiles", Err: err}
	}
	return nil
}

// Import reads a profile document from source and replaces the entire store
// with it. The source must be a JSON object with a "profiles" object
// containing at least one normalizable entry. When the source's stated
// selection is missing or invalid, the first imported profile (by name) is
// selected instead. Failures leave the existing document untouched.
func (s *Store) Import(source string) (*Document, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, &StoreError{Message: "Failed to import profiles", Err: err}
	}

	var imported map[string]any
	if err := json.Unmarshal(data, &imported); err != nil {
		return nil, &StoreError{Message: "Failed to import profiles", Err: err}
	}

	rawProfiles, ok := imported["profiles"].(map[string]any)
	if !ok {
		return nil, &StoreError{Message: "Imported file is missing 'profiles'."}
	}

	cleaned := map[string]map[string]any{}
	for name, entry := range rawProfiles {
		values, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		cleaned[name] = Normalize(values)
	}
	if len(cleaned) == 0 {
		return nil, &StoreError{Message: "No valid profiles were found in imported file."}
	}

	selected, _ := imported["selected"].(string)
	if _, ok := cleaned[selected]; !ok {
		names := make([]string, 0, len(cleaned))
		for name := range cleaned {
			names = append(names, name)
		}
		sort.Strings(names)
		selected = names[0]
	}

	doc := &Document{Profiles: cleaned, Selected: selected}
	if err := s.SaveAll(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ListNames returns the user-facing profile names in sorted order, excluding
// the reserved baseline.
func ListNames(doc *Document) []string {
	names := make([]string, 0, len(doc.Profiles))
	for name := range doc.Profiles {
		if name == BaselineProfileName {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case int:
		return val != 0
	case float64:
		return val != 0
	case string:
		return val != ""
	case nil:
		return false
	default:
		return true
	}
}

func coerceInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case float64:
		return int(val), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
