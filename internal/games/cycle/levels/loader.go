package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Extension is the map file extension.
const Extension = ".game_map"

//go:embed maps/*.game_map
var campaignFS embed.FS

// Loader reads maps from a file system.
type Loader struct {
	FS     fs.FS
	Logger *log.Logger
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root)}
}

// NewFSLoader creates a loader over any file system.
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// Campaign returns a loader over the built-in maps.
func Campaign() *Loader {
	sub, err := fs.Sub(campaignFS, "maps")
	if err != nil {
		panic(err)
	}
	return NewFSLoader(sub)
}

func (l *Loader) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// LoadAll loads every map in the file system. Invalid files are logged and
// skipped. Levels are ordered by ID with numeric suffixes compared as numbers.
func (l *Loader) LoadAll() ([]*Level, error) {
	var out []*Level

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), Extension) {
			return nil
		}
		lvl, err := l.LoadFile(p)
		if err != nil {
			l.logger().Warn("skipping map", "path", p, "err", err)
			return nil
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking maps: %w", err)
	}

	sort.Slice(out, func(i, j int) bool {
		return LessID(out[i].ID, out[j].ID)
	})
	return out, nil
}

// LoadFile loads a single map by its path inside the file system.
// Warnings are logged.
func (l *Loader) LoadFile(p string) (*Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("reading map %s: %w", p, err)
	}
	lvl, err := Parse(IDFromPath(p), data)
	if err != nil {
		return nil, err
	}
	lvl.FilePath = p
	for _, w := range lvl.Warnings {
		l.logger().Warn("map warning", "level", lvl.ID, "msg", w)
	}
	return lvl, nil
}

// LoadByID loads the map named id + Extension from the root.
func (l *Loader) LoadByID(id string) (*Level, error) {
	return l.LoadFile(id + Extension)
}

// ListIDs returns the IDs of every map file, in level order.
// Files are not parsed.
func (l *Loader) ListIDs() ([]string, error) {
	var ids []string
	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(path.Ext(p), Extension) {
			ids = append(ids, IDFromPath(p))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking maps: %w", err)
	}
	sort.Slice(ids, func(i, j int) bool {
		return LessID(ids[i], ids[j])
	})
	return ids, nil
}

// IDFromPath strips directories and the extension: "maps/map_3.game_map" is "map_3".
func IDFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// splitID splits "map_12" into ("map_", 12, true).
func splitID(id string) (string, int, bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0, false
	}
	return id[:i], n, true
}

// LessID orders IDs by prefix, then by numeric suffix.
func LessID(a, b string) bool {
	pa, na, oka := splitID(a)
	pb, nb, okb := splitID(b)
	if oka && okb && pa == pb {
		return na < nb
	}
	return a < b
}

// NextID returns the ID that follows id by incrementing its numeric
// suffix: "map_3" is followed by "map_4".
func NextID(id string) (string, bool) {
	prefix, n, ok := splitID(id)
	if !ok {
		return "", false
	}
	return prefix + strconv.Itoa(n+1), true
}
