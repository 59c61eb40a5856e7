package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const reportSuffix = "-rank.json"

// PrunePlan lists the report files Prune would delete, oldest first.
// Report filenames start with a UTC timestamp, so lexical order is
// chronological order. A keep of 0 or less plans nothing.
func PrunePlan(dir string, keep int) ([]string, error) {
	if keep <= 0 {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan report dir: %w", err)
	}

	var reports []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportSuffix) {
			continue
		}
		reports = append(reports, entry.Name())
	}
	if len(reports) <= keep {
		return nil, nil
	}

	sort.Strings(reports)
	doomed := reports[:len(reports)-keep]
	paths := make([]string, len(doomed))
	for i, name := range doomed {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// Prune deletes all but the newest keep reports under dir and returns the
// deleted paths. Files that do not look like run reports are left alone.
func Prune(dir string, keep int) ([]string, error) {
	doomed, err := PrunePlan(dir, keep)
	if err != nil {
		return nil, err
	}

	deleted := make([]string, 0, len(doomed))
	for _, path := range doomed {
		if err := os.Remove(path); err != nil {
			return deleted, fmt.Errorf("delete report %s: %w", path, err)
		}
		deleted = append(deleted, path)
	}
	return deleted, nil
}
