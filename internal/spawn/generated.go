package spawn

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// generatedName matches files produced by Run (agent_01.md, agent_100.md, ...).
var generatedName = regexp.MustCompile(`^agent_(\d{2,})\.md$`)

// GeneratedFile describes one rendered prompt file found in an output directory.
type GeneratedFile struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Generated scans outDir for files produced by Run, ordered by agent index.
// A missing directory yields an empty slice, not an error.
func Generated(outDir string) ([]GeneratedFile, error) {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading output directory %s: %w", outDir, err)
	}

	var files []GeneratedFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := generatedName.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stating %s: %w", entry.Name(), err)
		}

		files = append(files, GeneratedFile{
			ID:   id,
			Path: filepath.Join(outDir, entry.Name()),
			Size: info.Size(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}

// Clean removes all generated prompt files from outDir and returns how many
// were deleted. Files not matching the agent_NN.md pattern are left alone.
func Clean(outDir string) (int, error) {
	files, err := Generated(outDir)
	if err != nil {
		return 0, err
	}

	for i, f := range files {
		if err := os.Remove(f.Path); err != nil {
			return i, fmt.Errorf("removing %s: %w", f.Path, err)
		}
	}
	return len(files), nil
}
