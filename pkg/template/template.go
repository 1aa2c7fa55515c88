package template

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/lppm/pkg/paths"
	"github.com/arthur-debert/lppm/pkg/templateinfo"
	"github.com/arthur-debert/lppm/pkg/types"
)

// Template pairs a template base directory with its metadata
type Template struct {
	BaseDir string
	Info    *templateinfo.Info
}

// InfoPath returns the absolute path of the template's metadata file
func (t *Template) InfoPath() string {
	return filepath.Join(t.BaseDir, paths.TemplateInfoFileName)
}

// SaveInfo persists the template's metadata
func (t *Template) SaveInfo(fsys types.FS) error {
	return t.Info.Save(fsys, t.InfoPath())
}

// PayloadFileCount counts regular files in the template, excluding any file
// named like the metadata file
func (t *Template) PayloadFileCount(fsys types.FS) (int, error) {
	return countFiles(fsys, t.BaseDir)
}

func countFiles(fsys types.FS, dir string) (int, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			n, err := countFiles(fsys, full)
			if err != nil {
				return 0, err
			}
			count += n
			continue
		}
		if entry.Name() == paths.TemplateInfoFileName || entry.Type()&fs.ModeType != 0 {
			continue
		}
		count++
	}
	return count, nil
}
