package testutils

import (
	"os"
	"path"
	"strings"
)

type TestingT interface {
	Helper()
	Log(args ...interface{})
	Logf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

// Asset is a test input file.
type Asset struct {
	// Name is the file name without its suffix.
	Name    string
	Path    string
	Content string
}

// LoadAssets reads every file in dir whose name ends with suffix.
func LoadAssets(t TestingT, dir, suffix string) []*Asset {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var assets []*Asset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		} else if !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}

		filePath := path.Join(dir, entry.Name())
		b, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatal(err)
		}
		assets = append(assets, &Asset{
			Name:    strings.TrimSuffix(entry.Name(), suffix),
			Path:    filePath,
			Content: string(b),
		})
	}
	if len(assets) == 0 {
		t.Fatalf("no %s assets in %s", suffix, dir)
	}

	return assets
}
