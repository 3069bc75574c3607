package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

// languageSeeds cover every scanner mode at least once.
var languageSeeds = []string{
	"container App\n    styles {\n        width: 100%\n    }\n",
	"a - b\na-b\na -2\n",
	"x = \"a${b}c\" + 'q${ {k: 1} }' + `g`\n",
	"\"\"\"multi\n${line}\n\"\"\"\n",
	"25kg/m3 3km/h 20°C 5µm 8MiB 0t 0b -Infinitykg\n",
	"0x348FABD1 0b1011 0o17 0tv0 0czz 1_000.5\n",
	"/* a /* nested */ */ /|\\ layout\n/// doc\n// line\n",
	"root\n    level1\n\n        level2\n  bad\n",
	"\"unterminated\n'also\n\"${open",
	"a ?? b |> f <| g === h .= i ~= j\n",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	f.Add([]byte{})
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.lacon файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".lacon" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
