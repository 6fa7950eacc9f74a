package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// builtinSeeds cover every statement form once.
var builtinSeeds = []string{
	"",
	"x = ident foo\n",
	"s = selector insert:at:\nz = selector count\n",
	"c = ctor Vec<$T, $Ts...>\nd = dtor Widget\nv = conv const unsigned int *&\n",
	"o = operator new[]\nk = literal _kg\nusing\n",
	"p = param 0 1 pack as Ts\nsp = subst-pack $p $o\nexpand $sp\n",
	"t = param 0 0 as T\nx = ident foo\ns = subst $t $x\n",
	"func f(.a, .b=, c, ...)\ncall f(.b = 1, 2, .a = 3, 4, 5)\n",
	"// comment\n# another\n  \t\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.names файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".names" {
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
