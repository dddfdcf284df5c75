package assets

import (
	"embed"
	"io/fs"
)

//go:embed inputs/*.txt
var Assets embed.FS

// Inputs returns the embedded puzzle inputs, named day_NN.txt.
func Inputs() fs.FS {
	sub, err := fs.Sub(Assets, "inputs")
	if err != nil {
		// In practice this should not fail; fall back to empty FS.
		return embed.FS{}
	}
	return sub
}
