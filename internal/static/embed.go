// Package static embeds the assets served under /static/.
package static

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed assets
var assetsFS embed.FS

// FS returns the asset directory rooted at its top level.
func FS() (fs.FS, error) {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("sub assets fs: %w", err)
	}
	return sub, nil
}
