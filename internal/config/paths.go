package config

import (
	"fmt"
	"path/filepath"
)

const (
	ExtensionDir = "extension"
	ReleaseDir   = "release"

	// Firefox requires a specific email-like ID in manifest.json
	GeckoExtensionID = "bookmarks@markly.app"
	GeckoMinVersion  = "121.0"
)

// IconSizes are the sizes the Chrome Web Store expects, in generation order.
var IconSizes = []int{16, 32, 48, 128}

// Project Structure:
// Root/
//  ├── extension/ (manifest.json, icons/, background.js, ...)
//  └── release/   (extension-chrome/, extension-firefox/)

func IconsDir(root string) string {
	return filepath.Join(root, ExtensionDir, "icons")
}

func IconFile(dir string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("icon%d.png", size))
}

func ChromeReleaseDir(root string) string {
	return filepath.Join(root, ReleaseDir, "extension-chrome")
}

func FirefoxReleaseDir(root string) string {
	return filepath.Join(root, ReleaseDir, "extension-firefox")
}
