package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"bookmark-extension/internal/config"
	"bookmark-extension/internal/ui"
)

func main() {
	var root string
	flag.StringVar(&root, "root", ".", "project root containing the extension/ directory")
	flag.Parse()

	fmt.Println("--- Building Extension Releases ---")

	if err := build(root); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}

	ui.Success("Extension releases built.")
	ui.Info("Output in: " + filepath.Join(root, config.ReleaseDir))
}

func build(root string) error {
	srcDir := filepath.Join(root, config.ExtensionDir)
	if _, err := os.Stat(srcDir); err != nil {
		return fmt.Errorf("no %s directory at %s", config.ExtensionDir, root)
	}

	// Chrome release is the extension tree as-is
	fmt.Println("Building Chrome version...")
	if err := copyDir(srcDir, config.ChromeReleaseDir(root)); err != nil {
		return fmt.Errorf("chrome release: %w", err)
	}

	// Firefox needs the manifest reworked and the background service worker
	// swapped for a page, so ES modules keep working
	fmt.Println("Building Firefox version...")
	destFirefox := config.FirefoxReleaseDir(root)
	if err := copyDir(srcDir, destFirefox); err != nil {
		return fmt.Errorf("firefox release: %w", err)
	}
	if err := rewriteManifestForFirefox(filepath.Join(destFirefox, "manifest.json")); err != nil {
		return fmt.Errorf("firefox manifest: %w", err)
	}

	bgPage := `<script type="module" src="background.js"></script>`
	if err := os.WriteFile(filepath.Join(destFirefox, "background.html"), []byte(bgPage), 0644); err != nil {
		return fmt.Errorf("firefox background page: %w", err)
	}
	return nil
}

func copyDir(src string, dst string) error {
	// Clean destination first
	os.RemoveAll(dst)
	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, _ := filepath.Rel(src, path)
		if relPath == "." {
			return nil
		}
		destPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			return os.MkdirAll(destPath, 0755)
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.Create(destPath)
		if err != nil {
			return err
		}
		defer out.Close()

		_, err = io.Copy(out, in)
		return err
	})
}

func rewriteManifestForFirefox(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var manifest map[string]interface{}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return err
	}

	// "key" pins the Chrome extension ID; AMO rejects it
	delete(manifest, "key")

	manifest["browser_specific_settings"] = map[string]interface{}{
		"gecko": map[string]interface{}{
			"id":                 config.GeckoExtensionID,
			"strict_min_version": config.GeckoMinVersion,
		},
	}

	// MV3 background: "service_worker" becomes "page"
	if bg, ok := manifest["background"].(map[string]interface{}); ok {
		delete(bg, "service_worker")
		delete(bg, "type")
		bg["page"] = "background.html"
		manifest["background"] = bg
	}

	newData, err := json.MarshalIndent(manifest, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, newData, 0644)
}
