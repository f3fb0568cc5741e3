package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"bookmark-extension/internal/config"
	"bookmark-extension/internal/icon"
	"bookmark-extension/internal/ui"
)

func main() {
	var (
		root string
		logo string
	)
	flag.StringVar(&root, "root", ".", "project root containing the extension/ directory")
	flag.StringVar(&logo, "logo", "", "master logo PNG to resize instead of drawing the glyph")
	flag.Parse()

	fmt.Println("--- Generating Icons ---")

	if err := run(root, logo); err != nil {
		ui.Error(err.Error())
		fmt.Println("You can create the icons manually using any image editor.")
		return
	}
}

func run(root, logo string) error {
	destDir := config.IconsDir(root)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", destDir, err)
	}

	var master image.Image
	if logo != "" {
		m, err := icon.LoadLogo(logo)
		if err != nil {
			return err
		}
		master = m
	}

	for _, size := range config.IconSizes {
		destPath := config.IconFile(destDir, size)

		var err error
		if master != nil {
			err = icon.FromLogo(master, size, destPath)
		} else {
			err = icon.Generate(size, destPath)
		}
		if err != nil {
			return fmt.Errorf("icon%d: %w", size, err)
		}
		fmt.Printf("Created %s (%dx%d)\n", destPath, size, size)
	}

	ui.Success("All icons created successfully!")
	ui.Info("Icons saved to: " + destDir)
	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Println("1. Review the generated icons")
	fmt.Println("2. Consider creating custom icons with a design tool if needed")
	fmt.Println("3. Update your extension manifest if necessary")
	return nil
}
