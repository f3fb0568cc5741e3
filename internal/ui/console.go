package ui

import "fmt"

// ANSI Color Codes
const (
	Reset   = "\033[0m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
	Yellow  = "\033[33m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Bold    = "\033[1m"
)

func Info(msg string) {
	fmt.Printf("%s[INFO] %s%s\n", Cyan, Reset, msg)
}

func Success(msg string) {
	fmt.Printf("%s[SUCCESS] %s%s\n", Green, Reset, msg)
}

func Warning(msg string) {
	fmt.Printf("%s[WARNING] %s%s\n", Yellow, Reset, msg)
}

func Error(msg string) {
	fmt.Printf("%s[ERROR] %s%s\n", Red, Reset, msg)
}

func Header(title string) {
	fmt.Printf("\n%s=== %s ===%s\n", Magenta, title, Reset)
}
