package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := RevealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}

	if err := exec.Command(name, args...).Run(); err != nil {
		if runtime.GOOS == OSLinux {
			return openDirInLinuxFileManager(filepath.Dir(absPath))
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}

// RevealCommand returns the command that reveals absPath on goos.
// Linux has no standard selection flag, so the parent directory is opened.
func RevealCommand(goos, absPath string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{MacOSSelectFlag, absPath}, nil
	case OSWindows:
		return ExplorerCommand, []string{WindowsSelectParam + absPath}, nil
	case OSLinux:
		return XDGOpenCommand, []string{filepath.Dir(absPath)}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// openDirInLinuxFileManager tries the known file managers in order
func openDirInLinuxFileManager(dir string) error {
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}
