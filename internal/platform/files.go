package platform

import (
	"fmt"
	"io"
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

// File permissions
const (
	DefaultDirPermissions  = 0o755
	DefaultFilePermissions = 0o644
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

// Directory layout inside the data directory
const (
	AppDirName    = "quadrant-ranking"
	ImagesDirName = "images"
)

// DefaultDataDir returns the per-user data directory for the app,
// e.g. ~/.config/quadrant-ranking on Linux
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// CreateDirectoryIfNotExists creates the directory and its parents
func CreateDirectoryIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, DefaultDirPermissions)
	}
	return nil
}

// ImagesDir returns the marker image directory inside the data directory
func ImagesDir(dataDir string) string {
	return filepath.Join(dataDir, ImagesDirName)
}

// ImportImage copies an image file into the data directory's images folder,
// prefixed with the owning item's ID so names never collide. Returns the
// destination path to store on the item.
func ImportImage(srcPath, dataDir, itemID string) (string, error) {
	imagesDir := ImagesDir(dataDir)
	if err := CreateDirectoryIfNotExists(imagesDir); err != nil {
		return "", fmt.Errorf("create images dir: %w", err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open source image: %w", err)
	}
	defer src.Close()

	destPath := filepath.Join(imagesDir, itemID+"_"+filepath.Base(srcPath))
	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return "", fmt.Errorf("create image copy: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("copy image: %w", err)
	}
	return destPath, nil
}

// RemoveImage deletes an imported marker image; a missing file is not an error
func RemoveImage(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+absPath).Run()
	case OSLinux:
		// Highlighting is file-manager specific; opening the directory is
		// the portable behavior.
		return exec.Command(XDGOpenCommand, filepath.Dir(absPath)).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
