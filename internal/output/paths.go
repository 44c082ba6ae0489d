package output

import "path/filepath"

// LocationsPath is <dir>/<base>_telomeric_locations.<ext>.
func LocationsPath(dir, base, ext string) string {
	return filepath.Join(dir, base+"_telomeric_locations."+ext)
}

// EstimatesPath is <dir>/<base>.txt.
func EstimatesPath(dir, base string) string {
	return filepath.Join(dir, base+".txt")
}

// WindowsPath is <dir>/<base>_telomeric_repeat_windows.<ext>.
func WindowsPath(dir, base, ext string) string {
	return filepath.Join(dir, base+"_telomeric_repeat_windows."+ext)
}
