package solver

import (
	"fmt"
	"os"
	"sort"
)

// WriteCertificateFile writes members (0-indexed vertex ids) to path as
// whitespace-separated ASCII, sorted for determinism, terminated by a
// newline. Matches the plain-text certificate format of §6.
func WriteCertificateFile(path string, members []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("solver: creating certificate file: %w", err)
	}
	defer f.Close()

	sorted := append([]int(nil), members...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if i > 0 {
			if _, err := fmt.Fprint(f, " "); err != nil {
				return fmt.Errorf("solver: writing certificate file: %w", err)
			}
		}
		if _, err := fmt.Fprintf(f, "%d", v); err != nil {
			return fmt.Errorf("solver: writing certificate file: %w", err)
		}
	}
	if _, err := fmt.Fprintln(f); err != nil {
		return fmt.Errorf("solver: writing certificate file: %w", err)
	}
	return nil
}
