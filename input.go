package main

import (
	"fmt"
	"os"
	"strings"
)

// DescriptionInput provides shared description resolution (flag or file).
// Embedded in the create commands.
type DescriptionInput struct {
	Description     string `help:"Description text." short:"d"`
	DescriptionFile string `help:"Read the description from a file." type:"existingfile"`
}

// Resolve returns the description text, preferring the flag over the file.
// Both absent means no description.
func (d *DescriptionInput) Resolve() (string, error) {
	if d.Description != "" {
		return d.Description, nil
	}
	if d.DescriptionFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(d.DescriptionFile) //nolint:gosec // user-provided path via CLI flag
	if err != nil {
		return "", newCLIError(ExitRuntimeError, "read_file_failed",
			fmt.Sprintf("Failed to read file %q: %s", d.DescriptionFile, err))
	}
	desc := strings.TrimRight(string(data), "\n")
	if desc == "" {
		return "", newCLIError(ExitInvalidInput, "empty_description",
			fmt.Sprintf("File %q is empty.", d.DescriptionFile))
	}
	return desc, nil
}
