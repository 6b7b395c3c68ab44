package rhs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultConverter is the external converter binary invoked by DumpParser.
const DefaultConverter = "rhsdump"

// DumpParser implements Parser by running the external RHS converter and
// decoding the structured record it writes to stdout. The converter owns the
// on-disk byte layout; this package only consumes its output.
type DumpParser struct {
	// Command is the converter binary to run. Empty means DefaultConverter.
	Command string
}

// Parse runs the converter on the file at path and decodes its record.
func (p *DumpParser) Parse(path string) (*RawRecording, error) {
	command := p.Command
	if command == "" {
		command = DefaultConverter
	}

	cmd := exec.Command(command, path)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %s", command, msg)
		}
		return nil, fmt.Errorf("running %s: %w", command, err)
	}

	var raw RawRecording
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("decoding %s output: %w", command, err)
	}

	return &raw, nil
}
