package batch

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/handsort/poker"
)

// HandFile is the decoded form of a batch file:
//
//	settings {
//	  workers = 4
//	}
//
//	hand "wheel" {
//	  cards  = "As 2d 3c 4h 5s"
//	  expect = "Straight"
//	}
type HandFile struct {
	Settings *Settings   `hcl:"settings,block"`
	Hands    []HandEntry `hcl:"hand,block"`
}

// Settings controls how a batch is evaluated
type Settings struct {
	Workers int  `hcl:"workers,optional"`
	Strict  bool `hcl:"strict,optional"`
}

// HandEntry is a single named hand in a batch file
type HandEntry struct {
	Name   string `hcl:"name,label"`
	Cards  string `hcl:"cards"`
	Expect string `hcl:"expect,optional"`
}

// DefaultSettings returns the settings used when a file has no settings block
func DefaultSettings() Settings {
	return Settings{
		Workers: runtime.GOMAXPROCS(0),
	}
}

// LoadHandFile loads a batch file from disk
func LoadHandFile(filename string) (*HandFile, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read hand file: %w", err)
	}
	return ParseHandFile(src, filename)
}

// ParseHandFile decodes HCL source into a HandFile and applies defaults.
// filename is only used in diagnostics.
func ParseHandFile(src []byte, filename string) (*HandFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var hf HandFile
	diags = gohcl.DecodeBody(file.Body, nil, &hf)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if hf.Settings == nil {
		defaults := DefaultSettings()
		hf.Settings = &defaults
	}
	if hf.Settings.Workers <= 0 {
		hf.Settings.Workers = DefaultSettings().Workers
	}

	return &hf, nil
}

// Validate checks the file structure. Card notation is not checked here so
// that one bad hand does not reject the whole batch.
func (hf *HandFile) Validate() error {
	if len(hf.Hands) == 0 {
		return fmt.Errorf("at least one hand must be defined")
	}

	seen := make(map[string]bool, len(hf.Hands))
	for _, h := range hf.Hands {
		if seen[h.Name] {
			return fmt.Errorf("hand %q: defined more than once", h.Name)
		}
		seen[h.Name] = true

		if h.Expect != "" {
			if _, err := poker.ParseCategory(h.Expect); err != nil {
				return fmt.Errorf("hand %q: %w", h.Name, err)
			}
		}
	}

	return nil
}
