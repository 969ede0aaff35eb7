// Package profile loads and normalizes canonical profile files.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-targeter/internal/types"
)

// LoadProfile loads a canonical profile from a JSON file and normalizes it.
func LoadProfile(path string) (*types.CanonicalProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var profile types.CanonicalProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	Normalize(&profile, time.Now())
	return &profile, nil
}
