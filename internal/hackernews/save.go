package hackernews

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes stories to path as indented JSON.
func Save(path string, stories []Story) error {
	if stories == nil {
		stories = []Story{}
	}
	data, err := json.MarshalIndent(stories, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding stories: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
