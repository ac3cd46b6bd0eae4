package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"airbnb-price-tracker/utils"
)

// LoadRoomIDs reads the listing-identifier file: one opaque identifier per
// line, blank lines and '#' comments ignored, duplicates dropped while
// preserving first-seen order. A missing file or an empty list is a fatal
// configuration error for the caller: no probing can happen without IDs.
func LoadRoomIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("room IDs file %q: %w", path, err)
	}
	defer f.Close()

	tracker := utils.NewTracker()
	var ids []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if tracker.Add(line) {
			ids = append(ids, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading room IDs file %q: %w", path, err)
	}
	return ids, nil
}
