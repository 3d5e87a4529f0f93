package emotestore

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"emotebot/internal/domain/entities"
	"emotebot/internal/ports/output"
)

var _ output.EmoteLoader = (*FileLoader)(nil)

// ParseYAML decodes a list of emotes:
//
//	- id: 1
//	  name: Surprised
//	  commands: [/surprised, /おどろく]
//	  en: {targeted: "...", untargeted: "..."}
//	  ja: {targeted: "...", untargeted: "..."}
func ParseYAML(data []byte) ([]entities.Emote, error) {
	var emotes []entities.Emote
	if err := yaml.Unmarshal(data, &emotes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emotes: %w", err)
	}
	seen := make(map[uint]bool, len(emotes))
	for i, e := range emotes {
		if e.ID == 0 {
			return nil, fmt.Errorf("emote #%d (%q): missing id", i, e.Name)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("emote %d: duplicate id", e.ID)
		}
		seen[e.ID] = true
	}
	return emotes, nil
}

// LoadYAML reads and decodes the emote file at path.
func LoadYAML(path string) ([]entities.Emote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read emote file %s: %w", path, err)
	}
	emotes, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return emotes, nil
}

// WriteYAML writes emotes to path.
func WriteYAML(path string, emotes []entities.Emote) error {
	data, err := yaml.Marshal(emotes)
	if err != nil {
		return fmt.Errorf("failed to marshal emotes: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write emote file %s: %w", path, err)
	}
	return nil
}

// FileLoader loads emotes from a YAML file.
type FileLoader struct {
	Path string
}

func (l *FileLoader) LoadEmotes(ctx context.Context) ([]entities.Emote, error) {
	return LoadYAML(l.Path)
}
