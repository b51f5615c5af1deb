// ABOUTME: Initial store population from built-in defaults or a seed file
// ABOUTME: Seed files are YAML (.yaml/.yml) or TOML (.toml), chosen by extension

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Seed is the initial content of a Store.
type Seed struct {
	News  []News `yaml:"news" toml:"news"`
	Posts []Post `yaml:"posts" toml:"posts"`
	Users []User `yaml:"users" toml:"users"`
}

// DefaultSeed returns the built-in population: five news items, no posts
// and no users.
func DefaultSeed() *Seed {
	news := make([]News, 0, 5)
	for i := int64(1); i <= 5; i++ {
		news = append(news, News{
			ID:        i,
			Title:     fmt.Sprintf("Note %d", i),
			Body:      fmt.Sprintf("Content %d", i),
			PostImage: fmt.Sprintf("Post image %d", i),
		})
	}
	return &Seed{News: news}
}

// LoadSeed reads a seed file. The format is picked from the file extension.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed Seed
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return nil, fmt.Errorf("parsing seed file: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &seed); err != nil {
			return nil, fmt.Errorf("parsing seed file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed file extension %q", ext)
	}
	return &seed, nil
}
