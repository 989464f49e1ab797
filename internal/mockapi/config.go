package mockapi

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the mock responder's endpoint table.
type Config struct {
	API []Endpoint `json:"api"`
}

// Endpoint is one canned route. Response is written verbatim as the 200 body.
type Endpoint struct {
	Path          string          `json:"path"`
	Method        string          `json:"method"`
	Authorization *Authorization  `json:"authorization,omitempty"`
	Response      json.RawMessage `json:"response"`
}

// Authorization requires `Authorization: Bearer <Token>`; other requests get Status and Unauthorized.
type Authorization struct {
	Token        string          `json:"token"`
	Status       int             `json:"status"`
	Unauthorized json.RawMessage `json:"unauthorized"`
}

// LoadFile reads and parses a mock responder config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mock config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse mock config %s: %w", path, err)
	}
	return &cfg, nil
}

// find returns the first endpoint whose path matches and whose method matches, treating
// OPTIONS as a match for any method on the path.
func (c *Config) find(path, method string) (Endpoint, bool) {
	for _, ep := range c.API {
		if ep.Path == path && (ep.Method == method || method == "OPTIONS") {
			return ep, true
		}
	}
	return Endpoint{}, false
}
