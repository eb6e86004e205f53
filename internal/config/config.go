// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"encoding/json"
	"os"
)

// Config represents the application configuration. Everything is
// optional; the server runs with defaults and no config file at all.
type Config struct {
	// OsascriptPath overrides the script interpreter binary.
	OsascriptPath string `json:"osascript_path,omitempty"`
	// SearchLimit caps search_emails results.
	SearchLimit int `json:"search_limit,omitempty"`
	// LogFile enables file logging; stdout belongs to the transport.
	LogFile string `json:"log_file,omitempty"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		SearchLimit: 50,
	}
}

// LoadConfig loads configuration from a JSON file, merged over
// defaults. A missing file is not an error.
func LoadConfig(filepath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(filepath); err == nil {
		data, err := os.ReadFile(filepath)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	if config.SearchLimit <= 0 {
		config.SearchLimit = 50
	}

	return config, nil
}
