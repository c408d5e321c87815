// Package config reads and writes the agent configuration file (config.ini).
//
// Option names carry a type suffix (_int, _bool, _float, _file, _ip, _port)
// that drives value coercion, so callers get typed values without per-option
// schema definitions. All mutations are written back to disk immediately;
// every agent process re-reads the file on startup.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/ini.v1"
)

// AddedOrUpdated reports whether SetOptions created an option or overwrote it.
type AddedOrUpdated = string

const (
	// Added means the option did not exist before.
	Added AddedOrUpdated = "added"
	// Updated means an existing option was overwritten.
	Updated AddedOrUpdated = "updated"
)

// Config is a typed view over an ini file. Safe for concurrent use.
type Config struct {
	mu   sync.RWMutex
	path string
	file *ini.File
}

// Load parses the configuration file at path. A missing file yields an empty
// configuration that materializes on the first write.
func Load(path string) (*Config, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	// DEFAULT-section keys would be inherited by every section and break
	// the section/option addressing scheme.
	file.DeleteSection(ini.DefaultSection)
	return &Config{path: path, file: file}, nil
}

// Path returns the location of the underlying file.
func (c *Config) Path() string {
	return c.path
}

func (c *Config) save() error {
	if err := c.file.SaveTo(c.path); err != nil {
		return fmt.Errorf("failed to save config file %s: %w", c.path, err)
	}
	return nil
}

// Exists reports whether the section holds the option.
func (c *Config) Exists(section, option string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, err := c.file.GetSection(section)
	return err == nil && s.HasKey(option)
}

// String returns the raw value, or "" when absent.
func (c *Config) String(section, option string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, err := c.file.GetSection(section)
	if err != nil {
		return ""
	}
	return s.Key(option).String()
}

// Int returns the option as an integer, or 0 when absent or malformed.
func (c *Config) Int(section, option string) int {
	v, _ := strconv.Atoi(c.String(section, option))
	return v
}

// Bool returns the option as a boolean. Accepts the usual truthy spellings.
func (c *Config) Bool(section, option string) bool {
	switch strings.ToLower(c.String(section, option)) {
	case "true", "1", "t", "y", "yes", "yeah":
		return true
	}
	return false
}

// Float returns the option as a float64, or 0 when absent or malformed.
func (c *Config) Float(section, option string) float64 {
	v, _ := strconv.ParseFloat(c.String(section, option), 64)
	return v
}

// Value coerces the option according to its name's type suffix. Options
// without a recognized suffix come back as strings.
func (c *Config) Value(section, option string) (any, error) {
	raw := c.String(section, option)
	return Retype(option, raw)
}

// Retype coerces a raw option value according to the option name's type
// suffix.
func Retype(option, raw string) (any, error) {
	suffix := option
	if i := strings.LastIndex(option, "_"); i >= 0 {
		suffix = option[i+1:]
	}
	switch suffix {
	case "bool":
		switch strings.ToLower(raw) {
		case "true", "1", "t", "y", "yes", "yeah":
			return true, nil
		}
		return false, nil
	case "int":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("option %s: expected int, got %q", option, raw)
		}
		return v, nil
	case "float":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("option %s: expected float, got %q", option, raw)
		}
		return v, nil
	case "port":
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 65535 {
			return nil, fmt.Errorf("option %s: expected port number, got %q", option, raw)
		}
		return v, nil
	case "ip":
		ip := net.ParseIP(raw)
		if ip == nil {
			return nil, fmt.Errorf("option %s: expected IP address, got %q", option, raw)
		}
		return ip, nil
	case "file":
		return raw, nil
	default:
		return raw, nil
	}
}

// Section returns all options of one section as raw strings.
func (c *Config) Section(section string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := map[string]string{}
	s, err := c.file.GetSection(section)
	if err != nil {
		return out
	}
	for _, key := range s.Keys() {
		out[key.Name()] = key.Value()
	}
	return out
}

// AllSections returns every section's options as raw strings.
func (c *Config) AllSections() map[string]map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := map[string]map[string]string{}
	for _, s := range c.file.Sections() {
		if s.Name() == ini.DefaultSection {
			continue
		}
		opts := map[string]string{}
		for _, key := range s.Keys() {
			opts[key.Name()] = key.Value()
		}
		out[s.Name()] = opts
	}
	return out
}

// Set writes one option and persists the file.
func (c *Config) Set(section, option, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.file.GetSection(section)
	if err != nil {
		if s, err = c.file.NewSection(section); err != nil {
			return fmt.Errorf("failed to create config section %s: %w", section, err)
		}
	}
	s.Key(option).SetValue(value)
	return c.save()
}

// SetOptions applies a batch of section/option values, creating sections and
// options as needed, and reports per-option whether it was added or updated.
// The file is saved once.
func (c *Config) SetOptions(options map[string]map[string]string) (map[string]map[string]AddedOrUpdated, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := map[string]map[string]AddedOrUpdated{}
	for section, opts := range options {
		result[section] = map[string]AddedOrUpdated{}
		s, err := c.file.GetSection(section)
		if err != nil {
			if s, err = c.file.NewSection(section); err != nil {
				return nil, fmt.Errorf("failed to create config section %s: %w", section, err)
			}
		}
		for option, value := range opts {
			if s.HasKey(option) {
				result[section][option] = Updated
			} else {
				result[section][option] = Added
			}
			s.Key(option).SetValue(value)
		}
	}
	if err := c.save(); err != nil {
		return nil, err
	}
	return result, nil
}
