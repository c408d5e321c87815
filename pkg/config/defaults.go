package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/inventor-project/symon/pkg/version"
)

// EnsureDefaults fills in every option the agent needs to run, generating
// secrets on first startup and persisting them. Existing non-empty values
// are left alone, so operators can pin anything by hand.
// persistentDir is where the generated log files default to.
func EnsureDefaults(cfg *Config, persistentDir string) error {
	if err := cfg.Set("public", "version", version.Version); err != nil {
		return err
	}

	defaults := []struct {
		section, option, value string
	}{
		{"public", "uuid", uuid.NewString()},
		{"public", "connectivity_ipv4_bool", "True"},
		{"public", "connectivity_ipv6_bool", "False"},

		{"logging", "console_level", "info"},
		{"logging", "logs_file", filepath.Join(persistentDir, "symon.log")},
		{"logging", "logs_file_level", "debug"},
		{"logging", "api_max_logs_size_int", "1000000"},

		{"accounting", "logs_file", filepath.Join(persistentDir, "accounting.log")},

		{"authentication", "password", generateSecret()},
		{"authentication", "token_key", generateSecret()},
		{"authentication", "token_validity_int", "3600"},

		{"authorization", "root_password", generateSecret()},
		{"authorization", "new_tests_password", generateSecret()},
		{"authorization", "request_validity_int", "60"},
		{"authorization", "allow_dev_bypass_bool", "False"},

		{"api", "server_ip", "0.0.0.0"},
		{"api", "server_port", "20001"},

		{"tests", "process_deadline_terminating_int", "60"},
		{"tests", "process_deadline_killing_int", "10"},

		{"cleaner", "interval_int", "60"},
		{"cleaner", "nonces_int", "600"},
		{"cleaner", "orchestrators_int", "1209600"},
		{"cleaner", "results_int", "86400"},
		{"cleaner", "old_params_int", "86400"},
		{"cleaner", "multi_results_int", "1209600"},
		{"cleaner", "tests_int", "1209600"},
		{"cleaner", "runs_int", "86400"},
		{"cleaner", "events_int", "86400"},
		{"cleaner", "requests_int", "86400"},
		{"cleaner", "stats_int", "1209600"},
	}

	for _, d := range defaults {
		if err := setIfMissing(cfg, d.section, d.option, d.value); err != nil {
			return err
		}
	}
	return nil
}

func setIfMissing(cfg *Config, section, option, value string) error {
	if cfg.Exists(section, option) && cfg.String(section, option) != "" {
		return nil
	}
	if err := cfg.Set(section, option, value); err != nil {
		return fmt.Errorf("failed to initialize option %s/%s: %w", section, option, err)
	}
	slog.Info("Config option has been generated", "section", section, "option", option)
	return nil
}

func generateSecret() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}
