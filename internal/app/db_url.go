package app

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/matchday/internal/config"
)

// normalizeDSN applies driver specific connection knobs. Only lib/pq needs
// disable_prepared_binary_result; pgx and sqlite DSNs pass through untouched.
func normalizeDSN(driver, raw string, disablePreparedBinary bool) string {
	if driver != config.DriverPostgres || !disablePreparedBinary {
		return raw
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" {
		// key=value DSNs keep their own flags
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	query.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromDSN is the db.name attribute put on traced queries.
func dbNameFromDSN(driver, raw string) string {
	raw = strings.TrimSpace(raw)
	if driver == config.DriverSQLite {
		return sqliteName(raw)
	}

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
		return ""
	}

	for _, token := range strings.Fields(raw) {
		name, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if name = strings.Trim(name, `"'`); name != "" {
			return name
		}
	}
	return ""
}

func sqliteName(raw string) string {
	path := strings.TrimPrefix(raw, "file:")
	path, _, _ = strings.Cut(path, "?")
	switch path {
	case "":
		return ""
	case ":memory:":
		return "memory"
	}
	return filepath.Base(path)
}
