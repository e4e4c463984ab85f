package config

import (
	"os"
	"strings"
)

const defaultAccountTypes = "Savings,Checking"
const defaultAccountType = "Savings"

// Config holds presentation-layer settings. The ledger core itself reads no
// environment; only the console front end is configurable.
type Config struct {
	AccountTypes       []string
	DefaultAccountType string
}

func Load() (Config, error) {
	rawTypes := strings.TrimSpace(os.Getenv("BANK_ACCOUNT_TYPES"))
	if rawTypes == "" {
		rawTypes = defaultAccountTypes
	}

	defaultType := strings.TrimSpace(os.Getenv("BANK_DEFAULT_ACCOUNT_TYPE"))
	if defaultType == "" {
		defaultType = defaultAccountType
	}

	types := splitAccountTypes(rawTypes)
	if !contains(types, defaultType) {
		types = append(types, defaultType)
	}

	return Config{
		AccountTypes:       types,
		DefaultAccountType: defaultType,
	}, nil
}

func splitAccountTypes(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
