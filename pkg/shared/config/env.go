package config

import (
	"os"
	"regexp"
)

// envVarPattern matches ${VAR} or ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// ExpandEnv replaces environment variable references in the input string
// with their values.
//
// Supported formats:
//   - ${VAR}          - value of VAR, or empty string if not set
//   - ${VAR:-default} - value of VAR, or "default" if VAR is unset or empty
//
// Example:
//
//	input := "output: ${ICONS_OUT:-src/icons}"
//	output := ExpandEnv(input)
//	// with ICONS_OUT unset: "output: src/icons"
func ExpandEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		if len(parts) < 4 {
			return match
		}

		if value, ok := os.LookupEnv(parts[1]); ok && value != "" {
			return value
		}
		if parts[2] != "" {
			return parts[3]
		}
		return ""
	})
}

// ExpandEnvBytes is ExpandEnv for file contents read before YAML/JSON unmarshaling
func ExpandEnvBytes(input []byte) []byte {
	return []byte(ExpandEnv(string(input)))
}

// ExtractEnvVars returns the distinct variable names referenced in input,
// in order of first appearance.
func ExtractEnvVars(input string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)

	for _, match := range envVarPattern.FindAllStringSubmatch(input, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			result = append(result, match[1])
		}
	}

	return result
}

// MissingEnvVars returns the referenced variables that are unset or empty.
// References carrying a default (${VAR:-default}) never count as missing.
func MissingEnvVars(input string) []string {
	seen := make(map[string]bool)
	missing := make([]string, 0)

	for _, match := range envVarPattern.FindAllStringSubmatch(input, -1) {
		varName := match[1]
		if seen[varName] || match[2] != "" {
			continue
		}
		seen[varName] = true

		if os.Getenv(varName) == "" {
			missing = append(missing, varName)
		}
	}

	return missing
}
