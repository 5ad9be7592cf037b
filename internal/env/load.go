package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// Variables already set in the process environment win over the file.
// The file may be missing; that is not an error.
func Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}
	return scanner.Err()
}

// parseLine splits a KEY=VALUE line, trimming space and one pair of surrounding quotes.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// Int returns the integer value of key. ok is false when the variable is unset or empty.
func Int(key string) (v int, ok bool, err error) {
	s, ok := lookup(key)
	if !ok {
		return 0, false, nil
	}
	v, err = strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %w", key, err)
	}
	return v, true, nil
}

// Uint64 returns the unsigned integer value of key.
func Uint64(key string) (v uint64, ok bool, err error) {
	s, ok := lookup(key)
	if !ok {
		return 0, false, nil
	}
	v, err = strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %w", key, err)
	}
	return v, true, nil
}

// Float32 returns the float value of key.
func Float32(key string) (v float32, ok bool, err error) {
	s, ok := lookup(key)
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %w", key, err)
	}
	return float32(f), true, nil
}

// Bool returns the boolean value of key (1/0, true/false, yes/no, on/off).
func Bool(key string) (v bool, ok bool, err error) {
	s, ok := lookup(key)
	if !ok {
		return false, false, nil
	}
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, true, nil
	case "no", "off":
		return false, true, nil
	}
	v, err = strconv.ParseBool(s)
	if err != nil {
		return false, true, fmt.Errorf("%s: %w", key, err)
	}
	return v, true, nil
}

func lookup(key string) (string, bool) {
	s := strings.TrimSpace(os.Getenv(key))
	return s, s != ""
}
