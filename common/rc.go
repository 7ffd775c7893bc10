package common

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/filemap-go/filemap"
	"github.com/gofiber/fiber/v2/log"
)

// RuntimeConfigFile is read from the working directory by LoadRuntimeConfig.
const RuntimeConfigFile = ".filemaprc"

// LoadRuntimeConfig reads the runtime config file. Each line holds one "NAME->VALUE" pair;
// blank lines and lines starting with '#' are skipped. A missing or malformed file yields an empty map.
func LoadRuntimeConfig() map[string]string {
	return loadRuntimeConfig(RuntimeConfigFile)
}

func loadRuntimeConfig(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warnf("ignoring %s: %v", path, err)
		}
		return map[string]string{}
	}

	lines := make([]string, 0, strings.Count(string(data), "\n")+1)
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}

		lines = append(lines, strings.TrimSuffix(line, "\r"))
	}

	if len(lines) == 0 {
		return map[string]string{}
	}

	m, err := filemap.Parse(strings.Join(lines, "\n"), filemap.WithKeyValueSeparator("->"))
	if err != nil {
		log.Warnf("ignoring %s: %v", path, err)
		return map[string]string{}
	}

	return m.Entries()
}
