package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/filemap-go/filemap"
	"github.com/spf13/cobra"
)

const (
	pairSepEnv     = "FILEMAP_PAIR_SEPARATOR"
	keyValueSepEnv = "FILEMAP_KEY_VALUE_SEPARATOR"
)

// applyEnvDefaults lets the environment replace separator defaults. Explicit flags always win.
func applyEnvDefaults(cmd *cobra.Command) error {
	flags := map[string]string{"pair-sep": pairSepEnv, "kv-sep": keyValueSepEnv}
	for flag, env := range flags {
		v, ok := os.LookupEnv(env)
		if !ok || cmd.Flags().Changed(flag) {
			continue
		}

		if err := cmd.Flags().Set(flag, v); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}

	return nil
}

// separatorFlag returns the value of a separator flag, decoding escapes unless --raw-sep is set.
func separatorFlag(cmd *cobra.Command, name string) (string, error) {
	sep, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}

	raw, err := cmd.Flags().GetBool("raw-sep")
	if err != nil {
		return "", err
	}

	if raw {
		return sep, nil
	}

	return decodeSeparator(sep)
}

// decodeSeparator turns escape sequences like `\n` or `\t` into the characters they stand for.
func decodeSeparator(s string) (string, error) {
	decoded, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid separator %q: %w", s, err)
	}

	return decoded, nil
}

func buildOptions(cmd *cobra.Command) ([]filemap.Option, error) {
	pairSep, err := separatorFlag(cmd, "pair-sep")
	if err != nil {
		return nil, err
	}

	kvSep, err := separatorFlag(cmd, "kv-sep")
	if err != nil {
		return nil, err
	}

	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return nil, err
	}

	return []filemap.Option{
		filemap.WithPairSeparator(pairSep),
		filemap.WithKeyValueSeparator(kvSep),
		filemap.WithStrictKeys(strict),
	}, nil
}

// buildMap builds the map for path using the separator flags. A path of "-" reads from stdin.
func buildMap(cmd *cobra.Command, path string) (*filemap.Map, error) {
	opts, err := buildOptions(cmd)
	if err != nil {
		return nil, err
	}

	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return filemap.Parse(string(data), opts...)
	}

	return filemap.Load(path, opts...)
}
