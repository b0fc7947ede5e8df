package cli

import (
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/HartBrook/muntjac/internal/config"
	"github.com/HartBrook/muntjac/internal/errors"
)

// loadEffectiveConfig loads the user config, falling back to built-in
// defaults when no config file exists.
func loadEffectiveConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		var merr *errors.MuntjacError
		if stderrors.As(err, &merr) && merr.Code == errors.ErrConfigNotFound {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// readTextInput resolves the prompt text from, in order: the --prompt
// flag, an input file, positional args, and finally stdin when piped.
func readTextInput(prompt, inputFile string, args []string) (string, error) {
	if prompt != "" {
		return prompt, nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", errors.Wrap(errors.ErrInvalidInput,
				"failed to read input file", "Check that the file exists and is readable", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrInvalidInput, "failed to read stdin", "", err)
		}
		return string(data), nil
	}

	return "", errors.InvalidInput("no prompt given; pass text as an argument, use --prompt/--input, or pipe via stdin")
}

// writeOutput writes text to a file, or stdout when path is empty.
func writeOutput(path, text string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(text + "\n")
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}
