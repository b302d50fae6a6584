package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/farmflow/farmdash/internal/dashboard"
)

const reportPerms = 0o644

func exportCmd(a *app) *Command {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.StringP("out", "o", "", "Write the report to `file`")
	format := fs.String("format", "", "Report format (json|yaml); default from the file extension, else json")

	return &Command{
		Flags: fs,
		Usage: "export --out <file> [flags]",
		Short: "Write a report of every page",
		Long: "Write every page summary, unfiltered, as a JSON or YAML report. " +
			"The file is replaced atomically.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			err := noArgs(args)
			if err != nil {
				return err
			}

			return execExport(a, o, *out, *format)
		},
	}
}

func reportFormat(path, format string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return "yaml", nil
		default:
			return "json", nil
		}
	}

	if format != "json" && format != "yaml" {
		return "", fmt.Errorf("%w: %s", errUnknownFormat, format)
	}

	return format, nil
}

func encodeReport(snap dashboard.Snapshot, format string) ([]byte, error) {
	if format == "yaml" {
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		err := enc.Encode(snap)
		if err != nil {
			return nil, err
		}

		err = enc.Close()
		if err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

func execExport(a *app, o *IO, out, format string) error {
	if out == "" {
		return errOutRequired
	}

	format, err := reportFormat(out, format)
	if err != nil {
		return err
	}

	ds, err := a.dataset()
	if err != nil {
		return err
	}

	snap, err := dashboard.Build(ds, a.cfg.Farm.Name)
	if err != nil {
		return err
	}

	data, err := encodeReport(snap, format)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	path := out
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.cfg.EffectiveCwd, path)
	}

	err = atomic.WriteFile(path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// atomic.WriteFile doesn't set permissions for new files
	err = os.Chmod(path, reportPerms)
	if err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}

	a.log.Debug("report written", zap.String("path", path), zap.String("format", format), zap.Int("bytes", len(data)))
	o.Println("Exported", format, "report to", path)

	return nil
}
