package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/farmflow/farmdash/internal/config"
)

// settingsCmd returns the settings command.
func settingsCmd(a *app) *Command {
	return &Command{
		Flags: flag.NewFlagSet("settings", flag.ContinueOnError),
		Usage: "settings",
		Short: "Show profile, farm details and resolved configuration",
		Long:  "Display the profile, farm details and notification settings, and which files they were loaded from.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			err := noArgs(args)
			if err != nil {
				return err
			}

			execSettings(a, o)

			return nil
		},
	}
}

func onOff(b *bool) string {
	if config.Enabled(b) {
		return "enabled"
	}

	return "disabled"
}

func execSettings(a *app, o *IO) {
	cfg := a.cfg
	r := a.renderer(o)

	o.Println(r.KeyValues("Profile", [][2]string{
		{"Full name", cfg.Profile.Name},
		{"Email", cfg.Profile.Email},
		{"Phone", cfg.Profile.Phone},
		{"Role", cfg.Profile.Role},
	}))

	o.Println(r.KeyValues("Farm details", [][2]string{
		{"Farm name", cfg.Farm.Name},
		{"Location", cfg.Farm.Location},
		{"Total area", cfg.Farm.TotalArea},
		{"Established", cfg.Farm.Established},
	}))

	o.Println(r.KeyValues("Notifications", [][2]string{
		{"Email notifications", onOff(cfg.Notifications.Email)},
		{"Push notifications", onOff(cfg.Notifications.Push)},
		{"SMS alerts", onOff(cfg.Notifications.SMS)},
		{"Weekly reports", onOff(cfg.Notifications.WeeklyReports)},
	}))

	data := cfg.DataFileAbs
	if data == "" {
		data = "(built-in sample data)"
	}

	o.Println(r.KeyValues("Display", [][2]string{
		{"Theme", cfg.Theme},
		{"Currency", cfg.Currency},
		{"Log level", cfg.LogLevel},
		{"Data", data},
		{"Working directory", cfg.EffectiveCwd},
	}))

	var sources [][2]string

	if cfg.Sources.Global != "" {
		sources = append(sources, [2]string{"Global config", cfg.Sources.Global})
	}

	if cfg.Sources.Project != "" {
		sources = append(sources, [2]string{"Project config", cfg.Sources.Project})
	}

	if len(sources) == 0 {
		sources = append(sources, [2]string{"Config", "(defaults only)"})
	}

	o.Printf("%s", r.KeyValues("Sources", sources))
}
