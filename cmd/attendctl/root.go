package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cmlabs-hris/attendance-tracker/internal/client"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	server string
	token  string
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.server, client.WithToken(o.token))
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "attendctl",
		Short:         "Manage class schedules, absences and monthly reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", envOr("ATTENDANCE_URL", "http://localhost:4000"), "Attendance server base URL")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("ATTENDANCE_TOKEN"), "Editor token for write commands")

	cmd.AddCommand(
		newStudentsCommand(opts),
		newReasonsCommand(opts),
		newDayCommand(opts),
		newHolidayCommand(opts),
		newScheduleCommand(opts),
		newMarkCommand(opts),
		newReportCommand(opts),
		newReasonsParseCommand(),
		newTokenCommand(),
	)
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
