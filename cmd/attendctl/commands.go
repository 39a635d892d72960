package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cmlabs-hris/attendance-tracker/internal/config"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/reason"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

func newStudentsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.client().Students(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSTATUS")
			for _, st := range list.Students {
				status := ""
				if st.Status != nil {
					status = *st.Status
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", st.ID, st.Name, status)
			}
			return tw.Flush()
		},
	}
}

func newReasonsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reasons",
		Short: "Show the absence reason catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.client().Reasons(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	}
}

func newDayCommand(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "day <date>",
		Short: "Show a date's eligibility, schedule and absences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := opts.client().LoadDay(cmd.Context(), args[0], force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s holiday=%t weekend=%t blocked=%t\n",
				view.Day.Date, view.Day.IsHoliday, view.Day.IsWeekend, view.Day.Blocked)
			if view.Schedule == nil {
				fmt.Fprintln(out, "No schedule.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, pair := range view.Schedule.Pairs {
				fmt.Fprintf(tw, "Period %d (%s)\n", pair.Number, pair.Type)
				for _, st := range view.ActiveStudents() {
					if rec, ok := view.Absence(pair.Number, st.ID); ok {
						fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", st.ID, st.Name, rec.Reason, rec.Comment)
					}
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&force, "force-workday", false, "Treat a holiday or weekend as a working day")
	return cmd
}

func newHolidayCommand(opts *rootOptions) *cobra.Command {
	var on, off bool
	cmd := &cobra.Command{
		Use:   "holiday <date|yyyy-mm>",
		Short: "Show or toggle holidays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			if on || off {
				if err := c.SetHoliday(cmd.Context(), holiday.SetHolidayRequest{Date: args[0], IsHoliday: on}); err != nil {
					return err
				}
			}
			if len(args[0]) == len("2006-01") {
				list, err := c.Holidays(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), list)
			}
			status, err := c.Holiday(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), status)
		},
	}
	cmd.Flags().BoolVar(&on, "on", false, "Mark the date as a holiday")
	cmd.Flags().BoolVar(&off, "off", false, "Clear the holiday mark")
	cmd.MarkFlagsMutuallyExclusive("on", "off")
	return cmd
}

func newScheduleCommand(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "schedule <date> [number:type ...]",
		Short: "Show a date's schedule, or replace it with the given pairs",
		Long:  "Pairs are written as number:type, e.g. 2:regular 3:other. Use --clear to remove every pair.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			clearAll, _ := cmd.Flags().GetBool("clear")
			if len(args) > 1 || clearAll {
				pairs, err := parsePairs(args[1:])
				if err != nil {
					return err
				}
				req := schedule.SaveScheduleRequest{Date: args[0], Pairs: pairs, ForceWorkday: force}
				if err := c.SaveSchedule(cmd.Context(), req); err != nil {
					return err
				}
			}
			sched, err := c.Schedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), sched)
		},
	}
	cmd.Flags().BoolVar(&force, "force-workday", false, "Allow saving on a holiday or weekend")
	cmd.Flags().Bool("clear", false, "Remove every pair for the date")
	return cmd
}

func parsePairs(args []string) ([]schedule.PairRequest, error) {
	pairs := make([]schedule.PairRequest, 0, len(args))
	for _, arg := range args {
		numberText, pairType, found := strings.Cut(arg, ":")
		if !found {
			pairType = string(schedule.PairTypeRegular)
		}
		number, err := strconv.Atoi(numberText)
		if err != nil {
			return nil, fmt.Errorf("invalid pair %q: want number:type", arg)
		}
		pairs = append(pairs, schedule.PairRequest{Number: number, Type: pairType})
	}
	return pairs, nil
}

func newMarkCommand(opts *rootOptions) *cobra.Command {
	var (
		absent     bool
		present    bool
		force      bool
		reasonName string
		comment    string
	)
	cmd := &cobra.Command{
		Use:   "mark <date> <pair> <student-id>",
		Short: "Record or clear one student's absence for one pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if absent == present {
				return errors.New("pass exactly one of --absent or --present")
			}
			pair, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid pair %q", args[1])
			}
			studentID, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid student id %q", args[2])
			}

			req := attendance.WriteAttendanceRequest{
				Date:         args[0],
				Pair:         pair,
				StudentID:    studentID,
				Status:       string(attendance.StatusPresent),
				Reason:       reasonName,
				Comment:      comment,
				ForceWorkday: force,
			}
			if absent {
				req.Status = string(attendance.StatusAbsent)
			}
			if err := opts.client().WriteAttendance(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().BoolVar(&absent, "absent", false, "Record an absence")
	cmd.Flags().BoolVar(&present, "present", false, "Clear the absence")
	cmd.Flags().BoolVar(&force, "force-workday", false, "Allow writing on a holiday or weekend")
	cmd.Flags().StringVar(&reasonName, "reason", "", "Absence reason from the catalog")
	cmd.Flags().StringVar(&comment, "comment", "", "Free-text comment")
	return cmd
}

func newReportCommand(opts *rootOptions) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "report <yyyy-mm>",
		Short: "Print the monthly report or download it as a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()
			if format != "" {
				content, err := c.Export(cmd.Context(), args[0], report.ExportFormat(format))
				if err != nil {
					return err
				}
				if output == "" {
					output = fmt.Sprintf("attendance_%s.%s", args[0], format)
				}
				if err := os.WriteFile(output, content, 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Saved", output)
				return nil
			}

			monthly, err := c.Report(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEXCUSED\tUNEXCUSED\tTOTAL\tREASONS")
			for _, row := range monthly.Report {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n",
					row.ID, row.Name, row.RespectfulHours, row.NonRespectfulHours, row.TotalHours, row.Reasons)
			}
			fmt.Fprintf(tw, "\tTotal\t%d\t%d\t%d\t\n",
				monthly.Summary.RespectfulHours, monthly.Summary.NonRespectfulHours, monthly.Summary.TotalHours)
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&format, "export", "", "Download as xlsx or csv instead of printing")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Export file path")
	return cmd
}

func newReasonsParseCommand() *cobra.Command {
	var reasonsFile string
	cmd := &cobra.Command{
		Use:   "reasons-parse <text>",
		Short: "Group a flattened legacy reasons string",
		Long:  `Groups text such as "Family (2024-03-05 Period 2: overslept), Truancy (2024-03-06 Period 1)" by reason.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := reason.Default()
			if reasonsFile != "" {
				var err error
				if catalog, err = reason.Load(reasonsFile); err != nil {
					return err
				}
			}

			breakdown := report.ParseFragments(args[0], catalog)
			fmt.Fprintln(cmd.OutOrStdout(), breakdown.String())
			if breakdown.Malformed > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d fragment(s) could not be attributed\n", breakdown.Malformed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&reasonsFile, "reasons-file", "", "YAML reason catalog to use instead of the built-in one")
	return cmd
}

func newTokenCommand() *cobra.Command {
	var subject string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an editor token with AUTH_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Auth.Secret == "" {
				return errors.New("AUTH_SECRET is not set")
			}

			token, err := jwt.NewJWTService(cfg.Auth.Secret, cfg.Auth.TokenTTL).GenerateEditorToken(subject)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), token)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "editor", "Who the token is issued to")
	return cmd
}
