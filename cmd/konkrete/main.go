package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"konkrete/internal/bootstrap"
	trackerdto "konkrete/internal/modules/tracker/dto"
	userdto "konkrete/internal/modules/user/dto"
	"konkrete/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var home string

	root := &cobra.Command{
		Use:           "konkrete",
		Short:         "Personal time tracking and habit journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&home, "home", "", "config and data directory (default ~/.konkrete)")

	root.AddCommand(newTUICmd(&home))
	root.AddCommand(newAccountCmd(&home))
	root.AddCommand(newTopicCmd(&home))
	root.AddCommand(newTimerCmd(&home))
	root.AddCommand(newStatsCmd(&home))
	root.AddCommand(newObjectiveCmd(&home))
	root.AddCommand(newGymCmd(&home))
	root.AddCommand(newCoachCmd(&home))
	return root
}

func loadApp(home string) (*bootstrap.App, error) {
	cfg, err := config.New(home)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(home *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the konkrete terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newAccountCmd(home *string) *cobra.Command {
	account := &cobra.Command{Use: "account", Short: "Account and preference commands"}

	var email, name, password string

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			profile, err := app.AccountCLI.Register(context.Background(), email, name, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s); run `konkrete account login` to sign in\n", profile.Email, profile.ID)
			return nil
		},
	}
	registerCmd.Flags().StringVar(&email, "email", "", "account email")
	registerCmd.Flags().StringVar(&name, "name", "", "display name (defaults to email)")
	registerCmd.Flags().StringVar(&password, "password", "", "account password")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			profile, err := app.AccountCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", profile.DisplayName)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "account email")
	loginCmd.Flags().StringVar(&password, "password", "", "account password")

	guestCmd := &cobra.Command{
		Use:   "guest",
		Short: "Sign in as the local guest account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			profile, err := app.AccountCLI.LoginAsGuest(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", profile.DisplayName)
			return nil
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.AccountCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			profile, err := app.AccountCLI.Current(context.Background())
			if err != nil {
				return err
			}
			printProfile(cmd, profile)
			return nil
		},
	}

	account.AddCommand(registerCmd, loginCmd, guestCmd, logoutCmd, whoamiCmd, newPrefsCmd(home))
	return account
}

func newPrefsCmd(home *string) *cobra.Command {
	prefs := &cobra.Command{Use: "prefs", Short: "Analytics preference commands"}

	var streakMinutes, streakTopics, goalMinutes int

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update streak and goal thresholds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			profile, err := app.AccountCLI.UpdatePreferences(
				context.Background(),
				streakMinutes*60,
				streakTopics,
				goalMinutes*60,
			)
			if err != nil {
				return err
			}
			printProfile(cmd, profile)
			return nil
		},
	}
	setCmd.Flags().IntVar(&streakMinutes, "streak-minutes", 10, "minimum minutes per day to keep a streak")
	setCmd.Flags().IntVar(&streakTopics, "streak-topics", 1, "minimum distinct topics per day to keep a streak")
	setCmd.Flags().IntVar(&goalMinutes, "goal-minutes", 0, "daily focus goal in minutes (0 disables)")

	prefs.AddCommand(setCmd)
	return prefs
}

func printProfile(cmd *cobra.Command, profile userdto.ProfileOutput) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s <%s>\n", profile.DisplayName, profile.Email)
	_, _ = fmt.Fprintf(out, "  streak: %dm over %d topic(s)/day, goal %dm/day\n",
		profile.Preferences.StreakMinSeconds/60,
		profile.Preferences.StreakMinTopics,
		profile.Preferences.DailyGoalSeconds/60,
	)
}

func newTopicCmd(home *string) *cobra.Command {
	topic := &cobra.Command{Use: "topic", Short: "Topic commands"}

	var icon string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			ctx := context.Background()
			// The process exits right after Add, so resolve the icon
			// suggestion here instead of leaving it to background work
			// that would not outlive the command.
			if icon == "" {
				if suggested, err := app.AssistCLI.ClassifyIcon(ctx, args[0]); err == nil {
					icon = suggested
				}
			}
			out, err := app.TopicCLI.Add(ctx, args[0], icon)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s) icon=%s color=%s\n", out.Name, out.ID, out.Icon, out.Color)
			return nil
		},
	}
	addCmd.Flags().StringVar(&icon, "icon", "", "icon name (suggested automatically when omitted)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List topics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			topics, err := app.TopicCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(topics) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no topics")
				return nil
			}
			for _, t := range topics {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s %-10s %7.1fm\n", t.ID, t.Name, t.Icon, t.TotalMinutes)
			}
			return nil
		},
	}

	var updName, updIcon, updColor string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a topic's name, icon or color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.TopicCLI.Update(context.Background(), args[0], updName, updIcon, updColor)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s icon=%s color=%s\n", out.Name, out.Icon, out.Color)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&updName, "name", "", "new name")
	updateCmd.Flags().StringVar(&updIcon, "icon", "", "new icon")
	updateCmd.Flags().StringVar(&updColor, "color", "", "new hex color")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a topic and its tracked history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.TopicCLI.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}

	logCmd := &cobra.Command{
		Use:   "log <id> <minutes>",
		Short: "Add or subtract tracked minutes by hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse minutes: %w", err)
			}
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.TopicCLI.AddManualMinutes(context.Background(), args[0], minutes); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %.1fm\n", minutes)
			return nil
		},
	}

	topic.AddCommand(addCmd, listCmd, updateCmd, deleteCmd, logCmd)
	return topic
}

func newTimerCmd(home *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Timer commands"}

	var topicID string
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start (or restart) the timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if topicID != "" {
				if _, err := app.TimerCLI.Select(ctx, topicID); err != nil {
					return err
				}
			}
			status, err := app.TimerCLI.Start(ctx)
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
	startCmd.Flags().StringVar(&topicID, "topic", "", "select this topic before starting")

	selectCmd := &cobra.Command{
		Use:   "select <topic-id>",
		Short: "Arm the timer for a topic without starting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Select(context.Background(), args[0])
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}

	pauseCmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Pause(context.Background())
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}

	resumeCmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume a paused timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Resume(context.Background())
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and log the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			if !out.Logged {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "stopped, nothing to log")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s on %s\n", fmtSeconds(out.Session.DurationSeconds), out.Session.TopicName)
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the timer state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "List logged sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			sessions, err := app.TimerCLI.Sessions(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s %s  %s\n",
					s.EndTime.Format("2006-01-02 15:04"), s.TopicName, fmtSeconds(s.DurationSeconds), s.ID)
			}
			return nil
		},
	}

	timer.AddCommand(startCmd, selectCmd, pauseCmd, resumeCmd, stopCmd, statusCmd, sessionsCmd)
	return timer
}

func printStatus(cmd *cobra.Command, status trackerdto.StatusOutput) {
	if status.State == "idle" && status.ActiveTopicID == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "idle")
		return
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  topic=%s elapsed=%s\n", status.State, status.ActiveTopicID, fmtSeconds(status.ElapsedSeconds))
}

func fmtSeconds(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%dh%02dm%02ds", seconds/3600, seconds%3600/60, seconds%60)
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}

func newStatsCmd(home *string) *cobra.Command {
	stats := &cobra.Command{Use: "stats", Short: "Analytics commands"}

	streakCmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the current daily streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.AnalyticsCLI.Streak(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d day streak (>=%s over >=%d topic(s) per day)\n", out.Days, fmtSeconds(out.MinSeconds), out.MinTopics)
			return nil
		},
	}

	var window string
	focusCmd := &cobra.Command{
		Use:   "focus",
		Short: "Show focus time per topic in a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.AnalyticsCLI.Focus(context.Background(), window)
			if err != nil {
				return err
			}
			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no focus time in %s\n", out.Window)
				return nil
			}
			for _, e := range out.Entries {
				name := e.Name
				if name == "" {
					name = e.TopicID
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-20s %10s %5.1f%%\n", name, fmtSeconds(e.Seconds), e.Share*100)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total %s\n", fmtSeconds(out.TotalSeconds))
			return nil
		},
	}
	focusCmd.Flags().StringVar(&window, "window", "today", "today|this_week|last_3_days|last_7_days|last_30_days|all_time")

	var offset int
	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly activity chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.AnalyticsCLI.Weekly(context.Background(), offset)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "week of %s\n", out.WeekStart.Format("2006-01-02"))
			labels := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
			for i, minutes := range out.Minutes {
				bar := strings.Repeat("█", barLength(minutes, out.MaxScale))
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %6.0fm %s\n", labels[i], minutes, bar)
			}
			if out.GoalMinutes > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daily goal %.0fm\n", out.GoalMinutes)
			}
			return nil
		},
	}
	weekCmd.Flags().IntVar(&offset, "offset", 0, "weeks back from the current week")

	stats.AddCommand(streakCmd, focusCmd, weekCmd)
	return stats
}

func barLength(minutes, scale float64) int {
	const width = 30
	if scale <= 0 || minutes <= 0 {
		return 0
	}
	n := int(minutes / scale * width)
	if n > width {
		n = width
	}
	return n
}

func newObjectiveCmd(home *string) *cobra.Command {
	objective := &cobra.Command{Use: "objective", Short: "Weekly objective commands"}

	addCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an objective for this week",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, added, err := app.HabitCLI.AddObjective(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !added {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to add")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", out.Text, out.ID)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List this week's objectives",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			objectives, err := app.HabitCLI.WeekObjectives(context.Background())
			if err != nil {
				return err
			}
			if len(objectives) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no objectives this week")
				return nil
			}
			for _, o := range objectives {
				mark := " "
				if o.Completed {
					mark = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s\n", mark, o.Text, o.ID)
			}
			return nil
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle an objective's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.HabitCLI.ToggleObjective(context.Background(), args[0])
			if err != nil {
				return err
			}
			state := "open"
			if out.Completed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", state, out.Text)
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.HabitCLI.DeleteObjective(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}

	objective.AddCommand(addCmd, listCmd, toggleCmd, deleteCmd)
	return objective
}

func newGymCmd(home *string) *cobra.Command {
	gym := &cobra.Command{Use: "gym", Short: "Gym day commands"}

	toggleCmd := &cobra.Command{
		Use:   "toggle <date>",
		Short: "Mark or unmark a gym day (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			marked, err := app.HabitCLI.ToggleGymDay(context.Background(), args[0])
			if err != nil {
				return err
			}
			if marked {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "marked %s\n", args[0])
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "unmarked %s\n", args[0])
			}
			return nil
		},
	}

	var year, month int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List marked gym days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			days, err := app.HabitCLI.GymDays(context.Background(), year, month)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no gym days")
				return nil
			}
			for _, d := range days {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
	listCmd.Flags().IntVar(&year, "year", 0, "filter by year")
	listCmd.Flags().IntVar(&month, "month", 0, "filter by month (requires --year)")

	gym.AddCommand(toggleCmd, listCmd)
	return gym
}

func newCoachCmd(home *string) *cobra.Command {
	coach := &cobra.Command{Use: "coach", Short: "Focus coach commands"}

	chatCmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a message to the coach",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			out, err := app.AssistCLI.Chat(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Reply)
			return nil
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show the chat history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			history, err := app.AssistCLI.History(context.Background())
			if err != nil {
				return err
			}
			if len(history) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no messages")
				return nil
			}
			for _, m := range history {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %-5s %s\n", m.At.Format("2006-01-02 15:04"), m.Role, m.Text)
			}
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the chat history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*home)
			if err != nil {
				return err
			}
			if err := app.AssistCLI.ClearHistory(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cleared")
			return nil
		},
	}

	coach.AddCommand(chatCmd, historyCmd, clearCmd)
	return coach
}
