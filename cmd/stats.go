package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ekremtas/lingopyr/internal/events"
	"github.com/ekremtas/lingopyr/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		username := resolveUsername(cmd)
		user, err := st.UserRepo().GetByUsername(ctx, username)
		if errors.Is(err, store.ErrNotFound) {
			fmt.Printf("No profile for %q yet. Run `lingopyr play` to start.\n", username)
			return nil
		}
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}

		fmt.Printf("Learner:   %s\n", user.Username)
		fmt.Printf("Level:     %s\n", user.Level)
		fmt.Printf("Learning:  %s (via %s)\n", user.LearningLanguage, user.SystemLanguage)
		fmt.Printf("Total XP:  %d\n", user.XP)

		recent, err := events.NewService(st.ActivityRepo()).RecentCompleted(ctx, user.ID, days)
		if err != nil {
			return fmt.Errorf("query recent activity: %w", err)
		}

		fmt.Println()
		if len(recent) == 0 {
			fmt.Printf("No completed activities in the last %d days.\n", days)
			return nil
		}

		fmt.Printf("Completed activities — last %d days\n", days)
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-19s  %-12s  %6s  %8s  %s\n",
			"Completed", "Activity", "XP", "Seconds", "Detail")
		fmt.Println(strings.Repeat("─", 72))

		var totalXP int
		for _, rec := range recent {
			end := rec.SessionStart
			if rec.SessionEnd != nil {
				end = *rec.SessionEnd
			}
			fmt.Printf("%-19s  %-12s  %6d  %8d  %s\n",
				end.Local().Format("2006-01-02 15:04:05"),
				rec.Kind,
				rec.XPEarned,
				rec.DurationSeconds,
				activityDetail(rec),
			)
			totalXP += rec.XPEarned
		}

		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-19s  %-12s  %6d\n", "TOTAL", "", totalXP)
		return nil
	},
}

// activityDetail renders a one-line summary of the kind-specific detail.
func activityDetail(rec *events.Record) string {
	switch {
	case rec.Pyramid != nil:
		return fmt.Sprintf("%d/%d steps", rec.Pyramid.CompletedSteps, rec.Pyramid.TotalSteps)
	case rec.Vocabulary != nil:
		return fmt.Sprintf("%d✓ %d✗, %d hints",
			rec.Vocabulary.CorrectAnswers, rec.Vocabulary.IncorrectAnswers, rec.Vocabulary.TotalHints)
	case rec.Writing != nil:
		return fmt.Sprintf("%d words", rec.Writing.WordCount)
	}
	return ""
}

func init() {
	statsCmd.Flags().IntP("days", "d", 5, "Window of recent activity to show")
}
