package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fitfusion/internal/bootstrap"
	authdto "fitfusion/internal/modules/auth/dto"
	catalogdomain "fitfusion/internal/modules/catalog/domain"
	plandomain "fitfusion/internal/modules/plan/domain"
	prefsdomain "fitfusion/internal/modules/prefs/domain"
	"fitfusion/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var stateDir, apiURL string

	root := &cobra.Command{
		Use:           "fitfusion",
		Short:         "FitFusion terminal fitness coach",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&stateDir, "state-dir", "", "state directory (default ~/.fitfusion)")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "backend API base URL")

	load := func() (*bootstrap.App, error) {
		cfg, err := config.New(stateDir, apiURL)
		if err != nil {
			return nil, err
		}
		return bootstrap.New(cfg)
	}

	root.AddCommand(newTUICmd(load))
	root.AddCommand(newAuthCmds(load)...)
	root.AddCommand(newPlansCmd(load))
	root.AddCommand(newPlanCmd(load))
	root.AddCommand(newCompleteCmd(load))
	root.AddCommand(newStatsCmd(load))
	root.AddCommand(newPrefsCmd(load))
	root.AddCommand(newProfileCmd(load))
	root.AddCommand(newExerciseCmd(load))
	root.AddCommand(newFoodsCmd(load))
	root.AddCommand(newAdminCmd(load))
	return root
}

type loadFn func() (*bootstrap.App, error)

// currentUser resolves the stored identity; every user-scoped command needs
// it before it can talk to the backend.
func currentUser(app *bootstrap.App) (authdto.IdentityOutput, error) {
	identity, err := app.Auth.Current(context.Background())
	if err != nil {
		return authdto.IdentityOutput{}, err
	}
	if !identity.Authenticated {
		return authdto.IdentityOutput{}, fmt.Errorf("not signed in; run `fitfusion login` first")
	}
	return identity, nil
}

func newTUICmd(load loadFn) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the FitFusion terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return app.RunTUI()
		},
	}
}

func newAuthCmds(load loadFn) []*cobra.Command {
	var email, password, name string

	login := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := app.Auth.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s (%s)\n", identity.Name, identity.Role)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")

	register := &cobra.Command{
		Use:   "register --name <name> --email <email> --password <password>",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := app.Auth.Register(context.Background(), name, email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", identity.Email)
			return nil
		},
	}
	register.Flags().StringVar(&name, "name", "", "display name")
	register.Flags().StringVar(&email, "email", "", "account email")
	register.Flags().StringVar(&password, "password", "", "account password")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.Auth.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := currentUser(app)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %d\nname: %s\nemail: %s\nrole: %s\n",
				identity.UserID, identity.Name, identity.Email, identity.Role)
			return nil
		},
	}

	return []*cobra.Command{login, register, logout, whoami}
}

func newPlansCmd(load loadFn) *cobra.Command {
	var cached bool
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List workout plan bundles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := currentUser(app)
			if err != nil {
				return err
			}
			out, err := app.Plans.List(context.Background(), identity.UserID, cached)
			if err != nil {
				return err
			}
			if len(out.Bundles) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plans yet; submit preferences to generate one")
				return nil
			}
			if out.Cached {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(offline copy)")
			}
			for _, b := range out.Bundles {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tstart=%s\t%s\n", b.ID, b.Status, b.StartDate, b.CreatedAt.Format("2006-01-02"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&cached, "cached", false, "read the local copy without contacting the backend")
	return cmd
}

func newPlanCmd(load loadFn) *cobra.Command {
	var bundleID int64
	var week int
	cmd := &cobra.Command{
		Use:   "plan --id <bundle-id>",
		Short: "Show one plan bundle's schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bundleID == 0 {
				return fmt.Errorf("--id is required")
			}
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.Plans.Get(context.Background(), bundleID)
			if err != nil {
				return err
			}
			bundle := out.Bundle
			if bundle.WorkoutPlan == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bundle %d (%s): no workout plan attached\n", bundle.ID, bundle.Status)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bundle %d (%s)\n", bundle.ID, bundle.Status)
			if bundle.WorkoutPlan.Summary != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), bundle.WorkoutPlan.Summary)
			}
			schedule, err := plandomain.ParseSchedule(bundle.WorkoutPlan.PlanJSON)
			if err != nil {
				return err
			}
			for _, w := range schedule.Weeks {
				if week > 0 && w.WeekNumber != week {
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "week %d\n", w.WeekNumber)
				for _, day := range w.Days {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  day %d %s\n", day.DayNumber, day.Focus)
					for _, ex := range day.Exercises {
						_, _ = fmt.Fprintf(cmd.OutOrStdout(), "    %s %dx%s rest %s\n", ex.Name, ex.Sets, ex.Reps, ex.Rest)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&bundleID, "id", 0, "plan bundle id")
	cmd.Flags().IntVar(&week, "week", 0, "only show this week")
	return cmd
}

func newCompleteCmd(load loadFn) *cobra.Command {
	var bundleID int64
	var week, day, sets int
	var exercise string
	cmd := &cobra.Command{
		Use:   "complete --id <bundle-id> --week <n> --day <n> --exercise <name>",
		Short: "Toggle an exercise completion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bundleID == 0 || week == 0 || day == 0 || strings.TrimSpace(exercise) == "" {
				return fmt.Errorf("--id, --week, --day, and --exercise are required")
			}
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := currentUser(app)
			if err != nil {
				return err
			}
			out, err := app.Plans.ToggleCompletion(context.Background(), identity.UserID, plandomain.Completion{
				PlanBundleID:  bundleID,
				WeekNumber:    week,
				DayNumber:     day,
				ExerciseName:  exercise,
				SetsCompleted: sets,
			})
			if err != nil {
				return err
			}
			state := "undone"
			if out.Completed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", exercise, state)
			return nil
		},
	}
	cmd.Flags().Int64Var(&bundleID, "id", 0, "plan bundle id")
	cmd.Flags().IntVar(&week, "week", 0, "week number")
	cmd.Flags().IntVar(&day, "day", 0, "day number")
	cmd.Flags().StringVar(&exercise, "exercise", "", "exercise name")
	cmd.Flags().IntVar(&sets, "sets", 0, "sets completed (optional)")
	return cmd
}

func newStatsCmd(load loadFn) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show workout completion stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := currentUser(app)
			if err != nil {
				return err
			}
			stats, err := app.Plans.Stats(context.Background(), identity.UserID, period)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "period: %s\nworkouts completed: %d\ncalories burned: %d\nminutes exercised: %d\n",
				stats.Period, stats.WorkoutsCompleted, stats.CaloriesBurned, stats.MinutesExercised)
			return nil
		},
	}
	cmd.Flags().StringVar(&period, "period", "week", "stats period: week|month|all")
	return cmd
}

func newPrefsCmd(load loadFn) *cobra.Command {
	return &cobra.Command{
		Use:   "prefs",
		Short: "Show stored fitness preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := currentUser(app)
			if err != nil {
				return err
			}
			out, err := app.Prefs.Get(context.Background(), identity.UserID)
			if err != nil {
				return err
			}
			if !out.Found {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no preferences yet; run `fitfusion tui` to complete the wizard")
				return nil
			}
			p := out.Preferences
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal: %s\nexperience: %s\nlocation: %s\nfrequency: %d days/week\nduration: %d weeks\ndiet: %s\n",
				p.Goal, p.ExperienceLevel, p.WorkoutLocation, p.FrequencyPerWeek, p.DurationWeeks, p.DietaryPreference)
			if len(p.EquipmentList) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "equipment: %s\n", strings.Join(p.EquipmentList, ", "))
			}
			if len(p.TargetMuscles) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "target muscles: %s\n", strings.Join(p.TargetMuscles, ", "))
			}
			return nil
		},
	}
}

func newProfileCmd(load loadFn) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user's profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := currentUser(app)
			if err != nil {
				return err
			}
			out, err := app.Prefs.Profile(context.Background(), identity.UserID)
			if err != nil {
				return err
			}
			p := out.Profile
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\nemail: %s\nage: %d\nweight: %.1f kg\nheight: %.1f cm\ngender: %s\n",
				p.Name, p.Email, p.Age, p.Weight, p.Height, p.Gender)
			if p.CreatedAt != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "member since: %s\n", p.CreatedAt)
			}
			return nil
		},
	}

	var name, gender, currentPassword, newPassword string
	var age int
	var weight, height float64
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile details, optionally changing the password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			identity, err := currentUser(app)
			if err != nil {
				return err
			}
			ctx := context.Background()
			current, err := app.Prefs.Profile(ctx, identity.UserID)
			if err != nil {
				return err
			}
			// Unset flags keep the stored value so a partial edit never
			// blanks the rest of the record.
			edit := prefsdomain.ProfileUpdate{
				Name:            current.Profile.Name,
				Age:             current.Profile.Age,
				Weight:          current.Profile.Weight,
				Height:          current.Profile.Height,
				Gender:          current.Profile.Gender,
				CurrentPassword: currentPassword,
				NewPassword:     newPassword,
			}
			if cmd.Flags().Changed("name") {
				edit.Name = name
			}
			if cmd.Flags().Changed("age") {
				edit.Age = age
			}
			if cmd.Flags().Changed("weight") {
				edit.Weight = weight
			}
			if cmd.Flags().Changed("height") {
				edit.Height = height
			}
			if cmd.Flags().Changed("gender") {
				edit.Gender = gender
			}
			out, err := app.Prefs.UpdateProfile(ctx, identity.UserID, edit)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile updated: %s, age %d, %.1f kg, %.1f cm\n",
				out.Profile.Name, out.Profile.Age, out.Profile.Weight, out.Profile.Height)
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "display name")
	update.Flags().IntVar(&age, "age", 0, "age in years")
	update.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	update.Flags().Float64Var(&height, "height", 0, "height in cm")
	update.Flags().StringVar(&gender, "gender", "", "gender: male|female|other")
	update.Flags().StringVar(&currentPassword, "current-password", "", "current password (required when changing the password)")
	update.Flags().StringVar(&newPassword, "new-password", "", "new password (min 6 characters)")
	profile.AddCommand(update)
	return profile
}

func newExerciseCmd(load loadFn) *cobra.Command {
	exercise := &cobra.Command{Use: "exercise", Short: "Exercise catalog commands"}

	exercise.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog exercises",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			exercises, err := app.Catalog.Exercises(context.Background())
			if err != nil {
				return err
			}
			for _, e := range exercises {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.MuscleGroup, e.Difficulty)
			}
			return nil
		},
	})

	exercise.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show one exercise by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			e, err := app.Catalog.ExerciseByName(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\nmuscle group: %s\ndifficulty: %s\nequipment: %s\n",
				e.Name, e.MuscleGroup, e.Difficulty, e.Equipment)
			if e.Description != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), e.Description)
			}
			if e.VideoURL != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "video: %s\n", e.VideoURL)
			}
			return nil
		},
	})

	return exercise
}

func newFoodsCmd(load loadFn) *cobra.Command {
	return &cobra.Command{
		Use:   "foods",
		Short: "List cached food items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			foods, err := app.Catalog.Foods(context.Background())
			if err != nil {
				return err
			}
			if len(foods) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no food items cached")
				return nil
			}
			for _, f := range foods {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.0f kcal/100g\n", f.ID, f.Name, f.Category, f.CaloriesPer100g)
			}
			return nil
		},
	}
}

func newAdminCmd(load loadFn) *cobra.Command {
	admin := &cobra.Command{Use: "admin", Short: "Administration commands"}

	admin.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show platform totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			stats, err := app.Admin.Stats(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "users: %d\nexercises: %d\nfood items: %d\nplans: %d\ncompletions: %d\n",
				stats.TotalUsers, stats.TotalExercises, stats.TotalFoodItems, stats.TotalPlans, stats.TotalCompletions)
			for group, count := range stats.ExercisesByMuscleGroup {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", group, count)
			}
			return nil
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "engagement",
		Short: "Show user engagement analytics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			e, err := app.Admin.Engagement(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "users: %d\nwith plans: %d\nactive: %d\nengagement: %.1f%%\n",
				e.TotalUsers, e.UsersWithPlans, e.ActiveUsers, e.EngagementRate)
			return nil
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "popular",
		Short: "Show most completed exercises",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			exercises, err := app.Admin.PopularExercises(context.Background())
			if err != nil {
				return err
			}
			for _, p := range exercises {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", p.Name, p.Count)
			}
			return nil
		},
	})

	users := &cobra.Command{Use: "users", Short: "Manage user accounts"}
	users.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			list, err := app.Admin.ListUsers(context.Background())
			if err != nil {
				return err
			}
			for _, u := range list {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			}
			return nil
		},
	})

	var roleUserID int64
	var role string
	setRole := &cobra.Command{
		Use:   "role --user <id> --role <USER|ADMIN>",
		Short: "Change a user's role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if roleUserID == 0 || role == "" {
				return fmt.Errorf("--user and --role are required")
			}
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			u, err := app.Admin.SetRole(context.Background(), roleUserID, role)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", u.Email, u.Role)
			return nil
		},
	}
	setRole.Flags().Int64Var(&roleUserID, "user", 0, "user id")
	setRole.Flags().StringVar(&role, "role", "", "new role")
	users.AddCommand(setRole)

	var deleteUserID int64
	deleteUser := &cobra.Command{
		Use:   "delete --user <id>",
		Short: "Delete a user account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if deleteUserID == 0 {
				return fmt.Errorf("--user is required")
			}
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.Admin.DeleteUser(context.Background(), deleteUserID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user %d deleted\n", deleteUserID)
			return nil
		},
	}
	deleteUser.Flags().Int64Var(&deleteUserID, "user", 0, "user id")
	users.AddCommand(deleteUser)
	admin.AddCommand(users)

	admin.AddCommand(newAdminContentCmd(load))

	rag := &cobra.Command{Use: "rag", Short: "Plan-generation knowledge base"}
	rag.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show vector store health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			status, err := app.Admin.RAGStatus(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "status: %s\nvectors: %d\nlast indexed: %s\n",
				status.Status, status.VectorCount, status.LastIndexedAt)
			return nil
		},
	})
	var reindexMode string
	reindex := &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the knowledge base index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			result, err := app.Admin.Reindex(context.Background(), reindexMode)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", result.Status, result.Message)
			return nil
		},
	}
	reindex.Flags().StringVar(&reindexMode, "mode", "full", "reindex mode: full|incremental")
	rag.AddCommand(reindex)
	admin.AddCommand(rag)

	return admin
}

func newAdminContentCmd(load loadFn) *cobra.Command {
	content := &cobra.Command{Use: "content", Short: "Manage catalog content"}

	var exercisesFile string
	importExercises := &cobra.Command{
		Use:   "import-exercises --file <path>",
		Short: "Bulk create exercises from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if exercisesFile == "" {
				return fmt.Errorf("--file is required")
			}
			raw, err := os.ReadFile(exercisesFile)
			if err != nil {
				return err
			}
			var exercises []catalogdomain.Exercise
			if err := json.Unmarshal(raw, &exercises); err != nil {
				return fmt.Errorf("parse %s: %w", exercisesFile, err)
			}
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			result, err := app.Admin.BulkCreateExercises(context.Background(), exercises)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d created)\n", result.Message, result.Count)
			return nil
		},
	}
	importExercises.Flags().StringVar(&exercisesFile, "file", "", "JSON array of exercises")
	content.AddCommand(importExercises)

	var foodsFile string
	importFoods := &cobra.Command{
		Use:   "import-foods --file <path>",
		Short: "Bulk create food items from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if foodsFile == "" {
				return fmt.Errorf("--file is required")
			}
			raw, err := os.ReadFile(foodsFile)
			if err != nil {
				return err
			}
			var foods []catalogdomain.Food
			if err := json.Unmarshal(raw, &foods); err != nil {
				return fmt.Errorf("parse %s: %w", foodsFile, err)
			}
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			result, err := app.Admin.BulkCreateFoods(context.Background(), foods)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d created)\n", result.Message, result.Count)
			return nil
		},
	}
	importFoods.Flags().StringVar(&foodsFile, "file", "", "JSON array of food items")
	content.AddCommand(importFoods)

	var exerciseID, foodID int64
	deleteExercise := &cobra.Command{
		Use:   "delete-exercise --id <id>",
		Short: "Delete a catalog exercise",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if exerciseID == 0 {
				return fmt.Errorf("--id is required")
			}
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.Admin.DeleteExercise(context.Background(), exerciseID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exercise %d deleted\n", exerciseID)
			return nil
		},
	}
	deleteExercise.Flags().Int64Var(&exerciseID, "id", 0, "exercise id")
	content.AddCommand(deleteExercise)

	deleteFood := &cobra.Command{
		Use:   "delete-food --id <id>",
		Short: "Delete a food item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if foodID == 0 {
				return fmt.Errorf("--id is required")
			}
			app, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.Admin.DeleteFood(context.Background(), foodID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "food item %d deleted\n", foodID)
			return nil
		},
	}
	deleteFood.Flags().Int64Var(&foodID, "id", 0, "food id")
	content.AddCommand(deleteFood)

	return content
}
