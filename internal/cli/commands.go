package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"seminarhub/internal/domain"
)

type seminarFlags struct {
	title       string
	description string
	date        string
	time        string
	photo       string
}

func (f *seminarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Seminar title")
	cmd.Flags().StringVar(&f.description, "description", "", "Seminar description")
	cmd.Flags().StringVar(&f.date, "date", "", "Date, free text (e.g. 2025-03-14)")
	cmd.Flags().StringVar(&f.time, "time", "", "Time, free text (e.g. 18:30)")
	cmd.Flags().StringVar(&f.photo, "photo", "", "Photo URL or path")
}

// apply copies every flag the user set onto s; unset flags keep s's value.
func (f *seminarFlags) apply(cmd *cobra.Command, s *domain.Seminar) {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("title", &s.Title, f.title)
	set("description", &s.Description, f.description)
	set("date", &s.Date, f.date)
	set("time", &s.Time, f.time)
	set("photo", &s.Photo, f.photo)
}

func newListCmd(api func() SeminarAPI) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List seminars",
		Long: `List all seminars in stored order.

Examples:
  # Everything
  seminarctl list

  # Only seminars mentioning "go" in the title or description
  seminarctl list --query go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seminars, err := api().ListSeminars(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(seminars) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No seminars found.")
				return nil
			}
			printSeminarsTable(cmd.OutOrStdout(), seminars)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by text in title or description")
	return cmd
}

func newGetCmd(api func() SeminarAPI) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one seminar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			s, err := api().GetSeminar(cmd.Context(), id)
			if err != nil {
				return notFound(err, id)
			}
			printSeminar(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newCreateCmd(api func() SeminarAPI) *cobra.Command {
	var f seminarFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a seminar",
		Long: `Create a seminar. The server assigns the id.

Example:
  seminarctl create --title "Intro to Go" --date 2025-03-14 --time 18:30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Seminar{}
			f.apply(cmd, s)
			created, err := api().CreateSeminar(cmd.Context(), s)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created seminar %d\n", created.ID)
			printSeminar(cmd.OutOrStdout(), created)
			return nil
		},
	}
	f.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newUpdateCmd(api func() SeminarAPI) *cobra.Command {
	var f seminarFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a seminar",
		Long: `Update a seminar. The current record is fetched first and only the
fields given as flags are changed; the full record is then sent back.

Example:
  seminarctl update 3 --time 19:00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			client := api()
			current, err := client.GetSeminar(cmd.Context(), id)
			if err != nil {
				return notFound(err, id)
			}
			f.apply(cmd, current)
			current.ID = id
			updated, err := client.UpdateSeminar(cmd.Context(), current)
			if err != nil {
				return notFound(err, id)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated seminar %d\n", updated.ID)
			printSeminar(cmd.OutOrStdout(), updated)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newDeleteCmd(api func() SeminarAPI) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a seminar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseID(args[0])
			if err != nil {
				return err
			}
			client := api()
			if !yes {
				s, err := client.GetSeminar(cmd.Context(), id)
				if err != nil {
					return notFound(err, id)
				}
				prompt := fmt.Sprintf("Delete seminar %d %q? [y/N]: ", id, s.Title)
				if !promptConfirm(cmd, prompt) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := client.DeleteSeminar(cmd.Context(), id); err != nil {
				return notFound(err, id)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted seminar %d\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func notFound(err error, id int64) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("seminar %d not found", id)
	}
	return err
}
