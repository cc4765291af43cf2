package cli

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ayushs57139/jobportal-go/internal/api"
)

func newApplyCmd(app *App) *cobra.Command {
	var coverLetter, resumeURL string

	cmd := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(cmd); err != nil {
				return err
			}

			job, res := app.jobs.FetchJobByID(cmd.Context(), args[0])
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}

			res = app.jobs.ApplyForJob(cmd.Context(), api.ApplyRequest{
				JobID:       args[0],
				CoverLetter: coverLetter,
				ResumeURL:   resumeURL,
			})
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}

			// Mirror the application locally so `applications --offline`
			// still shows it without the backend.
			if _, err := app.device.TrackJob(job.ID, job.Title, job.Company.Name, "applied"); err != nil {
				slog.Debug("offline mirror failed", slog.Any("error", err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Application submitted.")
			return nil
		},
	}
	cmd.Flags().StringVar(&coverLetter, "cover-letter", "", "cover letter text")
	cmd.Flags().StringVar(&resumeURL, "resume", "", "resume URL")
	return cmd
}

func newApplicationsCmd(app *App) *cobra.Command {
	var page int
	var offline bool

	cmd := &cobra.Command{
		Use:   "applications",
		Short: "Track your applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if offline {
				return printOfflineApplications(cmd, app)
			}

			if err := app.requireAuth(cmd); err != nil {
				return err
			}
			res := app.jobs.FetchMyApplications(cmd.Context(), page)
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}

			st := app.jobs.State()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tCOMPANY\tSTATUS\tAPPLIED")
			for _, a := range st.Applications {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Job.Title, a.Job.Company.Name, a.Status, a.AppliedAt)
			}
			w.Flush()
			if st.Pagination.TotalPages > 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d\n", st.Pagination.CurrentPage, st.Pagination.TotalPages)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&offline, "offline", false, "show the locally tracked applications instead")
	return cmd
}

func printOfflineApplications(cmd *cobra.Command, app *App) error {
	jobs, err := app.device.TrackedJobs(0)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tJOB\tCOMPANY\tSTATUS\tUPDATED")
	for _, j := range jobs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Company, j.Status, j.UpdatedAt)
	}
	return w.Flush()
}
