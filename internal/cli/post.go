package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ayushs57139/jobportal-go/internal/api"
)

func newPostCmd(app *App) *cobra.Command {
	var draft api.JobDraft
	var skills, benefits string
	var remote bool

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a job (employer accounts)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireAuth(cmd); err != nil {
				return err
			}

			draft.Location.IsRemote = remote
			if skills != "" {
				draft.Requirements.Skills = splitList(skills)
			}
			if benefits != "" {
				draft.Benefits = splitList(benefits)
			}

			job, res := app.jobs.PostJob(cmd.Context(), draft)
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Job posted: %s (%s)\n", job.Title, job.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&draft.Title, "title", "", "job title")
	cmd.Flags().StringVar(&draft.Description, "description", "", "job description")
	cmd.Flags().StringVar(&draft.Company.Name, "company", "", "company name")
	cmd.Flags().StringVar(&draft.Location.City, "city", "", "city")
	cmd.Flags().StringVar(&draft.Location.Country, "country", "", "country")
	cmd.Flags().BoolVar(&remote, "remote", false, "remote position")
	cmd.Flags().IntVar(&draft.Salary.Min, "salary-min", 0, "minimum salary")
	cmd.Flags().IntVar(&draft.Salary.Max, "salary-max", 0, "maximum salary")
	cmd.Flags().StringVar(&draft.Salary.Currency, "currency", "USD", "salary currency")
	cmd.Flags().BoolVar(&draft.Salary.IsNegotiable, "negotiable", false, "salary is negotiable")
	cmd.Flags().StringVar(&draft.JobType, "job-type", "full-time", "job type")
	cmd.Flags().StringVar(&draft.WorkMode, "work-mode", "onsite", "work mode")
	cmd.Flags().StringVar(&skills, "skills", "", "comma-separated required skills")
	cmd.Flags().StringVar(&benefits, "benefits", "", "comma-separated benefits")
	return cmd
}

func newMyJobsCmd(app *App) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "my-jobs",
		Short: "List your posted jobs (employer accounts)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireAuth(cmd); err != nil {
				return err
			}

			params := url.Values{
				"page":  {strconv.Itoa(page)},
				"limit": {"20"},
			}
			list, err := app.client.MyJobs(cmd.Context(), params)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tVIEWS\tAPPLICATIONS")
			for _, j := range list.Jobs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", j.ID, j.Title, j.Status, j.Views, j.ApplicationsCount)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
