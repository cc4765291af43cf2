package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ayushs57139/jobportal-go/internal/api"
	"github.com/Ayushs57139/jobportal-go/internal/state"
)

func newJobsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and search job listings",
	}
	cmd.AddCommand(newJobsListCmd(app), newJobsSearchCmd(app), newJobsShowCmd(app))
	return cmd
}

func filterFlags(cmd *cobra.Command, f *state.Filters) {
	cmd.Flags().StringVar(&f.Search, "search", "", "keyword search")
	cmd.Flags().StringVar(&f.Location, "location", "", "city or region")
	cmd.Flags().StringVar(&f.JobType, "job-type", "", "full-time, part-time, contract")
	cmd.Flags().StringVar(&f.WorkMode, "work-mode", "", "onsite, hybrid, remote")
	cmd.Flags().StringVar(&f.MinSalary, "min-salary", "", "minimum salary")
	cmd.Flags().StringVar(&f.MaxSalary, "max-salary", "", "maximum salary")
	cmd.Flags().StringVar(&f.Experience, "experience", "", "experience level")
	cmd.Flags().StringVar(&f.Skills, "skills", "", "comma-separated skills")
}

func newJobsListCmd(app *App) *cobra.Command {
	var filters state.Filters
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs (page > 1 appends to the current result window)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := app.jobs.FetchJobs(cmd.Context(), state.FetchOptions{Page: page, Overrides: filters})
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}
			printJobs(cmd, app.jobs.State())
			return nil
		},
	}
	filterFlags(cmd, &filters)
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func newJobsSearchCmd(app *App) *cobra.Command {
	var filters state.Filters

	cmd := &cobra.Command{
		Use:   "search [keywords]",
		Short: "Start a fresh search (always resets to page 1)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				filters.Search = strings.Join(args, " ")
			}
			res := app.jobs.SearchJobs(cmd.Context(), filters)
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}
			printJobs(cmd, app.jobs.State())
			return nil
		},
	}
	filterFlags(cmd, &filters)
	return cmd
}

func newJobsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a single job listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, res := app.jobs.FetchJobByID(cmd.Context(), args[0])
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}
			printJobDetail(cmd, job)
			return nil
		},
	}
}

func newSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <query>",
		Short: "Search suggestions for a partial query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggestions, res := app.jobs.GetSearchSuggestions(cmd.Context(), args[0])
			if !res.OK {
				// Suggestions are non-critical: print nothing, exit clean.
				return nil
			}
			for _, s := range suggestions {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}

func printJobs(cmd *cobra.Command, st state.JobState) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tSALARY")
	for _, j := range st.Jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Company.Name, locationLine(j), salaryLine(j.Salary))
	}
	w.Flush()
	if st.Pagination.TotalPages > 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d jobs total)\n",
			st.Pagination.CurrentPage, st.Pagination.TotalPages, st.Pagination.Total)
	}
}

func printJobDetail(cmd *cobra.Command, j *api.Job) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s | %s\n", j.Title, j.Company.Name)
	fmt.Fprintf(out, "Location: %s · %s · %s\n", locationLine(*j), j.JobType, j.WorkMode)
	fmt.Fprintf(out, "Salary: %s\n", salaryLine(j.Salary))
	if len(j.Requirements.Skills) > 0 {
		fmt.Fprintf(out, "Skills: %s\n", strings.Join(j.Requirements.Skills, ", "))
	}
	if len(j.Benefits) > 0 {
		fmt.Fprintf(out, "Benefits: %s\n", strings.Join(j.Benefits, ", "))
	}
	fmt.Fprintf(out, "\n%s\n", j.Description)
	fmt.Fprintf(out, "\n%d views · %d applications\n", j.Views, j.ApplicationsCount)
}

func locationLine(j api.Job) string {
	if j.Location.IsRemote {
		return "Remote"
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{j.Location.City, j.Location.State, j.Location.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func salaryLine(s api.Salary) string {
	if s.Min == 0 && s.Max == 0 {
		if s.IsNegotiable {
			return "negotiable"
		}
		return "-"
	}
	cur := s.Currency
	if cur == "" {
		cur = "USD"
	}
	line := fmt.Sprintf("%d–%d %s", s.Min, s.Max, cur)
	if s.IsNegotiable {
		line += " (negotiable)"
	}
	return line
}
