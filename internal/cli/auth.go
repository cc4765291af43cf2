package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ayushs57139/jobportal-go/internal/api"
)

func newLoginCmd(app *App) *cobra.Command {
	var loginID, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with your email (or phone) and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := app.auth.Login(cmd.Context(), loginID, password)
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}
			st := app.auth.State()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", st.User.FullName(), st.User.UserType)
			return nil
		},
	}
	cmd.Flags().StringVar(&loginID, "email", "", "email or phone")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var req api.RegisterRequest
	var userType string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a jobseeker or employer account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.UserType = api.UserType(userType)
			if req.UserType != api.UserJobseeker && req.UserType != api.UserEmployer {
				return fmt.Errorf("--type must be jobseeker or employer")
			}
			res := app.auth.Register(cmd.Context(), req)
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. You are now logged in.")
			return nil
		},
	}
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&userType, "type", "jobseeker", "account type: jobseeker or employer")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.auth.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireAuth(cmd); err != nil {
				return err
			}
			st := app.auth.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", st.User.FullName(), st.User.Email, st.User.UserType)
			return nil
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your profile",
	}
	cmd.AddCommand(newProfileUpdateCmd(app))
	return cmd
}

// newProfileUpdateCmd is the flag-driven rendition of the mobile app's
// multi-step profile wizard: each step is a flag group and only the
// provided fields are sent.
func newProfileUpdateCmd(app *App) *cobra.Command {
	var firstName, lastName, phone, headline, summary, skills, experience, education string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields (only the flags you pass are changed)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireAuth(cmd); err != nil {
				return err
			}

			fields := map[string]any{}
			set := func(key, val string) {
				if val != "" {
					fields[key] = val
				}
			}
			set("firstName", firstName)
			set("lastName", lastName)
			set("phone", phone)
			set("headline", headline)
			set("summary", summary)
			set("skills", skills)
			set("experience", experience)
			set("education", education)
			if len(fields) == 0 {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			res := app.auth.SaveProfile(cmd.Context(), fields)
			if !res.OK {
				return fmt.Errorf("%s", res.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&headline, "headline", "", "profile headline")
	cmd.Flags().StringVar(&summary, "summary", "", "profile summary")
	cmd.Flags().StringVar(&skills, "skills", "", "comma-separated skills")
	cmd.Flags().StringVar(&experience, "experience", "", "years of experience")
	cmd.Flags().StringVar(&education, "education", "", "highest education")
	return cmd
}
