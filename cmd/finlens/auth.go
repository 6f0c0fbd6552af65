package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finlens/finlens/internal/cli"
	"github.com/finlens/finlens/internal/config"
	"github.com/finlens/finlens/internal/format"
	"github.com/finlens/finlens/internal/session"
	"github.com/finlens/finlens/internal/validate"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and save the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if !validate.Email(email) {
				return fmt.Errorf("%q is not a valid email address", email)
			}

			password, err := cli.ReadPassword("Password: ")
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("password cannot be empty")
			}

			client, store, err := initClient()
			if err != nil {
				return err
			}

			token, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if err := store.Save(session.State{
				Token:   token.AccessToken,
				Email:   email,
				SavedAt: time.Now(),
			}); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Logged in as %s", email)))
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the saved session token",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := initSessionStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}

			fmt.Println(cli.InfoStyle.Render("Logged out."))
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var (
		fullName  string
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]
			if !validate.Email(email) {
				return fmt.Errorf("%q is not a valid email address", email)
			}
			if fullName == "" {
				return fmt.Errorf("--name is required")
			}

			password, err := cli.ReadPassword("Password: ")
			if err != nil {
				return err
			}
			if msg := validate.Password(password); msg != "" {
				return fmt.Errorf("%s", msg)
			}

			client, _, err := initClient()
			if err != nil {
				return err
			}

			user, err := client.Register(cmd.Context(), fullName, email, password, config.ExpandPath(imagePath))
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Account created for %s. Run 'finlens login %s' to sign in.", user.Email, user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "full name for the new account")
	cmd.Flags().StringVar(&imagePath, "image", "", "optional profile image to upload")

	return cmd
}

func uploadImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-image <path>",
		Short: "Replace the profile image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			user, err := client.UploadProfileImage(cmd.Context(), config.ExpandPath(args[0]))
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Profile image updated: " + user.ProfileImage))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := initClient()
			if err != nil {
				return err
			}

			user, err := client.GetUser(cmd.Context())
			if err != nil {
				return err
			}

			initials := format.Initials(user.FullName)
			if initials != "" {
				fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("[%s] %s", initials, user.FullName)))
			} else {
				fmt.Println(cli.TitleStyle.Render(user.FullName))
			}
			fmt.Println(cli.SubtleStyle.Render(user.Email))
			if user.ProfileImage != "" {
				fmt.Println(cli.SubtleStyle.Render("Profile image: " + user.ProfileImage))
			}
			return nil
		},
	}
}
