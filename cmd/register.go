// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumibase/member-service/pkg/registration"
)

type submissionState string

const (
	stateIdle       submissionState = "idle"
	stateSubmitting submissionState = "submitting"
	stateSuccess    submissionState = "success"
	stateError      submissionState = "error"
)

// submission tracks a sign-up attempt through idle, submitting and a terminal
// success or error state. A failed attempt may be resubmitted; a successful
// one may not. There is no automatic retry.
type submission struct {
	state submissionState
	err   error
}

func newSubmission() *submission {
	return &submission{state: stateIdle}
}

func (s *submission) State() submissionState {
	return s.state
}

func (s *submission) Err() error {
	return s.err
}

func (s *submission) Submit(ctx context.Context, fn func(context.Context) error) error {
	switch s.state {
	case stateIdle, stateError:
	default:
		return fmt.Errorf("cannot submit from state %q", s.state)
	}

	s.state = stateSubmitting
	s.err = nil

	if err := fn(ctx); err != nil {
		s.state = stateError
		s.err = err
		return err
	}

	s.state = stateSuccess
	return nil
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Long:  `Register a new user with the password sign-up path, after checking which paths the server offers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()
		ctx := context.Background()

		options, err := client.SignupOptions(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch sign-up options: %w", err)
		}

		if !options.PasswordEnabled {
			for _, p := range options.Providers {
				fmt.Printf("Sign up with %s: %s\n", p.Name, p.SignInURL)
			}
			return fmt.Errorf("password sign-up is disabled, use a listed provider")
		}

		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		sub := newSubmission()
		err = sub.Submit(ctx, func(ctx context.Context) error {
			user, err := client.RegisterUser(ctx, &registration.RegisterUserRequest{
				FirstName: firstName,
				LastName:  lastName,
				Email:     email,
				Password:  password,
			})
			if err != nil {
				return err
			}
			fmt.Printf("User registered: %s <%s>\n", user.UUID, user.Email)
			return nil
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().String("first-name", "", "First name")
	registerCmd.Flags().String("last-name", "", "Last name")
	registerCmd.Flags().String("email", "", "Email address")
	registerCmd.Flags().String("password", "", "Password")
	_ = registerCmd.MarkFlagRequired("first-name")
	_ = registerCmd.MarkFlagRequired("last-name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
}
