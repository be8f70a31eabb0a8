// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "Manage organizations",
}

var createOrgCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		org, err := client.CreateOrganization(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		fmt.Printf("Organization created: %s (%s)\n", org.Name, org.UUID)
		return nil
	},
}

var getOrgCmd = &cobra.Command{
	Use:   "get [organization-uuid]",
	Short: "Get an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		org, err := client.GetOrganization(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get organization: %w", err)
		}

		fmt.Printf("Name: %s\n", org.Name)
		fmt.Printf("UUID: %s\n", org.UUID)
		fmt.Printf("Created: %s\n", org.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage organization groups",
}

var createGroupCmd = &cobra.Command{
	Use:   "create [organization-uuid] [name]",
	Short: "Create a group within an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		group, err := client.CreateGroup(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}

		fmt.Printf("Group created: %s (%s)\n", group.Name, group.UUID)
		return nil
	},
}

var addGroupMemberCmd = &cobra.Command{
	Use:   "add-member [group-uuid] [user-uuid]",
	Short: "Add a user to a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		if err := client.AddGroupMember(context.Background(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to add group member: %w", err)
		}

		fmt.Printf("User %s added to group %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	orgsCmd.AddCommand(createOrgCmd)
	orgsCmd.AddCommand(getOrgCmd)
	rootCmd.AddCommand(orgsCmd)

	groupsCmd.AddCommand(createGroupCmd)
	groupsCmd.AddCommand(addGroupMemberCmd)
	rootCmd.AddCommand(groupsCmd)
}
