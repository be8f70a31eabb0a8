// Copyright 2026 Lumibase Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage organization members",
}

var listMembersCmd = &cobra.Command{
	Use:   "list [organization-uuid]",
	Short: "List members of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		limit, _ := cmd.Flags().GetInt64("include-groups")
		if cmd.Flags().Changed("include-groups") {
			members, err := client.ListMembersWithGroups(context.Background(), args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "USER_UUID\tEMAIL\tROLE\tGROUPS")
			for _, m := range members {
				names := make([]string, 0, len(m.Groups))
				for _, g := range m.Groups {
					names = append(names, g.Name)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.UserUUID, m.Email, m.Role, strings.Join(names, ","))
			}
			w.Flush()
			return nil
		}

		members, err := client.ListMembers(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_UUID\tEMAIL\tROLE\tACTIVE\tINVITE_EXPIRED")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%v\n", m.UserUUID, m.Email, m.Role, m.IsActive, m.IsInviteExpired)
		}
		w.Flush()
		return nil
	},
}

var listAdminsCmd = &cobra.Command{
	Use:   "admins [organization-uuid]",
	Short: "List admins of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		admins, err := client.ListAdmins(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to list admins: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_UUID\tEMAIL")
		for _, m := range admins {
			fmt.Fprintf(w, "%s\t%s\n", m.UserUUID, m.Email)
		}
		w.Flush()
		return nil
	},
}

var getMemberCmd = &cobra.Command{
	Use:   "get [organization-uuid] [user-uuid]",
	Short: "Get a single organization member",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		member, err := client.GetMember(context.Background(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}

		fmt.Printf("User: %s %s <%s>\n", member.FirstName, member.LastName, member.Email)
		fmt.Printf("Role: %s\n", member.Role)
		fmt.Printf("Active: %v\n", member.IsActive)
		fmt.Printf("Invite expired: %v\n", member.IsInviteExpired)
		return nil
	},
}

var addMemberCmd = &cobra.Command{
	Use:   "add [organization-uuid] [user-uuid] [role]",
	Short: "Add a user to an organization",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		member, err := client.CreateMembership(context.Background(), args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		fmt.Printf("Member added: %s (Role: %s)\n", member.UserUUID, member.Role)
		return nil
	},
}

var updateMemberRoleCmd = &cobra.Command{
	Use:   "update-role [organization-uuid] [user-uuid] [role]",
	Short: "Update a member's role",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newMemberClient()

		member, err := client.UpdateMemberRole(context.Background(), args[0], args[1], args[2])
		if err != nil {
			return fmt.Errorf("failed to update member role: %w", err)
		}

		fmt.Printf("Member updated: %s (Role: %s)\n", member.UserUUID, member.Role)
		return nil
	},
}

func init() {
	listMembersCmd.Flags().Int64("include-groups", 0, "Include group memberships, bounding the member count (0 = unbounded)")

	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(listAdminsCmd)
	membersCmd.AddCommand(getMemberCmd)
	membersCmd.AddCommand(addMemberCmd)
	membersCmd.AddCommand(updateMemberRoleCmd)
	rootCmd.AddCommand(membersCmd)
}
