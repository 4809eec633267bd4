package cmd

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/connorholly11/friend-meetup/internal/cli/api"
	"github.com/connorholly11/friend-meetup/internal/cli/output"
	"github.com/spf13/cobra"
)

var (
	flagPage             int
	flagLimit            int
	flagInvitationStatus string
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Create and inspect groups",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a group owned by you",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp api.Response[api.Group]
		if err := apiClient.Post("/groups", map[string]string{"name": args[0]}, &resp); err != nil {
			return fmt.Errorf("creating group: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Created group %q (id %d)", resp.Data.Name, resp.Data.ID)
		return nil
	},
}

var groupListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := url.Values{}
		if flagPage > 0 {
			params.Set("page", strconv.Itoa(flagPage))
		}
		if flagLimit > 0 {
			params.Set("limit", strconv.Itoa(flagLimit))
		}

		var resp api.Response[[]api.Group]
		if err := apiClient.Get("/groups", params, &resp); err != nil {
			return fmt.Errorf("listing groups: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.GroupTable(resp.Data)
		if resp.Pagination != nil && resp.Pagination.TotalPages > 1 {
			output.Message("\nPage %d of %d (%d groups)", resp.Pagination.Page, resp.Pagination.TotalPages, resp.Pagination.Total)
		}
		return nil
	},
}

var groupShowCmd = &cobra.Command{
	Use:   "show <group-id>",
	Short: "Show a group and its recent activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		var groupResp api.Response[api.Group]
		if err := apiClient.Get(fmt.Sprintf("/groups/%d", groupID), nil, &groupResp); err != nil {
			return fmt.Errorf("fetching group: %w", err)
		}

		var activityResp api.Response[[]api.ActivityEntry]
		if err := apiClient.Get(fmt.Sprintf("/groups/%d/activity", groupID), url.Values{"limit": {"10"}}, &activityResp); err != nil {
			return fmt.Errorf("fetching activity: %w", err)
		}

		if flagJSON {
			output.JSON(map[string]interface{}{
				"group":    groupResp.Data,
				"activity": activityResp.Data,
			})
			return nil
		}
		output.GroupDetail(groupResp.Data, activityResp.Data)
		return nil
	},
}

var inviteCmd = &cobra.Command{
	Use:   "invite <group-id> <user-id>",
	Short: "Invite a user to a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}
		userID, err := parseIDArg("user id", args[1])
		if err != nil {
			return err
		}

		var resp api.Response[api.Invitation]
		if err := apiClient.Post(fmt.Sprintf("/groups/%d/invitations", groupID), map[string]uint{"userId": userID}, &resp); err != nil {
			return fmt.Errorf("sending invitation: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Invited user %d to group %d (invitation %d)", userID, groupID, resp.Data.ID)
		return nil
	},
}

var invitationsCmd = &cobra.Command{
	Use:   "invitations [group-id]",
	Short: "List your invitations, or every invitation of a group",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp api.Response[[]api.Invitation]
		if len(args) == 1 {
			groupID, err := parseIDArg("group id", args[0])
			if err != nil {
				return err
			}
			if err := apiClient.Get(fmt.Sprintf("/groups/%d/invitations", groupID), nil, &resp); err != nil {
				return fmt.Errorf("listing invitations: %w", err)
			}
		} else {
			params := url.Values{}
			if flagInvitationStatus != "" {
				params.Set("status", flagInvitationStatus)
			}
			if err := apiClient.Get("/invitations", params, &resp); err != nil {
				return fmt.Errorf("listing invitations: %w", err)
			}
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.InvitationTable(resp.Data)
		return nil
	},
}

var respondCmd = &cobra.Command{
	Use:       "respond <invitation-id> accepted|denied",
	Short:     "Accept or deny an invitation",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"accepted", "denied"},
	RunE: func(cmd *cobra.Command, args []string) error {
		invitationID, err := parseIDArg("invitation id", args[0])
		if err != nil {
			return err
		}
		status, err := parseResponseStatus(args[1])
		if err != nil {
			return err
		}

		var resp api.Response[api.Invitation]
		if err := apiClient.Put(fmt.Sprintf("/invitations/%d", invitationID), map[string]string{"status": status}, &resp); err != nil {
			return fmt.Errorf("responding to invitation: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Invitation %d is now %s", resp.Data.ID, resp.Data.Status)
		return nil
	},
}

func init() {
	groupListCmd.Flags().IntVar(&flagPage, "page", 0, "Page number")
	groupListCmd.Flags().IntVar(&flagLimit, "limit", 0, "Groups per page")
	invitationsCmd.Flags().StringVar(&flagInvitationStatus, "status", "", "Filter your invitations by status (pending, accepted, denied)")

	requireSession(groupCreateCmd, groupListCmd, groupShowCmd, inviteCmd, invitationsCmd, respondCmd)
	groupCmd.AddCommand(groupCreateCmd, groupListCmd, groupShowCmd)
	rootCmd.AddCommand(groupCmd, inviteCmd, invitationsCmd, respondCmd)
}

// parseResponseStatus accepts the short forms "accept" and "deny" too.
func parseResponseStatus(value string) (string, error) {
	switch value {
	case "accepted", "accept":
		return "accepted", nil
	case "denied", "deny":
		return "denied", nil
	}
	return "", fmt.Errorf("invalid response %q: use accepted or denied", value)
}
