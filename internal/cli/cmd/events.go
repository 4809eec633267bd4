package cmd

import (
	"fmt"

	"github.com/connorholly11/friend-meetup/internal/cli/api"
	"github.com/connorholly11/friend-meetup/internal/cli/output"
	"github.com/spf13/cobra"
)

var flagListAll bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <group-id> [activity]",
	Short: "Suggest an activity, or list suggestions with --list",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		if flagListAll || len(args) == 1 {
			var resp api.Response[[]api.Suggestion]
			if err := apiClient.Get(fmt.Sprintf("/groups/%d/suggestions", groupID), nil, &resp); err != nil {
				return fmt.Errorf("listing suggestions: %w", err)
			}
			if flagJSON {
				output.JSON(resp.Data)
				return nil
			}
			output.SuggestionTable(resp.Data)
			return nil
		}

		var resp api.Response[api.Suggestion]
		if err := apiClient.Post(fmt.Sprintf("/groups/%d/suggestions", groupID), map[string]string{"activity": args[1]}, &resp); err != nil {
			return fmt.Errorf("adding suggestion: %w", err)
		}
		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Suggested %q (id %d)", resp.Data.Activity, resp.Data.ID)
		return nil
	},
}

var voteCmd = &cobra.Command{
	Use:   "vote <suggestion-id> yes|no",
	Short: "Vote on a suggestion; a later vote replaces the earlier one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suggestionID, err := parseIDArg("suggestion id", args[0])
		if err != nil {
			return err
		}
		vote, err := parseVote(args[1])
		if err != nil {
			return err
		}

		var resp api.Response[api.VoteResult]
		if err := apiClient.Post(fmt.Sprintf("/suggestions/%d/votes", suggestionID), map[string]bool{"vote": vote}, &resp); err != nil {
			return fmt.Errorf("voting: %w", err)
		}

		var count api.Response[api.VoteCount]
		if err := apiClient.Get(fmt.Sprintf("/suggestions/%d/votes", suggestionID), nil, &count); err != nil {
			return fmt.Errorf("counting votes: %w", err)
		}

		if flagJSON {
			output.JSON(count.Data)
			return nil
		}
		output.Message("Recorded. Suggestion %d now has %d yes / %d no", suggestionID, count.Data.YesVotes, count.Data.NoVotes)
		return nil
	},
}

var topCmd = &cobra.Command{
	Use:   "top <group-id>",
	Short: "Rank a group's suggestions by votes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		var resp api.Response[[]api.Tally]
		if err := apiClient.Get(fmt.Sprintf("/groups/%d/suggestions/top", groupID), nil, &resp); err != nil {
			return fmt.Errorf("ranking suggestions: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.TallyTable(resp.Data)
		return nil
	},
}

func init() {
	suggestCmd.Flags().BoolVar(&flagListAll, "list", false, "List the group's suggestions instead of adding one")
	requireSession(suggestCmd, voteCmd, topCmd)
	rootCmd.AddCommand(suggestCmd, voteCmd, topCmd)
}

func parseVote(value string) (bool, error) {
	switch value {
	case "yes", "y", "true":
		return true, nil
	case "no", "n", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid vote %q: use yes or no", value)
}
