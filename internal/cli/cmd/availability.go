package cmd

import (
	"fmt"

	"github.com/connorholly11/friend-meetup/internal/cli/api"
	"github.com/connorholly11/friend-meetup/internal/cli/output"
	"github.com/spf13/cobra"
)

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Manage weekly availability slots",
}

var slotAddCmd = &cobra.Command{
	Use:   "add <group-id> <day> <start> <end>",
	Short: "Add a weekly slot, e.g. \"slot add 1 Friday 18:00 21:00\"",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		body := map[string]string{
			"dayOfWeek": args[1],
			"startTime": args[2],
			"endTime":   args[3],
		}
		var resp api.Response[api.Slot]
		if err := apiClient.Post(fmt.Sprintf("/groups/%d/slots", groupID), body, &resp); err != nil {
			return fmt.Errorf("adding slot: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Added slot %d: %s %s-%s", resp.Data.ID, resp.Data.DayOfWeek, resp.Data.StartTime, resp.Data.EndTime)
		return nil
	},
}

var slotListCmd = &cobra.Command{
	Use:     "list <group-id>",
	Aliases: []string{"ls"},
	Short:   "List a group's slots",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID, err := parseIDArg("group id", args[0])
		if err != nil {
			return err
		}

		var resp api.Response[[]api.Slot]
		if err := apiClient.Get(fmt.Sprintf("/groups/%d/slots", groupID), nil, &resp); err != nil {
			return fmt.Errorf("listing slots: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.SlotTable(resp.Data)
		return nil
	},
}

var slotMarkCmd = &cobra.Command{
	Use:   "mark <slot-id>",
	Short: "Mark yourself available for a slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slotID, err := parseIDArg("slot id", args[0])
		if err != nil {
			return err
		}

		var resp api.Response[map[string]uint]
		if err := apiClient.Post(fmt.Sprintf("/slots/%d/availability", slotID), struct{}{}, &resp); err != nil {
			return fmt.Errorf("marking availability: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.Message("Marked available for slot %d", slotID)
		return nil
	},
}

var slotWhoCmd = &cobra.Command{
	Use:   "who <slot-id>",
	Short: "List the users available for a slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slotID, err := parseIDArg("slot id", args[0])
		if err != nil {
			return err
		}

		var resp api.Response[[]uint]
		if err := apiClient.Get(fmt.Sprintf("/slots/%d/availability", slotID), nil, &resp); err != nil {
			return fmt.Errorf("listing available users: %w", err)
		}

		if flagJSON {
			output.JSON(resp.Data)
			return nil
		}
		output.UserIDs(resp.Data, "Nobody is available yet.")
		return nil
	},
}

func init() {
	requireSession(slotAddCmd, slotListCmd, slotMarkCmd, slotWhoCmd)
	slotCmd.AddCommand(slotAddCmd, slotListCmd, slotMarkCmd, slotWhoCmd)
	rootCmd.AddCommand(slotCmd)
}
