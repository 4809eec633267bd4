package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/connorholly11/friend-meetup/internal/cli/api"
)

// Out is where every printer writes. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(Out, 0, 0, 2, ' ', 0)
}

// JSON prints v as indented JSON.
func JSON(v interface{}) {
	enc := json.NewEncoder(Out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func Message(format string, args ...interface{}) {
	fmt.Fprintf(Out, format+"\n", args...)
}

func UserInfo(u api.User) {
	w := newTable()
	fmt.Fprintf(w, "Username:\t%s\n", u.Username)
	fmt.Fprintf(w, "ID:\t%d\n", u.ID)
	fmt.Fprintf(w, "Joined:\t%s\n", RelativeTime(u.CreatedAt))
	w.Flush()
}

func GroupTable(groups []api.Group) {
	if len(groups) == 0 {
		Message("No groups found.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tOWNER\tCREATED")
	for _, g := range groups {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", g.ID, g.Name, g.OwnerID, RelativeTime(g.CreatedAt))
	}
	w.Flush()
}

func GroupDetail(g api.Group, activity []api.ActivityEntry) {
	w := newTable()
	fmt.Fprintf(w, "Name:\t%s\n", g.Name)
	fmt.Fprintf(w, "ID:\t%d\n", g.ID)
	fmt.Fprintf(w, "Owner:\t%d\n", g.OwnerID)
	fmt.Fprintf(w, "Created:\t%s\n", g.CreatedAt.Format(time.RFC3339))
	w.Flush()

	if len(activity) == 0 {
		return
	}
	Message("\nRecent activity:")
	w = newTable()
	for _, a := range activity {
		fmt.Fprintf(w, "  %s\t%s\n", a.Action, RelativeTime(a.CreatedAt))
	}
	w.Flush()
}

func InvitationTable(invitations []api.Invitation) {
	if len(invitations) == 0 {
		Message("No invitations found.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tGROUP\tUSER\tSTATUS\tRESPONDED")
	for _, inv := range invitations {
		responded := "-"
		if inv.RespondedAt != nil {
			responded = RelativeTime(*inv.RespondedAt)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n", inv.ID, inv.GroupID, inv.InvitedUserID, inv.Status, responded)
	}
	w.Flush()
}

func SuggestionTable(suggestions []api.Suggestion) {
	if len(suggestions) == 0 {
		Message("No suggestions yet.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tACTIVITY\tSUGGESTED")
	for _, s := range suggestions {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Activity, RelativeTime(s.CreatedAt))
	}
	w.Flush()
}

// TallyTable prints ranked activities, best first.
func TallyTable(tallies []api.Tally) {
	if len(tallies) == 0 {
		Message("No suggestions yet.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "RANK\tID\tACTIVITY\tYES\tNO")
	for i, t := range tallies {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\n", i+1, t.ID, t.Activity, t.YesVotes, t.NoVotes)
	}
	w.Flush()
}

func SlotTable(slots []api.Slot) {
	if len(slots) == 0 {
		Message("No availability slots.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tDAY\tFROM\tTO")
	for _, s := range slots {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.ID, s.DayOfWeek, s.StartTime, s.EndTime)
	}
	w.Flush()
}

func HostingTable(offers []api.HostingOffer) {
	if len(offers) == 0 {
		Message("No hosting offers.")
		return
	}
	w := newTable()
	fmt.Fprintln(w, "USER\tDAY\tACTIVITY")
	for _, o := range offers {
		fmt.Fprintf(w, "%d\t%s\t%s\n", o.UserID, o.DayOfWeek, o.Activity)
	}
	w.Flush()
}

// UserIDs prints one id per line, or a placeholder when empty.
func UserIDs(ids []uint, empty string) {
	if len(ids) == 0 {
		Message(empty)
		return
	}
	for _, id := range ids {
		fmt.Fprintf(Out, "%d\n", id)
	}
}

// VersionInfo prints the CLI version and what the server at url reported.
// A nil server means it could not be reached.
func VersionInfo(cliVersion, url string, server *api.VersionInfo, compatible bool) {
	w := newTable()
	fmt.Fprintf(w, "CLI:\t%s\n", cliVersion)
	fmt.Fprintf(w, "Server:\t%s\n", url)
	switch {
	case server == nil:
		fmt.Fprintf(w, "Status:\tunreachable\n")
	case compatible:
		fmt.Fprintf(w, "Status:\t%s, API %s\n", server.Version, server.APIVersion)
	default:
		fmt.Fprintf(w, "Status:\t%s, API %s (incompatible)\n", server.Version, server.APIVersion)
	}
	w.Flush()
}

// RelativeTime formats a timestamp relative to now (e.g. "2h ago", "3d ago").
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
