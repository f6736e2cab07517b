package enrollment

import (
	"fmt"
	"strconv"
	"strings"

	"clubdesk/repository"
)

// ComputeTotal returns the payable amount for the roster under the selected
// category.
//
// Single events charge the category's member or non-member fee depending on
// the sole participant's verification. Double events charge per participant.
// Team events are flat-rate: one non-member on the team books the whole team
// at the event's non-member price. The asymmetry with double pricing is the
// club's published fee policy, not an oversight.
func ComputeTotal(event *repository.Event, category *repository.Category, roster *Roster) (int, error) {
	verified := len(roster.Verified())
	nonVerified := len(roster.NonVerified())

	switch event.EventType {
	case repository.SingleEvent:
		if verified > 0 {
			return parseFee(category.MembersFees, "members_fees")
		}
		if nonVerified > 0 {
			return parseFee(category.NonMembersFees, "non_members_fees")
		}
		return 0, nil
	case repository.DoubleEvent:
		total := 0
		if verified > 0 {
			memberFee, err := parseFee(category.MembersFees, "members_fees")
			if err != nil {
				return 0, err
			}
			total += memberFee * verified
		}
		if nonVerified > 0 {
			nonMemberFee, err := parseFee(category.NonMembersFees, "non_members_fees")
			if err != nil {
				return 0, err
			}
			total += nonMemberFee * nonVerified
		}
		return total, nil
	case repository.TeamEvent:
		if nonVerified > 0 {
			return parseFee(event.NonMemberTeamEventPrice, "non_member_team_event_price")
		}
		if verified > 0 {
			return parseFee(event.MemberTeamEventPrice, "member_team_event_price")
		}
		return 0, nil
	}
	return 0, fmt.Errorf("unknown event type %q", event.EventType)
}

// Fees are stored as strings in the catalog. A fee that does not parse as an
// integer rejects the whole computation; defaulting to 0 would undercharge.
func parseFee(raw string, field string) (int, error) {
	fee, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("fee field %s is not numeric: %q", field, raw)
	}
	return fee, nil
}
