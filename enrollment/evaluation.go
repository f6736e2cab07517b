package enrollment

import (
	"fmt"
	"time"

	"clubdesk/repository"
	"clubdesk/utils"
)

// Evaluation is the outcome of checking one category against a participant
// set. Ineligibility is a normal outcome, not an error; Reason carries the
// message shown next to the disabled category.
type Evaluation struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason"`
}

// Age is calendar-year subtraction, not full elapsed years, so it can be off
// by one near birthdays. That is how the club has always bracketed entrants
// and changing it would reshuffle categories mid-season.
func Age(dateOfBirth time.Time, now time.Time) int {
	return now.Year() - dateOfBirth.Year()
}

// Evaluate checks every participant against the category's age and gender
// bounds. All participants must qualify for the category to be selectable.
func Evaluate(category *repository.Category, participants []Participant) Evaluation {
	return EvaluateAt(category, participants, time.Now())
}

func EvaluateAt(category *repository.Category, participants []Participant, now time.Time) Evaluation {
	for _, participant := range participants {
		if participant.DateOfBirth.IsZero() || participant.Gender == "" {
			return Evaluation{Reason: "Participant details incomplete"}
		}
		age := Age(participant.DateOfBirth, now)
		if age < category.StartAge || age > category.EndAge {
			return Evaluation{Reason: fmt.Sprintf("Age %d not in range %d - %d", age, category.StartAge, category.EndAge)}
		}
		if len(category.Genders) > 0 && !utils.Contains(category.Genders, participant.Gender) {
			return Evaluation{Reason: fmt.Sprintf("Gender %s not allowed", participant.Gender)}
		}
	}
	return Evaluation{Eligible: true}
}
