package enrollment

import (
	"clubdesk/repository"
)

type State string

const (
	Incomplete       State = "INCOMPLETE"
	AwaitingCategory State = "AWAITING_CATEGORY"
	Ready            State = "READY"
	Submitted        State = "SUBMITTED"
)

// Draft is the in-progress booking being assembled. Every mutation re-runs
// the cardinality and eligibility checks and moves the state forward or
// backward accordingly; a selected category that the current participants no
// longer qualify for is dropped.
type Draft struct {
	event    *repository.Event
	roster   *Roster
	selected *repository.Category
	state    State
}

// Snapshot is the frozen payload handed to the persistence layer on submit.
// Empty slots are already filtered out.
type Snapshot struct {
	EventId    int
	CategoryId int
	Members    []Participant
	NonMembers []Participant
	Amount     int
}

func NewDraft(event *repository.Event) *Draft {
	return &Draft{
		event:  event,
		roster: NewRoster(event),
		state:  Incomplete,
	}
}

func (d *Draft) State() State {
	return d.state
}

func (d *Draft) SelectedCategory() *repository.Category {
	return d.selected
}

func (d *Draft) Roster() *Roster {
	return d.roster
}

func (d *Draft) AddVerified(participant Participant) error {
	if d.state == Submitted {
		return ErrAlreadySubmitted
	}
	if err := d.roster.AddVerified(participant); err != nil {
		return err
	}
	d.recompute()
	return nil
}

func (d *Draft) AddNonVerified(participant Participant) error {
	if d.state == Submitted {
		return ErrAlreadySubmitted
	}
	if err := d.roster.AddNonVerified(participant); err != nil {
		return err
	}
	d.recompute()
	return nil
}

func (d *Draft) SetSlot(i int, slot Slot) {
	if d.state == Submitted {
		return
	}
	d.roster.SetSlot(i, slot)
	d.recompute()
}

func (d *Draft) Remove(i int) {
	if d.state == Submitted {
		return
	}
	d.roster.Remove(i)
	d.recompute()
}

// SelectCategory records the user's pick and returns its evaluation against
// the current participants. An ineligible pick does not stick.
func (d *Draft) SelectCategory(category *repository.Category) Evaluation {
	if d.state == Submitted {
		return Evaluation{Reason: "Booking already submitted"}
	}
	evaluation := Evaluate(category, d.roster.Participants())
	if evaluation.Eligible {
		d.selected = category
	}
	d.recompute()
	return evaluation
}

func (d *Draft) recompute() {
	if d.state == Submitted {
		return
	}
	if d.selected != nil {
		participants := d.roster.Participants()
		if len(participants) > 0 && !Evaluate(d.selected, participants).Eligible {
			d.selected = nil
		}
	}
	switch {
	case !d.roster.CardinalitySatisfied():
		d.state = Incomplete
	case d.selected == nil:
		d.state = AwaitingCategory
	default:
		d.state = Ready
	}
}

func (d *Draft) Total() (int, error) {
	if d.selected == nil {
		return 0, ErrNoCategorySelected
	}
	return ComputeTotal(d.event, d.selected, d.roster)
}

// Submit freezes the draft and hands the snapshot to persist. On failure the
// draft stays Ready so the user can retry; there is no automatic retry.
func (d *Draft) Submit(persist func(Snapshot) error) (*Snapshot, error) {
	if d.state == Submitted {
		return nil, ErrAlreadySubmitted
	}
	if d.state != Ready {
		return nil, ErrNotReady
	}
	amount, err := d.Total()
	if err != nil {
		return nil, err
	}
	snapshot := Snapshot{
		EventId:    d.event.Id,
		CategoryId: d.selected.Id,
		Members:    d.roster.Verified(),
		NonMembers: d.roster.NonVerified(),
		Amount:     amount,
	}
	if err := persist(snapshot); err != nil {
		return nil, err
	}
	d.state = Submitted
	return &snapshot, nil
}
