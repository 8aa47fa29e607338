package request

import (
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/usecase/queries"
	"tutor-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidQuery = errs.New("invalid query parameter")

type AvailabilityQuery struct {
	OwnerIDs  []string `form:"ownerId"`
	WindowIDs []string `form:"windowId"`
	Subject   string   `form:"subject"`
	From      string   `form:"from"`
	To        string   `form:"to"`
}

func (q *AvailabilityQuery) ToFilter() (shared.WindowFilter, error) {
	var filter shared.WindowFilter
	var err error

	if filter.OwnerIDs, err = parseIDs("ownerId", q.OwnerIDs); err != nil {
		return filter, err
	}
	if filter.WindowIDs, err = parseIDs("windowId", q.WindowIDs); err != nil {
		return filter, err
	}
	if q.Subject != "" {
		subject := q.Subject
		filter.Subject = &subject
	}
	if filter.From, filter.To, err = parseRange(q.From, q.To); err != nil {
		return filter, err
	}
	return filter, nil
}

type JointAvailabilityQuery struct {
	OwnerIDs []string `form:"ownerId" binding:"required,min=1"`
	Subject  string   `form:"subject"`
	From     string   `form:"from"`
	To       string   `form:"to"`
	Mode     string   `form:"mode" binding:"omitempty,oneof=any all"`
}

func (q *JointAvailabilityQuery) ToFilter() (queries.JointFilter, error) {
	var filter queries.JointFilter
	var err error

	if filter.OwnerIDs, err = parseIDs("ownerId", q.OwnerIDs); err != nil {
		return filter, err
	}
	if q.Subject != "" {
		subject := q.Subject
		filter.Subject = &subject
	}
	if filter.From, filter.To, err = parseRange(q.From, q.To); err != nil {
		return filter, err
	}
	filter.Mode = scheduling.JointMode(q.Mode)
	return filter, nil
}

type RunsQuery struct {
	Count int `form:"count" binding:"required,min=1"`
}

func parseIDs(name string, raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errs.Wrap(errs.Mark(err, ErrInvalidQuery), name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseRange(from, to string) (*time.Time, *time.Time, error) {
	start, err := parseTime("from", from)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseTime("to", to)
	if err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && !end.After(*start) {
		return nil, nil, errs.Wrap(ErrInvalidQuery, "to must be after from")
	}
	return start, end, nil
}

func parseTime(name, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errs.Wrap(errs.Mark(err, ErrInvalidQuery), name)
	}
	return &t, nil
}
