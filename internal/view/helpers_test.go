package view_test

import (
	"errors"

	"github.com/farmflow/farmdash/internal/view"
)

type status string

const (
	statusPending    status = "pending"
	statusInProgress status = "in-progress"
	statusCompleted  status = "completed"
)

var errBadStatus = errors.New("bad status")

type item struct {
	ID     string
	Name   string
	Note   string
	Status status
	Amount float64
}

func (i item) RecordID() string { return i.ID }

func (i item) Validate() error {
	switch i.Status {
	case statusPending, statusInProgress, statusCompleted:
		return nil
	default:
		return errBadStatus
	}
}

var itemSchema = view.Schema[item, status]{
	Selectors:    []status{statusPending, statusInProgress, statusCompleted},
	SelectorOf:   func(i item) status { return i.Status },
	SearchFields: func(i item) []string { return []string{i.Name, i.Note} },
}

func itemStatus(i item) status { return i.Status }

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}

	return out
}
