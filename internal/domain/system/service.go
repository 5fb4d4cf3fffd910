package system

import "context"

// WipeRequest clears every business table. Confirm must be true.
type WipeRequest struct {
	Confirm bool `json:"confirm"`
}

// WipeResult counts the removed rows of the in-memory tables and lists every
// table that was cleared.
type WipeResult struct {
	Employees  int      `json:"employees"`
	Attendance int      `json:"attendance"`
	Schedules  int      `json:"schedules"`
	Delays     int      `json:"delays"`
	Tables     []string `json:"tables"`
}

type SystemService interface {
	WipeAll(ctx context.Context, req WipeRequest) (WipeResult, error)
}
