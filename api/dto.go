/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the API, decoupling the domain model from the wire
  contract. Field names match the persisted layout (snake_case).

NAMING CONVENTION:
  - *Request: request body types from clients
  - *DTO:     response types returned to clients
*/
package api

import "github.com/warp/leave-ledger/leave"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SignupRequest creates an account.
type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email"`
}

// LoginRequest authenticates a user and opens a session.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordHintRequest asks for the recovery hint of an account.
type PasswordHintRequest struct {
	Username string `json:"username"`
}

// ApplyLeaveRequest submits a leave request for the session user.
type ApplyLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// LeaveDTO is one leave request in API responses. Days is the inclusive
// day count of the range.
type LeaveDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
	Days      int    `json:"days"`
}

// DashboardDTO is the per-user dashboard view.
type DashboardDTO struct {
	Username  string     `json:"username"`
	Leaves    []LeaveDTO `json:"leaves"`
	Used      int        `json:"used"`
	Remaining int        `json:"remaining"`
}

// HintDTO carries a password recovery hint.
type HintDTO struct {
	Hint string `json:"hint"`
}

// MessageDTO is a simple confirmation message.
type MessageDTO struct {
	Message string `json:"message"`
}

// ErrorDTO carries a user-facing error message.
type ErrorDTO struct {
	Error string `json:"error"`
}

func toLeaveDTO(r leave.LeaveRequest) LeaveDTO {
	days, err := r.Days()
	if err != nil {
		days = 0
	}
	return LeaveDTO{
		ID:        r.ID,
		Username:  r.Username,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		LeaveType: r.LeaveType,
		Reason:    r.Reason,
		Days:      days,
	}
}

func toDashboardDTO(d leave.Dashboard) DashboardDTO {
	leaves := make([]LeaveDTO, 0, len(d.Leaves))
	for _, r := range d.Leaves {
		leaves = append(leaves, toLeaveDTO(r))
	}
	return DashboardDTO{
		Username:  d.Username,
		Leaves:    leaves,
		Used:      d.Used,
		Remaining: d.Remaining,
	}
}
