package usecase

import "github.com/xavierca1/telecrm/internal/entity"

type CreateLeadInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateLeadInput carries a partial update: empty fields are left
// untouched, never cleared.
type UpdateLeadInput struct {
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone"`
	Address        string                `json:"address"`
	CallStatus     entity.CallStatus     `json:"call_status"`
	ResponseStatus entity.ResponseStatus `json:"response_status"`
}

type UpdateLeadStatusInput struct {
	CallStatus     entity.CallStatus     `json:"call_status"`
	ResponseStatus entity.ResponseStatus `json:"response_status"`
}

type CreateCallRecordInput struct {
	LeadID         string                `json:"lead_id"`
	CallStatus     entity.CallStatus     `json:"call_status"`
	ResponseStatus entity.ResponseStatus `json:"response_status"`
}

type DashboardMetrics struct {
	TotalTelecallers int64 `json:"totalTelecallers"`
	TotalCalls       int64 `json:"totalCalls"`
	TotalCustomers   int64 `json:"totalCustomers"`
}

type CallTrendPoint struct {
	Date  string `json:"date"`
	Calls int64  `json:"calls"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthOutput struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	Token string      `json:"token"`
}
