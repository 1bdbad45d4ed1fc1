package entity

import (
	"time"

	"github.com/google/uuid"
)

// CallRecord is an immutable log entry of one call attempt.
// CustomerName and TelecallerName are snapshotted at creation and
// deliberately not kept in sync with later renames: the record is a
// historical document of who called whom at that moment.
type CallRecord struct {
	ID             string         `json:"id"`
	LeadID         string         `json:"lead_id"`
	CustomerName   string         `json:"customer_name"`
	TelecallerID   string         `json:"telecaller_id"`
	TelecallerName string         `json:"telecaller_name"`
	CallStatus     CallStatus     `json:"call_status"`
	ResponseStatus ResponseStatus `json:"response_status"`
	CallDateTime   time.Time      `json:"call_date_time"`
}

// Factory
func NewCallRecord(lead *Lead, caller Actor, callStatus CallStatus, responseStatus ResponseStatus, now time.Time) *CallRecord {
	return &CallRecord{
		ID:             uuid.New().String(),
		LeadID:         lead.ID,
		CustomerName:   lead.Name,
		TelecallerID:   caller.ID,
		TelecallerName: caller.Name,
		CallStatus:     callStatus,
		ResponseStatus: responseStatus,
		CallDateTime:   now,
	}
}
