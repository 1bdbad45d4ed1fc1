package entity

// CallStatus is the connection outcome of a call attempt.
type CallStatus string

// ResponseStatus qualifies the outcome and is only meaningful together
// with its CallStatus.
type ResponseStatus string

const (
	CallConnected    CallStatus = "connected"
	CallNotConnected CallStatus = "not_connected"
)

const (
	ResponseDiscussed   ResponseStatus = "discussed"
	ResponseCallback    ResponseStatus = "callback"
	ResponseInterested  ResponseStatus = "interested"
	ResponseBusy        ResponseStatus = "busy"
	ResponseRNR         ResponseStatus = "rnr"
	ResponseSwitchedOff ResponseStatus = "switched_off"
)

// responsesByCallStatus pins each response to the only call status it
// is valid under.
var responsesByCallStatus = map[CallStatus][]ResponseStatus{
	CallConnected:    {ResponseDiscussed, ResponseCallback, ResponseInterested},
	CallNotConnected: {ResponseBusy, ResponseRNR, ResponseSwitchedOff},
}

func (s CallStatus) IsValid() bool {
	_, ok := responsesByCallStatus[s]
	return ok
}

// Allows reports whether the response is valid under this call status.
func (s CallStatus) Allows(response ResponseStatus) bool {
	for _, allowed := range responsesByCallStatus[s] {
		if allowed == response {
			return true
		}
	}
	return false
}
