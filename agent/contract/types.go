package contract

import "time"

// Label is the classification assigned to an incoming query. The set is
// closed: every pipeline run ends up with exactly one of the constants below.
type Label string

const (
	LabelBilling   Label = "billing_account"
	LabelNetwork   Label = "network_troubleshooting"
	LabelService   Label = "service_recommendation"
	LabelKnowledge Label = "knowledge_retrieval"
	LabelOffTopic  Label = "off_topic"
)

// DefaultLabel is substituted whenever the classifier backend fails or
// produces output outside the closed set.
const DefaultLabel = LabelKnowledge

// Labels returns the canonical label set in a stable order.
func Labels() []Label {
	return []Label{
		LabelBilling,
		LabelNetwork,
		LabelService,
		LabelKnowledge,
		LabelOffTopic,
	}
}

// Valid reports whether l is one of the canonical labels.
func (l Label) Valid() bool {
	switch l {
	case LabelBilling, LabelNetwork, LabelService, LabelKnowledge, LabelOffTopic:
		return true
	}
	return false
}

// HandlerID identifies one of the registered handlers.
type HandlerID string

const (
	HandlerBilling   HandlerID = "billing"
	HandlerNetwork   HandlerID = "network"
	HandlerService   HandlerID = "service"
	HandlerKnowledge HandlerID = "knowledge"
	HandlerFallback  HandlerID = "fallback"
)

// CustomerProfile is the read-only identity record fetched at login time.
// The pipeline never mutates it.
type CustomerProfile struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PlanID     string `json:"plan_id"`
	Status     string `json:"status"`
	UserType   string `json:"user_type"`
}

// Turn is one completed exchange kept in conversation history. History is
// pass-through context for handlers; the routing core does not depend on it.
type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Request is what the UI layer hands to the pipeline for a single turn.
type Request struct {
	SessionID string           `json:"session_id"`
	Query     string           `json:"query"`
	Customer  *CustomerProfile `json:"customer,omitempty"`
	History   []Turn           `json:"history,omitempty"`
}

// Response is the pipeline's terminal output. FinalResponse is always
// non-empty; FailureReason carries the diagnostic cause of a handled failure
// and must never be shown to the end user.
type Response struct {
	FinalResponse  string `json:"final_response"`
	Classification Label  `json:"classification"`
	FailureReason  string `json:"failure_reason,omitempty"`
}

// HandlerOutput is what every handler returns. Text is always user-displayable.
// A non-empty FailureReason marks the output as a handled failure: Text then
// holds the templated apology, and FailureReason the internal cause.
type HandlerOutput struct {
	Text          string
	FailureReason string
}

// Failed reports whether the output is a handled failure.
func (o HandlerOutput) Failed() bool {
	return o.FailureReason != ""
}
