package models

// CancelReasons are the choices offered by the premium cancellation flow.
// "Other" carries free-text in the request instead.
var CancelReasons = []string{
	"Too expensive",
	"Not enough value",
	"Found a better alternative",
	"Temporary financial situation",
	"Not using the features",
	"Technical issues",
	"Content not relevant",
	"Other",
}

// Cancellation is one entry in the subscription cancellation log.
type Cancellation struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
	Date   string `json:"date"`
}

// CancellationInput is the payload for recording a cancellation.
type CancellationInput struct {
	Reason string `json:"reason"`
}
