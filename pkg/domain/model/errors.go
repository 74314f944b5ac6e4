package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for the failure taxonomy of a demo action
var (
	ErrTagSimulated         = goerr.NewTag("simulated_failure")
	ErrTagTransport         = goerr.NewTag("transport_failure")
	ErrTagRender            = goerr.NewTag("render_failure")
	ErrTagInvalidSampleData = goerr.NewTag("invalid_sample_data")
)

// Sentinel errors
var (
	ErrUnknownAction = goerr.New("unknown action")
	ErrUnknownPanel  = goerr.New("unknown panel")
	ErrUnknownKind   = goerr.New("unknown record kind")
)

// SimulatedFailureMessage is the fixed reason reported by a simulated failure
const SimulatedFailureMessage = "simulated error: could not connect to server"

// RenderFailureMessage is shown when markup could not be built for a successful outcome
const RenderFailureMessage = "could not process the results"
