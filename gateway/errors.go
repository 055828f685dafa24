package gateway

import "errors"

var (
	// ErrBackendUnreachable wraps network-level failures reaching the backend.
	ErrBackendUnreachable = errors.New("could not connect to the booking service")
	// ErrBackendTimeout marks a submission that exceeded the client-side
	// timeout. Kept distinct from ErrBackendUnreachable so the surfaced
	// message differs from a generic connection failure.
	ErrBackendTimeout = errors.New("the booking service took too long to respond")
)

// SubmissionError carries a logical failure the backend reported
// (success:false or a non-2xx status with a message body). The message is
// surfaced to the user verbatim.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Message
}
