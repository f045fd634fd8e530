package model

import "fmt"

// ArtifactError indicates a model artifact could not be loaded or failed
// validation. Any ArtifactError during startup is fatal: the service must
// refuse to serve predictions rather than degrade per-request.
type ArtifactError struct {
	Artifact string
	Message  string
	Cause    error
}

func (e *ArtifactError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("artifact %s: %s: %v", e.Artifact, e.Message, e.Cause)
	}
	return fmt.Sprintf("artifact %s: %s", e.Artifact, e.Message)
}

func (e *ArtifactError) Unwrap() error {
	return e.Cause
}
