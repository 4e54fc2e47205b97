package domain

// PlanGenerationError marks a submit where the preference save went through
// but the follow-up plan-generation call was rejected. The draft is already
// persisted server-side; there is no client-side rollback. The backend's
// message passes through verbatim.
type PlanGenerationError struct {
	Cause error
}

func (e *PlanGenerationError) Error() string {
	return e.Cause.Error()
}

func (e *PlanGenerationError) Unwrap() error {
	return e.Cause
}
