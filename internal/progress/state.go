package progress

// StepState is the explicit state of a multi-step tool or checklist. All
// transitions are pure: they return a new state and never mutate the
// receiver, so the UI can re-render from any state snapshot.
type StepState struct {
	CurrentStep    int                       `json:"current_step"`
	TotalSteps     int                       `json:"total_steps"`
	CompletedSteps map[int]bool              `json:"completed_steps"`
	StepData       map[int]map[string]string `json:"step_data,omitempty"`
}

// NewStepState returns the initial state for a flow with totalSteps steps.
func NewStepState(totalSteps int) StepState {
	if totalSteps < 0 {
		totalSteps = 0
	}
	return StepState{
		CurrentStep:    0,
		TotalSteps:     totalSteps,
		CompletedSteps: map[int]bool{},
	}
}

// Next advances to the following step, marking the current one completed.
// At the last step it only records completion.
func Next(s StepState) StepState {
	out := clone(s)
	out.CompletedSteps[s.CurrentStep] = true
	if s.CurrentStep < s.TotalSteps-1 {
		out.CurrentStep = s.CurrentStep + 1
	}
	return out
}

// Previous steps back one step. At the first step it is a no-op.
func Previous(s StepState) StepState {
	out := clone(s)
	if s.CurrentStep > 0 {
		out.CurrentStep = s.CurrentStep - 1
	}
	return out
}

// Reset returns the flow to its initial state, discarding completion marks
// and per-step data.
func Reset(s StepState) StepState {
	return NewStepState(s.TotalSteps)
}

// WithStepData returns a state with the given field recorded on the current
// step.
func WithStepData(s StepState, field, value string) StepState {
	out := clone(s)
	if out.StepData == nil {
		out.StepData = map[int]map[string]string{}
	}
	if out.StepData[out.CurrentStep] == nil {
		out.StepData[out.CurrentStep] = map[string]string{}
	}
	out.StepData[out.CurrentStep][field] = value
	return out
}

// IsComplete reports whether every step has been completed.
func (s StepState) IsComplete() bool {
	if s.TotalSteps == 0 {
		return false
	}
	for i := 0; i < s.TotalSteps; i++ {
		if !s.CompletedSteps[i] {
			return false
		}
	}
	return true
}

func clone(s StepState) StepState {
	out := StepState{
		CurrentStep: s.CurrentStep,
		TotalSteps:  s.TotalSteps,
	}
	out.CompletedSteps = make(map[int]bool, len(s.CompletedSteps))
	for k, v := range s.CompletedSteps {
		out.CompletedSteps[k] = v
	}
	if s.StepData != nil {
		out.StepData = make(map[int]map[string]string, len(s.StepData))
		for step, data := range s.StepData {
			inner := make(map[string]string, len(data))
			for k, v := range data {
				inner[k] = v
			}
			out.StepData[step] = inner
		}
	}
	return out
}
