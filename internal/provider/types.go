package provider

// StepType tags a step with one of the recipe step kinds.
type StepType string

const (
	StepInfo            StepType = "info"
	StepOpenURL         StepType = "open_url"
	StepPromptInput     StepType = "prompt_input"
	StepPromptChoice    StepType = "prompt_choice"
	StepPromptConfirm   StepType = "prompt_confirm"
	StepValidate        StepType = "validate"
	StepWait            StepType = "wait"
	StepRunCommand      StepType = "run_command"
	StepOutput          StepType = "output"
	StepCopyToClipboard StepType = "copy_to_clipboard"
)

// KnownStepTypes lists the closed set of step kinds in display order.
var KnownStepTypes = []StepType{
	StepInfo,
	StepOpenURL,
	StepPromptInput,
	StepPromptChoice,
	StepPromptConfirm,
	StepValidate,
	StepWait,
	StepRunCommand,
	StepOutput,
	StepCopyToClipboard,
}

// Known reports whether t is one of the recipe step kinds.
func (t StepType) Known() bool {
	for _, k := range KnownStepTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Provider is one recipe record.
type Provider struct {
	ID            string
	DisplayName   string
	Description   string
	Website       string
	EstimatedTime string
	SchemaVersion string
	Version       string
	LastVerified  string
	Category      []string
	AuthTypes     []string
	Prerequisites []string
	Gotchas       []string
	Outputs       []Output
	Steps         []Step

	// Raw is the decoded record exactly as read.
	Raw map[string]any
	// Source is the file the record was read from.
	Source string
}

// Output is a value the recipe produces for the user (an API key, a secret, ...).
type Output struct {
	Key         string
	Description string
	Sensitive   bool
}

// Step is one unit of a provider's setup recipe.
type Step struct {
	ID              string
	Type            StepType
	Message         string
	Validation      string
	ValidationError string
	URL             string
	Command         string
	Value           string
	OutputKey       string
	Method          string
	ResumeHint      string
	Choices         []Choice

	// Fields holds every key of the step record, including the ones above.
	Fields map[string]any
}

// Choice is one option of a prompt_choice step.
type Choice struct {
	Label string
	Next  string
}

// Field returns a passthrough value of the step record, or nil.
func (s Step) Field(key string) any {
	return s.Fields[key]
}
