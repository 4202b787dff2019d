package wizard

// Step enumerates each prompt of the wizard in the fixed order they run.
type Step int

const (
	StepLanguage     Step = iota // 0
	StepBuildSystem              // 1
	StepBootVersion              // 2
	StepGroup                    // 3
	StepName                     // 4
	StepDescription              // 5
	StepVersion                  // 6
	StepPackaging                // 7
	StepJavaVersion              // 8
	StepDependencies             // 9
)

// StepCount is the number of wizard steps.
const StepCount = 10

// StepLabels returns the short labels shown in the progress indicator.
func StepLabels() []string {
	return []string{
		"Language",
		"Build",
		"Boot",
		"Group",
		"Name",
		"Description",
		"Version",
		"Packaging",
		"Java",
		"Dependencies",
	}
}

// String returns the lowercase step name used in logs and error reports.
func (s Step) String() string {
	switch s {
	case StepLanguage:
		return "language"
	case StepBuildSystem:
		return "build system"
	case StepBootVersion:
		return "boot version"
	case StepGroup:
		return "group"
	case StepName:
		return "name"
	case StepDescription:
		return "description"
	case StepVersion:
		return "version"
	case StepPackaging:
		return "packaging"
	case StepJavaVersion:
		return "java version"
	case StepDependencies:
		return "dependencies"
	default:
		return "unknown"
	}
}
