package wizard

// AnswerSet accumulates one resolved value per wizard step. Category answers
// hold server ids; BuildSystem holds the chosen display name. Fields of
// skipped steps stay empty.
type AnswerSet struct {
	Language     string   `json:"language" yaml:"language"`
	BuildSystem  string   `json:"buildSystem" yaml:"buildSystem"`
	BootVersion  string   `json:"bootVersion" yaml:"bootVersion"`
	Group        string   `json:"group" yaml:"group"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Version      string   `json:"version" yaml:"version"`
	Packaging    string   `json:"packaging" yaml:"packaging"`
	JavaVersion  string   `json:"javaVersion" yaml:"javaVersion"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}
