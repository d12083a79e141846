package config

// Buildfile represents the structure of the fresh.yaml build file.
type Buildfile struct {
	Final []string  `yaml:"final"`
	Tasks []TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task definition in the build file.
type TaskDTO struct {
	Command string   `yaml:"command"`
	Input   []string `yaml:"input"`
	Output  []string `yaml:"output"`
}
