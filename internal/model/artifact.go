package model

import "time"

// Path represents a file system path.
type Path string

// Artifact describes one generated output file.
type Artifact struct {
	Config       Path   `json:"config"`
	Output       Path   `json:"output"`
	VariableName string `json:"variableName"`
	Size         int    `json:"size"`
	SHA256       string `json:"sha256"`
	Bindings     int    `json:"bindings"`
}

// Manifest records the artifacts written by one batch run.
type Manifest struct {
	RunID     string     `json:"runId"`
	CreatedAt time.Time  `json:"createdAt"`
	Artifacts []Artifact `json:"artifacts"`
}

// SmokeReport is what executing a generated script revealed.
type SmokeReport struct {
	VariableName string
	Methods      []string
	Mode         string
	Theme        string
	Cookie       string
	Classes      []string
}
