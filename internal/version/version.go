package version

const (
	// Version of langfilter
	Version = "v0.0.0"
	// Name of the project
	Name = "langfilter"
)

// Server header returned by langfilter
var Server = Name + "/" + Version
