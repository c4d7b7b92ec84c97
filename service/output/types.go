package output

import (
	"io"

	"github.com/thirukguru/aws-netdoc/service/network"
)

// Format selects the summary rendering format.
type Format int

const (
	FormatTable Format = iota
	FormatJSON
)

// Destination describes where the documentation artifact went.
type Destination struct {
	Bucket   string
	Key      string
	Uploaded bool
}

type service struct {
	format Format
	out    io.Writer
}

// Service is the interface for rendering the run summary. Rendering never
// alters the stored artifact.
type Service interface {
	RenderSummary(doc network.Documentation, dest Destination) error
	StopSpinner()
}
