package resource

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingProject  = errors.New("project id is required, set GOOGLE_CLOUD_PROJECT or --project")
	ErrMissingLocation = errors.New("location is required")
	ErrMissingRegistry = errors.New("registry id is required")
	ErrMissingDevice   = errors.New("device id is required")
)

// Path identifies a resource in the projects/locations/registries/devices
// hierarchy. Registry and Device are optional; an empty Device yields the
// registry path and an empty Registry yields the location path.
type Path struct {
	Project  string
	Location string
	Registry string
	Device   string
}

// String builds the canonical resource name without validating it.
func (p Path) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "projects/%s/locations/%s", p.Project, p.Location)
	if p.Registry == "" {
		return sb.String()
	}
	fmt.Fprintf(&sb, "/registries/%s", p.Registry)
	if p.Device == "" {
		return sb.String()
	}
	fmt.Fprintf(&sb, "/devices/%s", p.Device)
	return sb.String()
}

func (p Path) validate() error {
	if p.Project == "" {
		return ErrMissingProject
	}
	if p.Location == "" {
		return ErrMissingLocation
	}
	if p.Device != "" && p.Registry == "" {
		return ErrMissingRegistry
	}
	return nil
}

// Location returns projects/{project}/locations/{location}.
func Location(project, location string) (string, error) {
	p := Path{Project: project, Location: location}
	if err := p.validate(); err != nil {
		return "", err
	}
	return p.String(), nil
}

// RegistriesCollection returns the collection path used to list registries.
func RegistriesCollection(project, location string) (string, error) {
	parent, err := Location(project, location)
	if err != nil {
		return "", err
	}
	return parent + "/registries", nil
}

// Registry returns the full resource name of a device registry.
func Registry(project, location, registry string) (string, error) {
	p := Path{Project: project, Location: location, Registry: registry}
	if err := p.validate(); err != nil {
		return "", err
	}
	if registry == "" {
		return "", ErrMissingRegistry
	}
	return p.String(), nil
}

// DevicesCollection returns the collection path used to list or create devices.
func DevicesCollection(project, location, registry string) (string, error) {
	parent, err := Registry(project, location, registry)
	if err != nil {
		return "", err
	}
	return parent + "/devices", nil
}

// Device returns the full resource name of a device.
func Device(project, location, registry, device string) (string, error) {
	p := Path{Project: project, Location: location, Registry: registry, Device: device}
	if err := p.validate(); err != nil {
		return "", err
	}
	if registry == "" {
		return "", ErrMissingRegistry
	}
	if device == "" {
		return "", ErrMissingDevice
	}
	return p.String(), nil
}
