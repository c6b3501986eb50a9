package registry

import (
	apperrors "VCS_Status_Monitor/internal/status-service/errors"
	"VCS_Status_Monitor/internal/status-service/model"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default_services.yaml
var defaultServices []byte

// Registry is the immutable list of monitored services. It is built once at
// startup and passed explicitly to whoever needs it.
type Registry struct {
	services []model.ServiceDescriptor
	byName   map[string]int
}

type file struct {
	Services []model.ServiceDescriptor `yaml:"services"`
}

// Services returns a copy of the descriptors in declaration order.
func (r *Registry) Services() []model.ServiceDescriptor {
	out := make([]model.ServiceDescriptor, len(r.services))
	copy(out, r.services)
	return out
}

func (r *Registry) Len() int {
	return len(r.services)
}

func (r *Registry) At(i int) model.ServiceDescriptor {
	return r.services[i]
}

func (r *Registry) Lookup(name string) (model.ServiceDescriptor, error) {
	i, ok := r.byName[name]
	if !ok {
		return model.ServiceDescriptor{}, fmt.Errorf("Registry.Lookup %q: %w", name, apperrors.ErrServiceNotFound)
	}
	return r.services[i], nil
}

// New validates the descriptors and freezes them into a Registry.
func New(services []model.ServiceDescriptor) (*Registry, error) {
	v := validator.New()
	r := &Registry{
		services: make([]model.ServiceDescriptor, 0, len(services)),
		byName:   make(map[string]int, len(services)),
	}
	for i, svc := range services {
		if err := v.Struct(svc); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				return nil, fmt.Errorf("service #%d (%q): %s: %w", i, svc.Name, formatValidationError(validationErrors[0]), apperrors.ErrInvalidRegistry)
			}
			return nil, fmt.Errorf("service #%d (%q): %v: %w", i, svc.Name, err, apperrors.ErrInvalidRegistry)
		}
		if _, exists := r.byName[svc.Name]; exists {
			return nil, fmt.Errorf("service #%d: duplicate name %q: %w", i, svc.Name, apperrors.ErrInvalidRegistry)
		}
		r.byName[svc.Name] = len(r.services)
		r.services = append(r.services, svc)
	}
	return r, nil
}

func Parse(data []byte) (*Registry, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("registry.Parse: %v: %w", err, apperrors.ErrInvalidRegistry)
	}
	return New(f.Services)
}

// Load reads a registry file. An empty path selects the built-in registry.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry.Load: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("registry.Load %s: %w", path, err)
	}
	return r, nil
}

func Default() (*Registry, error) {
	return Parse(defaultServices)
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("the %s field is required", err.Field())
	case "url":
		return fmt.Sprintf("the %s field is not a valid url", err.Field())
	case "oneof":
		return fmt.Sprintf("the %s field must be one of [%s]", err.Field(), err.Param())
	default:
		return fmt.Sprintf("validation failed for %s with tag %s", err.Field(), err.Tag())
	}
}
