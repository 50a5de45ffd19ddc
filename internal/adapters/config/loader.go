// Package config provides the project file loader for crit.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"go.trai.ch/crit/internal/core/domain"
	"go.trai.ch/crit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only project file schema version understood by the loader.
const supportedVersion = "1"

var _ ports.ProjectLoader = (*Loader)(nil)

// Loader implements ports.ProjectLoader for YAML and TOML project files.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Loader{Logger: logger, validate: v}
}

// Discover walks up from cwd and returns the first crit.yaml or crit.toml it finds.
// Within one directory crit.yaml wins.
func (l *Loader) Discover(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(errors.Join(domain.ErrConfigNotFound, err), "cwd", cwd)
	}

	for dir := abs; ; {
		for _, name := range []string{domain.ProjectFileName, domain.ProjectTOMLFileName} {
			candidate := filepath.Join(dir, name)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no project file"), "cwd", cwd)
}

// Load reads, decodes and validates the project file at path.
func (l *Loader) Load(path string) (*domain.Project, error) {
	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file ProjectFile
	if err := l.decode(path, data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion {
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "cannot load project file"), "path", path)
		return nil, zerr.With(err, "version", file.Version)
	}

	if err := l.validate.Struct(&file); err != nil {
		return nil, zerr.With(validationError(err), "path", path)
	}

	project := toDomain(&file)
	project.Source = path

	if len(project.Tasks) == 0 {
		l.Logger.Warn(fmt.Sprintf("project %q in %s has no tasks", project.Name, path))
	}

	return project, nil
}

func (l *Loader) decode(path string, data []byte, file *ProjectFile) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		md, err := toml.Decode(string(data), file)
		if err != nil {
			return err
		}
		for _, key := range md.Undecoded() {
			l.Logger.Warn(fmt.Sprintf("ignoring unknown key %q in %s", key.String(), path))
		}
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// validationError reports the first failing field of a validator error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Join(domain.ErrConfigInvalid, err)
	}

	fe := verrs[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	out := zerr.With(zerr.Wrap(domain.ErrConfigInvalid, describe(fe)), "field", field)
	return zerr.With(out, "rule", fe.Tag())
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid"
	}
}

func toDomain(file *ProjectFile) *domain.Project {
	project := &domain.Project{
		Name:        file.Project.Name,
		Description: file.Project.Description,
		Unit:        file.Project.Unit,
		Deadline:    file.Project.Deadline,
		Budget:      file.Project.Budget,
		Tasks:       make([]domain.TaskRecord, 0, len(file.Tasks)),
	}

	for _, t := range file.Tasks {
		name := t.Name
		if name == "" {
			name = t.ID
		}
		project.Tasks = append(project.Tasks, domain.TaskRecord{
			ID:           t.ID,
			Name:         name,
			Duration:     t.Duration,
			Predecessors: t.After,
			Lead:         t.Lead,
		})
	}

	return project
}
