package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/repository"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Sample selects where the sample data comes from
type Sample struct {
	File string
}

// Flags returns CLI flags for Sample configuration
func (s *Sample) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sample-file",
			Usage:       "YAML file with sample users and posts (built-in data if empty)",
			Category:    "Sample data",
			Sources:     cli.EnvVars("AJAXDEMO_SAMPLE_FILE"),
			Destination: &s.File,
		},
	}
}

// Configure creates the sample store. A sample file takes precedence over
// Firestore, and the built-in data is used when neither is set.
func (s *Sample) Configure(ctx context.Context, fs *Firestore) (interfaces.SampleStore, error) {
	logger := ctxlog.From(ctx)

	switch {
	case s.File != "":
		data, err := LoadSampleDataFromFile(s.File)
		if err != nil {
			return nil, err
		}
		logger.Info("Sample data loaded from file", "path", s.File, "users", len(data.Users), "posts", len(data.Posts))
		return repository.NewMemory(data), nil

	case fs != nil && fs.IsConfigured():
		data, err := fs.Load(ctx)
		if err != nil {
			return nil, err
		}
		if err := data.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid sample data in firestore")
		}
		return repository.NewMemory(data), nil

	default:
		logger.Debug("Using built-in sample data")
		return repository.NewMemory(nil), nil
	}
}

// LogValue returns structured log value
func (s Sample) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", s.File),
	)
}

// LoadSampleDataFromFile loads sample data from a YAML file
func LoadSampleDataFromFile(path string) (*model.SampleData, error) {
	if path == "" {
		return nil, goerr.New("sample data file path is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "sample data file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read sample data file",
			goerr.V("path", path))
	}

	var data model.SampleData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, goerr.Wrap(err, "failed to parse sample data YAML",
			goerr.V("path", path))
	}

	if err := data.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid sample data",
			goerr.V("path", path))
	}

	return &data, nil
}
