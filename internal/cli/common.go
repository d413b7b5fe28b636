package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/nrlgen/internal/config"
	"github.com/danieljhkim/nrlgen/internal/config/generator"
	"github.com/danieljhkim/nrlgen/internal/services"
	"github.com/danieljhkim/nrlgen/internal/util"
)

// runtime is what the generation commands share: settings, logger and a
// generator built from them
type runtime struct {
	paths    *config.Paths
	settings *config.Settings
	log      zerolog.Logger
	gen      *generator.Generator
}

func loadRuntime(cmd *cobra.Command, pathsGetter PathsGetter) (*runtime, error) {
	paths := pathsGetter()
	settings, err := config.NewSettingsManager(paths).LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	level := flagOr(cmd, "log-level", settings.Log.Level)
	format := flagOr(cmd, "log-format", settings.Log.Format)
	log := util.NewLogger(cmd.ErrOrStderr(), level, format)

	catalog := services.NewCatalog(services.Options{
		Barrier:   settings.Barrier,
		PrefixLen: settings.PrefixLength,
		Logger:    log,
	})

	return &runtime{
		paths:    paths,
		settings: settings,
		log:      log,
		gen:      generator.NewGenerator(catalog, log),
	}, nil
}

// flagOr returns the named flag's value when it was set on the command
// line (including inherited persistent flags), otherwise def
func flagOr(cmd *cobra.Command, name, def string) string {
	if f := cmd.Flag(name); f != nil && f.Changed {
		return f.Value.String()
	}
	return def
}

// loadScenario reads the scenario and warns about service names nothing
// will generate
func (rt *runtime) loadScenario(path string) (*config.Scenario, error) {
	s, err := config.LoadScenario(path)
	if err != nil {
		return nil, err
	}

	if unknown := s.UnknownServices(rt.gen.HasService); len(unknown) > 0 {
		rt.log.Warn().
			Strs("services", unknown).
			Msg("scenario enables services nrlgen does not generate")
	}
	return s, nil
}

// scenarioNode loads the scenario and resolves one node from it
func (rt *runtime) scenarioNode(path, name string) (*config.Scenario, *config.ScenarioNode, error) {
	s, err := rt.loadScenario(path)
	if err != nil {
		return nil, nil, err
	}
	sn, err := s.Node(name)
	if err != nil {
		return nil, nil, err
	}
	return s, sn, nil
}
