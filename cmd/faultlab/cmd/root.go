package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/faultlab/foundation/core/config"
	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/core/log"
	"github.com/msto63/faultlab/internal/catalog"
)

const envPrefix = "FAULTLAB"

const (
	outputText = "text"
	outputJSON = "json"
)

// configDefaults apply when neither the config file nor the environment
// sets a key
var configDefaults = map[string]interface{}{
	"log.level":         "info",
	"log.format":        "text",
	"output.format":     outputText,
	"session.logged_in": false,
}

// errReported is returned by commands that already printed their failure
var errReported = errors.New("failure reported")

type rootOptions struct {
	cfgFile string
	verbose bool
	output  string

	app *app
}

// app is the state shared by all commands of one invocation
type app struct {
	config    *config.Config
	logger    *log.Logger
	registry  *catalog.Registry
	requestID string
	output    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "faultlab",
		Short: "faultlab - catalog of operations and their error conditions",
		Long: `faultlab runs a small catalog of utility operations. Each operation
returns a deterministic value or fails with exactly one error kind.

Commands:
  list     - operations, their arguments and failure codes
  run      - invoke one operation
  check    - run a case file against the catalog
  version  - version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: ./faultlab.toml or ~/.faultlab/faultlab.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output format: text or json (default from output.format)")

	root.AddCommand(
		newListCmd(opts),
		newRunCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// Execute runs the faultlab command line
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func (o *rootOptions) setup(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(o.cfgFile)
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	if o.verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return nil, err
	}

	output := o.output
	if output == "" {
		output = cfg.GetString("output.format")
	}
	if output != outputText && output != outputJSON {
		return nil, flerror.Newf("unknown output format %q (use text or json)", output).
			WithCode(flerror.CodeInvalidInput).
			WithOperation("setup")
	}

	requestID := uuid.NewString()
	logger := log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "faultlab",
	}).WithRequestID(requestID)

	exceptions := catalog.New(catalog.WithLogger(logger), catalog.WithRequestID(requestID))
	registry := catalog.NewRegistry(exceptions)
	loggedIn := strconv.FormatBool(cfg.GetBool("session.logged_in"))
	if err := registry.SetDefault(catalog.OpPerformSecureOperation, "is_logged_in", loggedIn); err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded", log.Fields{
		"config_file": cfg.FilePath(),
		"output":      output,
		"command":     cmd.Name(),
	})

	return &app{
		config:    cfg,
		logger:    logger,
		registry:  registry,
		requestID: requestID,
		output:    output,
	}, nil
}

// loadConfig reads the explicit config file, or discovers one in the
// working directory and ~/.faultlab
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults,
		})
	}

	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".faultlab"))
	}
	return config.Discover(config.DiscoveryOptions{
		Paths:     paths,
		Filenames: []string{"faultlab"},
		EnvPrefix: envPrefix,
		Defaults:  configDefaults,
	})
}

func printError(w io.Writer, err error) {
	if flErr, ok := flerror.As(err); ok {
		fmt.Fprintf(w, "%s %s [%s]\n", errorStyle.Render("Error:"), err.Error(), flErr.Code())
		return
	}
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("Error:"), err)
}
