package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"framer/internal/config"
	"framer/internal/logging"
	"framer/internal/transform"
	"framer/internal/tui"
)

var (
	flagInput            string
	flagOutput           string
	flagWidth            string
	flagHeight           string
	flagCropping         bool
	flagNaming           string
	flagCreateJSON       bool
	flagForceInteractive bool
	flagConfig           string
	flagConcurrency      int
	flagQuality          int
	flagLogLevel         string
)

var rootCmd = &cobra.Command{
	Use:   "framer",
	Short: "framer 🖼 - batch resize a folder of images",
	Long: `framer 🖼 resizes every jpg, jpeg and png in a folder to fit a bounding box,
optionally cropping to the busiest region, and writes the results to another
folder. Missing settings are asked for interactively.

Examples:
  framer -i ./photos -o ./web -w 1200 -h 800
  framer -i ./photos -o ./thumbs -w 200 -h 200 -n numerical -j
  framer --config framer.yaml
  framer   # interactive mode`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(flagLogLevel)
		log.Logger = log.With().Str("run", uuid.NewString()).Logger()

		in, err := collectInput(cmd)
		if err != nil {
			return err
		}

		var prompter config.Prompter
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			prompter = tui.Prompter{}
		}

		cfg, err := config.Resolve(in, prompter)
		if err != nil {
			return err
		}

		r := runner{
			transformer:  transform.Imaging{},
			out:          cmd.OutOrStdout(),
			showProgress: isatty.IsTerminal(os.Stdout.Fd()),
		}
		return r.run(context.Background(), cfg)
	},
}

// collectInput merges flags the user set with the optional config file.
func collectInput(cmd *cobra.Command) (config.Input, error) {
	in := config.Input{
		Input:            flagInput,
		Output:           flagOutput,
		Width:            flagWidth,
		Height:           flagHeight,
		Cropping:         flagCropping,
		Naming:           flagNaming,
		CreateJSON:       flagCreateJSON,
		ForceInteractive: flagForceInteractive,
		Concurrency:      flagConcurrency,
		Quality:          flagQuality,
	}

	if flagConfig != "" {
		file, err := config.LoadFile(flagConfig)
		if err != nil {
			return in, err
		}
		in.Apply(file, cmd.Flags().Changed)
		log.Debug().Str("path", flagConfig).Msg("Loaded config file")
	}

	return in, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaults := config.DefaultInput()
	flags := rootCmd.Flags()

	flags.StringVarP(&flagInput, config.FieldInput, "i", "", "folder containing the images")
	flags.StringVarP(&flagOutput, config.FieldOutput, "o", "", "folder the resized images are written to")
	flags.StringVarP(&flagWidth, config.FieldWidth, "w", "", "max width of output images in pixels")
	flags.StringVarP(&flagHeight, config.FieldHeight, "h", "", "max height of output images in pixels")
	flags.BoolVarP(&flagCropping, config.FieldCropping, "c", defaults.Cropping, "crop to the exact box, keeping the busiest region")
	flags.StringVarP(&flagNaming, config.FieldNaming, "n", defaults.Naming, "output naming: same or numerical")
	flags.BoolVarP(&flagCreateJSON, config.FieldCreateJSON, "j", defaults.CreateJSON, "write images.json with name, width, height and size")
	flags.BoolVarP(&flagForceInteractive, "forceInteractive", "f", false, "confirm every setting interactively")
	flags.StringVar(&flagConfig, "config", "", "YAML file with default settings")
	flags.IntVar(&flagConcurrency, config.FieldConcurrency, 0, "max images resized at once (0 = all)")
	flags.IntVar(&flagQuality, config.FieldQuality, defaults.Quality, "JPEG quality (1-100)")
	flags.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logging.EnvLevel+" or warn)")

	// -h is height; help stays available as --help
	flags.Bool("help", false, "help for framer")
}
