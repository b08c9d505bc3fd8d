// Package cli provides the treefmt command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bjaus/treefmt"
	"github.com/bjaus/treefmt/internal/config"
)

const (
	rootUse              = "treefmt [files...]"
	rootShortDescription = "render YAML or JSON documents as trees"
	rootLongDescription  = `treefmt reads YAML or JSON documents and prints them as tree art.
Reads standard input when no file is given or the file is "-".
Glyphs come from --style, the .treefmt.yaml files in the home and working
directories, and TREEFMT_* environment variables.`
	rootUsageExample = `  # Render a Kubernetes manifest with ASCII glyphs
  treefmt --style ascii deployment.yaml

  # Prefix every line with a label
  kubectl get pod -o json | treefmt --context "pod| " --title pod`

	stylesUse              = "styles"
	stylesShortDescription = "list the predefined glyph styles"

	styleFlagName    = "style"
	contextFlagName  = "context"
	titleFlagName    = "title"
	configFlagName   = "config"
	styleFlagUsage   = "glyph style (unicode, ascii, rounded, heavy, double)"
	contextFlagUsage = "text repeated at the start of every line"
	titleFlagUsage   = "root label (defaults to the file name)"
	configFlagUsage  = "configuration file to use instead of ./" + config.FileName

	stdinName = "-"
)

type rootOptions struct {
	style      string
	context    string
	title      string
	configPath string
}

// NewRootCommand builds the root command.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	var options rootOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			cfg, err := loadConfiguration(command, options)
			if err != nil {
				return err
			}
			contextFormat, prefixFormat, err := cfg.Formats()
			if err != nil {
				return err
			}
			for _, mismatch := range config.WidthMismatches(contextFormat, prefixFormat) {
				logger.Warn("glyph widths differ", zap.String("detail", mismatch))
			}

			if len(arguments) == 0 {
				arguments = []string{stdinName}
			}
			r := renderer{
				out:           command.OutOrStdout(),
				in:            command.InOrStdin(),
				leading:       cfg.Context,
				title:         options.title,
				contextFormat: contextFormat,
				prefixFormat:  prefixFormat,
				logger:        logger,
			}
			for _, path := range arguments {
				if err := r.renderPath(path); err != nil {
					return err
				}
			}
			return nil
		},
	}
	flags := rootCommand.Flags()
	flags.StringVar(&options.style, styleFlagName, "", styleFlagUsage)
	flags.StringVar(&options.context, contextFlagName, "", contextFlagUsage)
	flags.StringVar(&options.title, titleFlagName, "", titleFlagUsage)
	flags.StringVar(&options.configPath, configFlagName, "", configFlagUsage)

	rootCommand.AddCommand(newStylesCommand())
	return rootCommand
}

func loadConfiguration(command *cobra.Command, options rootOptions) (config.Configuration, error) {
	cfg, err := config.Load(config.LoadOptions{ExplicitFilePath: options.configPath})
	if err != nil {
		return config.Configuration{}, err
	}
	if command.Flags().Changed(styleFlagName) {
		cfg.Style = options.style
	}
	if command.Flags().Changed(contextFlagName) {
		cfg.Context = options.context
	}
	return cfg, nil
}

type renderer struct {
	out           io.Writer
	in            io.Reader
	leading       string
	title         string
	contextFormat treefmt.ContextFormat
	prefixFormat  treefmt.PrefixFormat
	logger        *zap.Logger
}

func (r renderer) renderPath(path string) error {
	title := r.title
	var input io.Reader
	if path == stdinName {
		input = r.in
		if title == "" {
			title = "stdin"
		}
	} else {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer file.Close()
		input = file
		if title == "" {
			title = filepath.Base(path)
		}
	}

	node, err := treefmt.DecodeYAML(input, title)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	r.logger.Debug("rendering document", zap.String("path", path), zap.Int("nodes", node.Len()))

	f, err := treefmt.NewWithContext(node.Label, r.out, r.leading)
	if err != nil {
		return err
	}
	f.SetContextFormat(r.contextFormat).SetPrefixFormat(r.prefixFormat)
	if err := f.Render(node); err != nil {
		return err
	}
	return f.Close()
}

func newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   stylesUse,
		Short: stylesShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			sample := treefmt.NewNode("",
				treefmt.NewNode("a", treefmt.NewNode("a1"), treefmt.NewNode("a2")),
				treefmt.NewNode("b", treefmt.NewNode("b1")),
			)
			for _, style := range treefmt.Styles() {
				sample.Label = style.String()
				f, err := treefmt.New(sample.Label, command.OutOrStdout())
				if err != nil {
					return err
				}
				if err := f.SetStyle(style).Render(sample); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
