package barfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/barfmt/internal/version"
	"github.com/arthur-debert/barfmt/pkg/click"
	"github.com/arthur-debert/barfmt/pkg/config"
	"github.com/arthur-debert/barfmt/pkg/document"
	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/arthur-debert/barfmt/pkg/logging"
	"github.com/arthur-debert/barfmt/pkg/render"
	"github.com/arthur-debert/barfmt/pkg/render/i3bar"
	"github.com/arthur-debert/barfmt/pkg/topics"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands of one root command
type app struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "barfmt",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(a.newRenderCmd())
	rootCmd.AddCommand(a.newClickCmd())
	rootCmd.AddCommand(newBackendsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	if topicsCmd := newTopicsCmd(); topicsCmd != nil {
		rootCmd.AddCommand(topicsCmd)
	}

	return rootCmd
}

// setup loads the configuration and configures logging. The console logger
// is set up first so that config loading can log, then again once the
// configured verbosity and log file are known.
func (a *app) setup(cmd *cobra.Command) error {
	logging.Setup(logging.Options{Verbosity: a.verbosity})

	cfg, err := config.Load(config.Options{Path: a.configPath})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	verbosity := a.verbosity
	if cfg.Logging.Verbosity > verbosity {
		verbosity = cfg.Logging.Verbosity
	}
	logging.Setup(logging.Options{Verbosity: verbosity, File: cfg.Logging.File})
	log.Debug().
		Str("command", cmd.Name()).
		Str("config", cfg.Path).
		Str("backend", cfg.Backend).
		Msg("Command started")
	return nil
}

// loadDocument reads the document named by args, or stdin when args is empty
func loadDocument(cmd *cobra.Command, args []string, syntax string) (format.Format, error) {
	if len(args) > 0 && args[0] != "-" {
		if syntax == "" {
			return document.Load(args[0])
		}
		s, err := document.ParseSyntax(syntax)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrDocumentRead, "failed to read document").
				WithDetail("path", args[0])
		}
		return document.Parse(data, s)
	}

	s := document.SyntaxYAML
	if syntax != "" {
		var err error
		if s, err = document.ParseSyntax(syntax); err != nil {
			return nil, err
		}
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf(MsgErrReadStdin, err)
	}
	return document.Parse(data, s)
}

func (a *app) newRenderCmd() *cobra.Command {
	var (
		backend string
		syntax  string
		name    string
	)

	cmd := &cobra.Command{
		Use:     "render [file]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")

			b := a.cfg.BackendValue()
			if backend != "" {
				var err error
				if b, err = render.ParseBackend(backend); err != nil {
					return err
				}
			}

			opts := a.cfg.RenderOptions()
			if name != "" {
				opts.BlockName = name
			}
			if f, ok := cmd.OutOrStdout().(*os.File); ok {
				opts.TermOutput = f
			}

			r, err := render.New(b, opts)
			if err != nil {
				return err
			}

			doc, err := loadDocument(cmd, args, syntax)
			if err != nil {
				return err
			}

			logger.Info().Str("backend", b.String()).Msg("Rendering document")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Render(doc))
			return err
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", "", MsgFlagBackend)
	cmd.Flags().StringVar(&syntax, "syntax", "", MsgFlagSyntax)
	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	_ = cmd.RegisterFlagCompletionFunc("backend", backendCompletion)
	_ = cmd.RegisterFlagCompletionFunc("syntax", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// backendCompletion provides shell completion for backend names
func backendCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, b := range render.Backends() {
		names = append(names, b.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func (a *app) newClickCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "click <document> [event]",
		Short:   MsgClickShort,
		Long:    MsgClickLong,
		Example: MsgClickExample,
		GroupID: "core",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.click")

			doc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = a.cfg.I3bar.Name
			}
			target := click.NewTarget(i3bar.New(name), doc)
			logger.Debug().Int("actions", len(target.Clicks)).Msg("Click table built")

			out := cmd.OutOrStdout()
			if len(args) == 2 {
				ev, err := click.ParseEvent([]byte(args[1]))
				if err != nil {
					return err
				}
				command, err := target.Resolve(ev)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, command)
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				ev, err := click.ParseEvent(scanner.Bytes())
				if errors.IsErrorCode(err, errors.ErrClickNoEvent) {
					continue
				}
				if err != nil {
					logger.Warn().Err(err).Msg("Skipping click event")
					continue
				}
				command, err := target.Resolve(ev)
				if err != nil {
					logger.Warn().Err(err).Msg("Unresolved click event")
					continue
				}
				if _, err := fmt.Fprintln(out, command); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf(MsgErrReadEvents, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", MsgFlagName)
	return cmd
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "backends",
		Short:   MsgBackendsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := backendsTable()
			if err != nil {
				return fmt.Errorf(MsgErrRenderTable, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
			return err
		},
	}
}

// backendsTable renders the feature matrix of every backend
func backendsTable() (string, error) {
	mark := func(ok bool) string {
		if ok {
			return MsgYes
		}
		return MsgNo
	}

	data := pterm.TableData{{"Backend", "Escaping", "Colors", "Alignment", "Separators", "Clicks"}}
	for _, b := range render.Backends() {
		f := render.FeaturesOf(b)
		data = append(data, []string{
			b.String(),
			f.Escaping,
			mark(f.Colors),
			mark(f.Alignment),
			mark(f.Separators),
			mark(f.Clicks),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}

	m, err := topics.Load(topics.Builtin(), topics.Options{Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return nil
	}
	cmd := m.Command()
	cmd.Short = MsgTopicsShort
	cmd.GroupID = "misc"
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(barfmt completion bash)

Zsh:
  $ barfmt completion zsh > "${fpath[1]}/_barfmt"

Fish:
  $ barfmt completion fish | source

PowerShell:
  PS> barfmt completion powershell | Out-String | Invoke-Expression
`,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf(MsgErrShellUnknown, args[0])
			}
		},
	}
}
