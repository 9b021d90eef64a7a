package barfmt

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render status line documents for bar hosts"
	MsgRenderShort     = "Render a document for a bar backend"
	MsgClickShort      = "Resolve i3bar click events to commands"
	MsgBackendsShort   = "List backends and the features they support"
	MsgTopicsShort     = "Display available documentation topics"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "barfmt version %s\n  commit: %s\n  built:  %s\n"
	MsgYes           = "yes"
	MsgNo            = "-"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrReadStdin    = "failed to read document from stdin: %w"
	MsgErrReadEvents   = "failed to read click events: %w"
	MsgErrRenderTable  = "failed to render table: %w"
	MsgErrNoCommand    = "no command specified"
	MsgErrShellUnknown = "unknown shell: %s"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/barfmt/config.toml)"
	MsgFlagBackend = "Backend to render for (awesome, dzen2, lemonbar, i3bar, term)"
	MsgFlagSyntax  = "Syntax of a document read from stdin (yaml, toml)"
	MsgFlagName    = "i3bar block name, overrides i3bar.name"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/click-long.txt
	msgClickLongRaw string
	MsgClickLong    = strings.TrimSpace(msgClickLongRaw)

	//go:embed msgs/click-example.txt
	msgClickExampleRaw string
	MsgClickExample    = strings.TrimRight(msgClickExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
