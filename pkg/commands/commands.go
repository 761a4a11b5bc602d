package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/clipboard"
	"github.com/nikolayco/zilctl/pkg/config"
	"github.com/nikolayco/zilctl/pkg/schedule"
)

var (
	oo = &base.OutputOptions{}

	serverFlag string
	verbose    bool

	cfg   *config.Config
	cl    *client.Client
	clip  *clipboard.Store
	clock schedule.Clock = schedule.System{}
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zilctl",
		Short: base.Wrap80("Control a SmartZill announcement appliance from the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&serverFlag, "server", "",
		"Appliance base URL. Overrides the config file and ZILCTL_SERVER.")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addStatus(topLevel)
	addTimeline(topLevel)
	addAgenda(topLevel)
	addSchedule(topLevel)
	addBell(topLevel)
	addSay(topLevel)
	addStop(topLevel)
	addScheduler(topLevel)
	addMedia(topLevel)
	addRadio(topLevel)
	addSounds(topLevel)
	addVolume(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

// setup wires logging, config, the API client, and the local clipboard for
// every command.
func setup() error {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	if serverFlag != "" {
		cfg.Server = serverFlag
	}
	cl = client.New(cfg.Server, cfg.Timeout)
	clip, err = clipboard.Open(cfg.ClipboardPath)
	if err != nil {
		return err
	}
	return nil
}
