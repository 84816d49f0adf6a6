package commands

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dbisys/dbis-client/auth"
	"github.com/dbisys/dbis-client/authapi"
	"github.com/dbisys/dbis-client/internal/config"
	"github.com/dbisys/dbis-client/offline"
	"github.com/dbisys/dbis-client/session"
	"github.com/dbisys/dbis-client/session/localstore"
)

var (
	cfg      config.Config
	sessions session.Repository
	svc      *auth.Service

	dataFolder string
	baseURL    string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "dbis",
		Short: "DBIS business application client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.New()

			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			if cfg.GetEnv() == "DEV" {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			if dataFolder == "" {
				dataFolder = cfg.GetDataFolder()
			}
			if baseURL == "" {
				baseURL = cfg.GetBaseURL()
			}

			store, err := localstore.New(dataFolder)
			if err != nil {
				return err
			}
			sessions = store

			svc, err = auth.NewService(auth.Deps{
				Sessions: sessions,
				API:      authapi.NewClient(baseURL),
				Offline:  offline.New(cfg.GetEmailDomain(), offline.DefaultCredentials),
				Shell:    &terminalShell{sessions: sessions},
			})
			return err
		},
		// Running dbis with no subcommand bootstraps the stored session, the
		// same decision the full application makes at startup.
		RunE: func(cmd *cobra.Command, args []string) error {
			displayAppname(cfg.GetAppName())
			state := svc.Bootstrap(cmd.Context())
			log.Debug().Stringer("state", state).Msg("bootstrap finished")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dataFolder, "data", "", "data folder (default ./data)")
	root.PersistentFlags().StringVar(&baseURL, "server", "", "identity service base URL")

	root.AddCommand(loginCmd(), statusCmd(), logoutCmd(), callCmd())
	return root.Execute()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
