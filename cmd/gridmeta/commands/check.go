package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gridmeta/gridmeta/compat"
	"github.com/gridmeta/gridmeta/errors"
	"github.com/gridmeta/gridmeta/logger"
	"github.com/gridmeta/gridmeta/version"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check <server|client> <peer-version>",
	Short: "Check whether a peer build is compatible with this build",
	Long: `Run the handshake compatibility check against a hypothetical peer.

The peer role is the side the peer plays: "server" asks whether this
build's client could talk to that server, "client" asks whether this
build's server could serve that client. Exits non-zero when the peer is
too old.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, ok := compat.ParseRole(args[0])
		if !ok {
			pterm.Error.Printf("unknown role %q (want server or client)\n", args[0])
			return errors.Newf("unknown role %q", args[0])
		}

		peer, err := version.Parse(args[1])
		if err != nil {
			pterm.Error.Printf("invalid peer version %q: %v\n", args[1], err)
			return errors.Wrapf(errors.ErrMalformedVersion, "peer version %q", args[1])
		}

		reg, err := compat.Default()
		if err != nil {
			return err
		}

		if err := reg.CheckPeer(role, peer); err != nil {
			logger.Logger.Warnw("peer rejected",
				logger.FieldRole, role.String(),
				logger.FieldPeerVersion, peer.String(),
				logger.FieldVersion, reg.Version().String())

			pterm.Error.Println(err.Error())
			for _, hint := range errors.GetAllHints(err) {
				pterm.Info.Println(hint)
			}
			return err
		}

		pterm.Success.Printf("peer %s version %s is compatible with gridmeta %s\n",
			role, peer, reg.Version())
		return nil
	},
}
