package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kanopy-platform/mawaws/pkg/atlas"
	"github.com/kanopy-platform/mawaws/pkg/iplister/clients/aws"
)

const programName = "mawaws"

type RootCommand struct {
	v   *viper.Viper
	log *zap.Logger
}

func NewRootCommand() *cobra.Command {
	root := &RootCommand{
		v:   viper.New(),
		log: zap.NewNop(),
	}

	cmd := &cobra.Command{
		Use:   programName + " <command> <options>",
		Short: "MongoDB Atlas whitelist updater",
		Long: `Updates your MongoDB Atlas IP whitelist using the published IP ranges for AWS services.
This makes it easy to allow a whole AWS region access through the firewall. So, for example,
your Lambda function which can run on any EC2 instance in that region will be able to reach
your database.`,
		PersistentPreRunE: root.persistentPreRunE,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().String("log-level", "info", "Configure log level")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "more logging")
	cmd.PersistentFlags().StringP("user", "u", "", "MongoDB Atlas username, e.g: user@example.com")
	cmd.PersistentFlags().StringP("key", "k", "", "MongoDB Atlas API key, e.g: 4c03c17c-25d8-42fa-a762-bd9c22b5a55a")
	cmd.PersistentFlags().StringP("atlasapiurl", "a", atlas.DefaultAPIURL, "MongoDB Atlas API URL")
	cmd.PersistentFlags().Duration("timeout", time.Minute, "Timeout for each remote request")

	cmd.AddCommand(root.newListGroupsCommand())
	cmd.AddCommand(root.newUpdateWhitelistCommand())

	return cmd
}

func (c *RootCommand) newListGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-groups",
		Short: "List MongoDB Atlas groups (projects).",
		Example: programName + ` list-groups \
  --user=user@example.com \
  --key=4c03c17c-25d8-42fa-a762-bd9c22b5a55a`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := newListGroupsCommand(c.v)
			if err != nil {
				return c.fail(err)
			}
			return c.fail(c.dispatch(cmd.Context(), cmd.OutOrStdout(), lg))
		},
	}
}

func (c *RootCommand) newUpdateWhitelistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-whitelist",
		Short: "Update whitelist IP for a group.",
		Example: programName + ` update-whitelist \
  --region=ap-southeast-2 \
  --groupid=1ab2bf4c3b53b9822afa9364 \
  --user=user@example.com \
  --key=4c03c17c-25d8-42fa-a762-bd9c22b5a55a`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uw, err := newUpdateWhitelistCommand(c.v)
			if err != nil {
				return c.fail(err)
			}
			return c.fail(c.dispatch(cmd.Context(), cmd.OutOrStdout(), uw))
		},
	}

	cmd.Flags().StringP("region", "r", "", "AWS region to get IPs for, e.g: ap-southeast-2")
	cmd.Flags().StringP("service", "s", "EC2", "AWS service to get IPs for, e.g: EC2")
	cmd.Flags().StringP("groupid", "g", "", "ID of the group (project) in MongoDB, e.g: 1ab2bf4c3b53b9822afa9364")
	cmd.Flags().String("ip-ranges-url", aws.IPRangesURL, "URL of the published AWS IP ranges document")
	cmd.Flags().String("ip-ranges-file", "", "Read the AWS IP ranges document from this file instead of --ip-ranges-url")
	cmd.Flags().Bool("dry-run", false, "Show the entries that would be added without updating the whitelist")
	cmd.Flags().SortFlags = false

	return cmd
}

func (c *RootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	// bind flags to viper
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.SetEnvPrefix(programName)
	c.v.AutomaticEnv()

	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// set log level
	logLevel, err := zapcore.ParseLevel(c.v.GetString("log-level"))
	if err != nil {
		return err
	}
	if c.v.GetBool("verbose") {
		logLevel = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		logLevel,
	)
	c.log = zap.New(core, zap.Fields(
		zap.String("command", cmd.Name()),
		zap.Bool("dry-run", c.v.GetBool("dry-run")),
	))

	return nil
}
