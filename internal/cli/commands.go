package cli

import (
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	mwerrors "github.com/kanopy-platform/mawaws/pkg/errors"
	"github.com/kanopy-platform/mawaws/pkg/updater"
)

// command is one of the validated invocations the dispatcher knows how to run.
type command interface {
	isCommand()
}

type atlasOptions struct {
	user    string
	key     string
	apiURL  string
	timeout time.Duration
}

type listGroupsCommand struct {
	atlas atlasOptions
}

type updateWhitelistCommand struct {
	atlas        atlasOptions
	request      updater.Request
	ipRangesURL  string
	ipRangesFile string
	dryRun       bool
}

func (listGroupsCommand) isCommand()      {}
func (updateWhitelistCommand) isCommand() {}

func newListGroupsCommand(v *viper.Viper) (listGroupsCommand, error) {
	if err := requireOptions(v, "user", "key"); err != nil {
		return listGroupsCommand{}, err
	}

	ao, err := newAtlasOptions(v)
	if err != nil {
		return listGroupsCommand{}, err
	}

	return listGroupsCommand{atlas: ao}, nil
}

func newUpdateWhitelistCommand(v *viper.Viper) (updateWhitelistCommand, error) {
	if err := requireOptions(v, "region", "service", "groupid", "user", "key"); err != nil {
		return updateWhitelistCommand{}, err
	}

	ao, err := newAtlasOptions(v)
	if err != nil {
		return updateWhitelistCommand{}, err
	}

	out := updateWhitelistCommand{
		atlas: ao,
		request: updater.Request{
			GroupID: strings.TrimSpace(v.GetString("groupid")),
			Service: strings.TrimSpace(v.GetString("service")),
			Region:  strings.TrimSpace(v.GetString("region")),
		},
		ipRangesURL:  v.GetString("ip-ranges-url"),
		ipRangesFile: v.GetString("ip-ranges-file"),
		dryRun:       v.GetBool("dry-run"),
	}

	if out.ipRangesFile == "" {
		if err := validateURL("ip-ranges-url", out.ipRangesURL); err != nil {
			return updateWhitelistCommand{}, err
		}
	}

	return out, nil
}

func newAtlasOptions(v *viper.Viper) (atlasOptions, error) {
	out := atlasOptions{
		user:    v.GetString("user"),
		key:     v.GetString("key"),
		apiURL:  v.GetString("atlasapiurl"),
		timeout: v.GetDuration("timeout"),
	}

	if err := validateURL("atlasapiurl", out.apiURL); err != nil {
		return atlasOptions{}, err
	}
	if out.timeout <= 0 {
		return atlasOptions{}, mwerrors.NewValidationError("'timeout' must be positive, got %s", out.timeout)
	}

	return out, nil
}

// requireOptions fails naming every option that is unset or blank.
func requireOptions(v *viper.Viper, names ...string) error {
	missing := []string{}
	for _, name := range names {
		if strings.TrimSpace(v.GetString(name)) == "" {
			missing = append(missing, "'"+name+"'")
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return mwerrors.NewValidationError("%s is a required option but was not supplied, use the 'help' command to get usage information", missing[0])
	default:
		return mwerrors.NewValidationError("%s are required options but were not supplied, use the 'help' command to get usage information", strings.Join(missing, ", "))
	}
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return mwerrors.NewValidationError("'%s' must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}
