package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TELOFIND_THRESHOLD=50.
const EnvPrefix = "TELOFIND"

// newViper layers flags over env over the optional config file over defaults.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, usagef("read config %s: %v", path, err)
		}
	}
	return v, nil
}

func load(fs *pflag.FlagSet, args []string, dst any) (string, error) {
	in, err := ResolveInput(args)
	if err != nil {
		return "", err
	}
	v, err := newViper(fs)
	if err != nil {
		return "", err
	}
	if err := v.Unmarshal(dst); err != nil {
		return "", usagef("%v", err)
	}
	return in, nil
}

// LoadExplore resolves explore options from fs (parsed), env and config.
func LoadExplore(fs *pflag.FlagSet, args []string) (ExploreOptions, error) {
	var o ExploreOptions
	in, err := load(fs, args, &o)
	if err != nil {
		return o, err
	}
	o.Input = in
	return o, o.Validate()
}

// LoadSearch resolves search options from fs (parsed), env and config.
func LoadSearch(fs *pflag.FlagSet, args []string) (SearchOptions, error) {
	var o SearchOptions
	in, err := load(fs, args, &o)
	if err != nil {
		return o, err
	}
	o.Input = in
	return o, o.Validate()
}

// String renders the options for debug logs.
func (o ExploreOptions) String() string {
	return fmt.Sprintf("length=%d range=%d..%d threshold=%d distance=%d merge=%s threads=%d",
		o.Length, o.Minimum, o.Maximum, o.Threshold, o.Distance, o.Merge, o.Threads)
}
