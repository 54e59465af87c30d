package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds config keys to flags so a flag set on the command line
// takes precedence over file and environment values.
func bindFlags(v *viper.Viper, lookup func(string) *pflag.Flag, keys map[string]string) {
	for key, flag := range keys {
		if f := lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}
