package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var dueFlagAliases = map[string]string{
	"duedate": "due-date",
	"duetime": "due-time",
}

var createFlagAliases = map[string]string{
	"configfile": "config",
}

func addDueFlagAliases(cmds ...*cobra.Command) {
	for _, cmd := range cmds {
		setFlagAliases(cmd.Flags(), dueFlagAliases)
	}
}

func setFlagAliases(flags *pflag.FlagSet, aliases map[string]string) {
	if len(aliases) == 0 {
		return
	}

	normalize := flags.GetNormalizeFunc()
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		return normalize(f, name)
	})
}
