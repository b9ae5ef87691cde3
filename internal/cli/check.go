package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"check-compromised/internal/app"
)

type checkOptions struct {
	BaseDir     string
	Compromised string
	Inventory   string
	Script      string
	Shell       string
	Ecosystem   string
	Format      string
	FailOnMatch bool
}

func bindCheckFlags(cmd *cobra.Command, opts *checkOptions) {
	cmd.Flags().StringVar(&opts.BaseDir, "base-dir", "", "Directory the enumerator runs in and relative paths resolve against (default: executable directory)")
	cmd.Flags().StringVar(&opts.Compromised, "compromised", "compromised_versions.json", "Compromised {name, version} list (JSON or YAML)")
	cmd.Flags().StringVar(&opts.Inventory, "inventory", "packagesversions.txt", "Transient file the enumerator writes")
	cmd.Flags().StringVar(&opts.Script, "script", "./grep.sh", "Enumerator script")
	cmd.Flags().StringVar(&opts.Shell, "shell", "/bin/bash", "Shell used to run the enumerator script")
	cmd.Flags().StringVar(&opts.Ecosystem, "ecosystem", "npm", "Version matching rules: npm, pip or deb")
	cmd.Flags().StringVar(&opts.Format, "format", "pairs", "Inventory format: pairs or jsonl")
	cmd.Flags().BoolVar(&opts.FailOnMatch, "fail-on-match", false, "Exit non-zero when compromised packages are found")
	_ = viper.BindPFlag("base_dir", cmd.Flags().Lookup("base-dir"))
	_ = viper.BindPFlag("compromised", cmd.Flags().Lookup("compromised"))
	_ = viper.BindPFlag("inventory", cmd.Flags().Lookup("inventory"))
	_ = viper.BindPFlag("script", cmd.Flags().Lookup("script"))
	_ = viper.BindPFlag("shell", cmd.Flags().Lookup("shell"))
	_ = viper.BindPFlag("ecosystem", cmd.Flags().Lookup("ecosystem"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("fail_on_match", cmd.Flags().Lookup("fail-on-match"))
}

func runCheck(cmd *cobra.Command, opts checkOptions) error {
	service := newAppService(cmd)
	_, err := service.Check(cmd.Context(), app.CheckRequest{
		BaseDir:         resolveString(cmd, opts.BaseDir, "base_dir", "base-dir"),
		CompromisedPath: resolveString(cmd, opts.Compromised, "compromised", "compromised"),
		InventoryPath:   resolveString(cmd, opts.Inventory, "inventory", "inventory"),
		Script:          resolveString(cmd, opts.Script, "script", "script"),
		Shell:           resolveString(cmd, opts.Shell, "shell", "shell"),
		Ecosystem:       resolveString(cmd, opts.Ecosystem, "ecosystem", "ecosystem"),
		Format:          resolveString(cmd, opts.Format, "format", "format"),
		FailOnMatch:     resolveBool(cmd, opts.FailOnMatch, "fail_on_match", "fail-on-match"),
	})
	return err
}

func newAppService(cmd *cobra.Command) app.Service {
	service := app.NewService()
	if cmd != nil {
		service.Out = cmd.OutOrStdout()
		service.ErrOut = cmd.ErrOrStderr()
	}
	return service
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
