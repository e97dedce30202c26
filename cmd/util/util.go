package util

import (
	"github.com/ValentinKolb/lockey/lib/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables read by lockey
	EnvPrefix = "lockey"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig initializes configuration from env files and environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// BindCommandFlags binds a command's flags (including inherited ones) to viper
func BindCommandFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.InheritedFlags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.Flags())
}

// GetConfig reads the configuration from viper, falling back to the defaults
// for all keys that are neither set by a flag nor by the environment
func GetConfig() (*common.Config, error) {
	conf := common.DefaultConfig()

	if viper.IsSet("log-level") {
		conf.LogLevel = viper.GetString("log-level")
	}
	if viper.IsSet("script") {
		conf.Script = viper.GetString("script")
	}
	if viper.IsSet("metrics") {
		conf.Metrics = viper.GetBool("metrics")
	}
	if viper.IsSet("prompt") {
		conf.Prompt = viper.GetBool("prompt")
	}
	if viper.IsSet("threads") {
		conf.Threads = viper.GetInt("threads")
	}
	if viper.IsSet("requesters") {
		conf.Requesters = viper.GetInt("requesters")
	}
	if viper.IsSet("iterations") {
		conf.Iterations = viper.GetInt("iterations")
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Setup binds the flags of cmd, reads the configuration and initializes the
// loggers. It is meant to be used as a PreRunE hook.
func Setup(cmd *cobra.Command) (*common.Config, error) {
	if err := BindCommandFlags(cmd); err != nil {
		return nil, err
	}

	conf, err := GetConfig()
	if err != nil {
		return nil, err
	}

	if err := common.InitLoggers(*conf); err != nil {
		return nil, err
	}
	return conf, nil
}
