/*
   ccd2iso - CloneCD to ISO 9660 image converter

   This file is part of ccd2iso.

   This Source Code Form is subject to the terms of the Mozilla Public
   License, v. 2.0. If a copy of the MPL was not distributed with this
   file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package run

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//
const epilogueHeader = `
Notes:

`

/*
	The package initializer sets up logging based on logrus. The following
	environment variables can be used to configure logging:

		LOG_FORMAT		set to `json` for JSON logging
		LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
		LOG_METHODS		set to non-empty for including methods in log
		LOG_LEVEL		`panic`, `fatal`, `error`, `warn`, `info`, `debug`, `trace`
*/
func init() {

	log.SetOutput(os.Stdout)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if strings.ToLower(os.Getenv("LOG_FORCE_COLORS")) != "" {
		log.SetFormatter(&log.TextFormatter{
			ForceColors: true,
		})
	}

	if strings.ToLower(os.Getenv("LOG_METHODS")) != "" {
		log.SetReportCaller(true)
	}

	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		l, err := log.ParseLevel(level)
		if err != nil {
			log.Errorf("invalid log level: '%s'; valid levels are: panic, "+
				"fatal, error, warn, info, debug, trace", level)
		} else {
			log.SetLevel(l)
		}
	}
}

//
var (
	UnderTest bool
)

// DieOnError exits the running process if e is not nil. The error gets logged.
func DieOnError(e error) {
	if e != nil {
		fmt.Printf("%v\n", e)
		if UnderTest {
			panic(e.Error())
		} else {
			os.Exit(1)
		}
	}
}

// Die exits the running process, while logging the given message.
func Die(msg string, params ...interface{}) {
	if UnderTest {
		err := fmt.Sprintf(msg, params...)
		fmt.Print(err)
		panic(err)
	} else {
		if len(params) > 0 {
			fmt.Printf(msg, params...)
		} else {
			fmt.Println(msg)
		}
		os.Exit(1)
	}
}

//
func GetUserConfirmation(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	var res string
	fmt.Scanln(&res)
	return "y" == strings.ToLower(strings.TrimSpace(res))
}

/*
	NewCommand creates a base command instance, wrapping a new Cobra command.
	The exec function is invoked when the command's Execute method is called.
*/
func NewCommand(use, short, long, helpEpilogue string,
	exec func() error) *Command {

	ret := Command{
		cmd: &cobra.Command{
			Use:   use,
			Short: short,
			Long:  long,
			RunE: func(*cobra.Command, []string) error {
				return exec()
			},
			SilenceErrors:         true,
			SilenceUsage:          true,
			DisableFlagsInUseLine: true,
		},
		helpEpilogue: helpEpilogue,
	}
	ret.helpFunc = ret.cmd.HelpFunc()
	ret.cmd.SetHelpFunc(ret.help)
	return &ret
}

/*
	Command is a wrapper around Cobra & Viper. Settings are bound to both a
	command line flag and optionally an environment variable. A flag, when
	specified, overrides the environment variable. Viper's BindEnv does not
	actually place an environment provided value into the variable bound to
	the flag, so each setting registers a resolver closure that is run by
	ParseSettings to work around that.
*/
type Command struct {
	//
	cmd *cobra.Command
	//
	resolvers []func()
	//
	Args []string
	//
	helpEpilogue string
	helpFunc     func(*cobra.Command, []string)
}

//
func (c *Command) help(cmd *cobra.Command, args []string) {
	if c.helpFunc != nil {
		c.helpFunc(cmd, args)
	}
	if c.helpEpilogue != "" {
		fmt.Fprintln(cmd.OutOrStdout(), epilogueHeader+c.helpEpilogue)
	} else {
		fmt.Fprintln(cmd.OutOrStdout())
	}
}

/*
	Execute invokes the exec function that was set on this command when it was
	created. If args is of non-zero length, it overrides os.Args.
*/
func (c *Command) Execute(args []string) error {
	if len(args) > 0 {
		c.cmd.SetArgs(args)
	}
	return c.cmd.Execute()
}

// Flags exposes the pflag set of the wrapped Cobra command.
func (c *Command) Flags() *pflag.FlagSet {
	return c.cmd.Flags()
}

/*
	StringSetting adds a string setting to this command, bound to the given
	long (double-dash) and short (single-dash) flags, and when env is
	non-empty, to that environment variable as well.
*/
func (c *Command) StringSetting(
	target *string, flag, short, env, def, help string) {
	c.Flags().StringVarP(target, flag, short, def, helpWithEnv(help, env))
	c.bind(flag, env, func() {
		*target = viper.GetString(flag)
	})
}

//
func (c *Command) BoolSetting(
	target *bool, flag, short, env string, def bool, help string) {
	c.Flags().BoolVarP(target, flag, short, def, helpWithEnv(help, env))
	c.bind(flag, env, func() {
		*target = viper.GetBool(flag)
	})
}

//
func (c *Command) IntSetting(
	target *int, flag, short, env string, def int, help string) {
	c.Flags().IntVarP(target, flag, short, def, helpWithEnv(help, env))
	c.bind(flag, env, func() {
		*target = viper.GetInt(flag)
	})
}

//
func (c *Command) bind(flag, env string, resolve func()) {

	flags := c.Flags()
	viper.BindPFlag(flag, flags.Lookup(flag))

	if env == "" {
		return
	}
	viper.BindEnv(flag, env)

	c.resolvers = append(c.resolvers, func() {
		if !flags.Changed(flag) && viper.IsSet(flag) {
			log.Tracef("resolving setting '%s' from environment", flag)
			resolve()
		}
	})
}

/*
	ParseSettings handles all settings that have been added thus far. This has
	to be called in the exec function of the command, before any references
	to variables that are bound to settings.
*/
func (c *Command) ParseSettings() {
	for _, r := range c.resolvers {
		r()
	}
	c.Args = c.Flags().Args()
}

//
func helpWithEnv(help, env string) string {
	if env == "" {
		return help
	}
	return fmt.Sprintf("%s (%s)", help, env)
}
