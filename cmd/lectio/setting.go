package main

import (
	"fmt"

	"github.com/awalczyk/lectio"
)

// Run executes the setting get command.
func (c *SettingGetCmd) Run(deps *Dependencies) error {
	value, err := deps.Provider.Setting(deps.Ctx, c.Key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, value)
	return nil
}

// Run executes the setting set command.
func (c *SettingSetCmd) Run(deps *Dependencies) error {
	if err := deps.Provider.SetSetting(deps.Ctx, c.Key, c.Value); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Set %s = %s\n", c.Key, c.Value)
	return nil
}

// Run executes the setting unset command.
func (c *SettingUnsetCmd) Run(deps *Dependencies) error {
	if err := deps.Settings.DeleteSetting(deps.Ctx, c.Key); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lectio.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Removed setting %q.\n", c.Key)
	return nil
}
