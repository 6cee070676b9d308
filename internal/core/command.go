package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"depsolve-judge/internal/types"
)

// ParseCommand parses a single install/uninstall step: a leading '+'
// or '-' (ASCII hyphen-minus) followed by "name=version".
func ParseCommand(raw string) (types.Command, error) {
	if raw == "" {
		return types.Command{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad command format: " + raw)
	}
	action := types.CommandAction(raw[0])
	if action != types.ActionInstall && action != types.ActionUninstall {
		return types.Command{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad command format: " + raw)
	}
	pkg, err := ParsePackage(raw[1:])
	if err != nil {
		return types.Command{}, err
	}
	return types.Command{Action: action, Package: pkg}, nil
}

// CommandString renders a command in canonical form.
func CommandString(c types.Command) string {
	return string(c.Action) + PackageString(c.Package)
}
