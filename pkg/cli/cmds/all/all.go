// Package all imports all command providers.
package all

import (
	_ "github.com/robotalks/saber.go/pkg/cli/cmds/motor"
	_ "github.com/robotalks/saber.go/pkg/cli/cmds/setup"
)
