//go:build tools

package zkwatch

import (
	_ "github.com/mgechev/revive"
)
