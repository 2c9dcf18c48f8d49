package printer

import (
	"context"
	"fmt"
	"os/exec"
)

func runCommand(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w (%s)", name, err, string(out))
	}

	return nil
}
