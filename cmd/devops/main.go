// Command devops checks C/C++ source hygiene and manages release
// versioning, configured through a project-local devops.toml.
package main

import (
	"os"

	"github.com/97gamjak/devops/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
