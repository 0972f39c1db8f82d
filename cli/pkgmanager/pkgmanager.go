// Package pkgmanager knows how to drive JavaScript package managers
// for a freshly scaffolded project.
package pkgmanager

import (
	"fmt"
	"strings"
)

// PackageManager is a JavaScript package manager name.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Pnpm PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"

	// Default is a package manager offered first.
	Default = Npm
)

// Names contains supported package managers in the order they are offered.
var Names = [...]PackageManager{Npm, Pnpm, Yarn, Bun}

// Parse returns the package manager with the given name.
func Parse(name string) (PackageManager, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, pm := range Names {
		if string(pm) == name {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unsupported package manager %q: expected one of %s",
		name, strings.Join(names(), ", "))
}

func names() []string {
	result := make([]string, 0, len(Names))
	for _, pm := range Names {
		result = append(result, string(pm))
	}
	return result
}

// InstallCommand is a command line installing project dependencies.
type InstallCommand struct {
	Command string
	Args    []string
}

// String returns the command line as the operator would type it.
func (installCmd InstallCommand) String() string {
	return strings.Join(append([]string{installCmd.Command}, installCmd.Args...), " ")
}

// ResolveInstallCommand returns the dependencies install command for pm.
func ResolveInstallCommand(pm PackageManager) InstallCommand {
	if pm == Npm {
		return InstallCommand{Command: string(Npm), Args: []string{"install", "--legacy-peer-deps"}}
	}
	return InstallCommand{Command: string(pm), Args: []string{"install"}}
}

// RunScript returns the command line running a package.json script with pm.
func RunScript(pm PackageManager, script string) string {
	if pm == Npm {
		return fmt.Sprintf("npm run %s", script)
	}
	return fmt.Sprintf("%s %s", pm, script)
}
