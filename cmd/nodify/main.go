// Command nodify replays node-graph editor sessions described in YAML and
// renders them to PNG.
//
// Usage:
//
//	nodify render session.yaml -o session.png --theme dark.toml
//	nodify inspect session.yaml
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
