// Command aegispass derives deterministic passwords from a secret, a
// label, and a preset file. It is a thin wrapper: all derivation logic
// lives in the derive and preset packages.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed the error to stderr.
		os.Exit(1)
	}
}
