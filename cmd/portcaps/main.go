// portcaps inspects the S32K1xx PORT pin-mode capability table.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
