// Command wininfo prints spectral properties of DSP window functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window kinds that can be
// built from catalog defaults.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman kaiser
//	wininfo -size 4096 -params 2.5 kaiser
//	wininfo -params 0.4,0.5,0.1 blackman_gen3
//	wininfo -dump samples -size 8 hamming
//	wininfo -dump response -bins 4096 -unit bin chebyshev
//	wininfo -all
//	wininfo -list cheb
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
