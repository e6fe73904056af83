// Command bigcalc evaluates arbitrary-precision integer expressions.
//
//	bigcalc eval 123456789123456789 987654321 '*'
//	echo "1 2 3" | bigcalc check --sum
package main

import (
	"os"
)

func main() {
	if err := RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
