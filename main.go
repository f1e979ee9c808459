// Command battlecalc computes exact win, draw, and loss probabilities for
// Axis & Allies 1942 Second Edition battles.
package main

import "github.com/rkowalski/battlecalc/cmd"

func main() {
	cmd.Execute()
}
