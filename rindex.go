/*package rindex computes the complex refractive index of optical materials
from RefractiveIndex.INFO-style dispersion formulas and tables.*/
package main

import (
	"github.com/phil-mansfield/rindex/cmd"
)

func main() {
	cmd.Execute()
}
