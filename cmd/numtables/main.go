// Numtables prints the encoding tables of small number formats.
//
// Usage:
//
//	numtables posit --nbits 5 --es 1
//	numtables lns --nbits 6 --rbits 2 --format csv
//	numtables fixpnt --nbits 6 --rbits 2 --saturate --format markdown
//	numtables batch --config shapes.yaml --format html
//
// Every pattern of the format is listed with its decomposition and value.
package main

import "log"

func main() {
	log.SetPrefix("numtables: ")
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
