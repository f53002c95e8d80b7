package main

import (
	"fmt"
	"log"
	"os"

	"github.com/StumWhere/Multipath-Flow-Accumulation/rast"
	"github.com/maseology/mmio"
)

func main() {
	if len(os.Args) != 4 {
		log.Fatalf("usage: run [dem.gdef] [dem.bil] [accum.bil]\n  dem.bil: depression-filled DEM matching the given grid definition")
	}
	gdefFP, demFP, outFP := os.Args[1], os.Args[2], os.Args[3]

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete")

	// load data
	fmt.Printf(" loading: %s\n", gdefFP)
	gd, err := rast.ReadGDEF(gdefFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf(" loading: %s\n", demFP)
	dem, err := rast.ReadBIL(demFP, gd)
	if err != nil {
		log.Fatalf("%v", err)
	}
	tt.Print("DEM load complete\n")

	// compute accumulation
	a, _ := dem.AccumulateVerbose()

	// crop the unresolved outer ring; register the remainder one cell in
	gd2 := gd.Shift()
	a2, err := gd.Interior(a)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := rast.WriteBIL(outFP, gd2, a2); err != nil {
		log.Fatalf("%v", err)
	}
	if err := gd2.SaveAs(mmio.RemoveExtension(outFP) + ".gdef"); err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Printf(" accumulation written to %s\n", outFP)
}
