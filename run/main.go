package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/goHydro/grid"
	"github.com/maseology/gravflow"
	"github.com/maseology/gravflow/dem"
	"github.com/maseology/mmio"
)

// gravity-flow footprint from a single vent over a DEM raster
//   usage: gravflow <grid.gdef> <dem.bil> <scenario.par> <out-prefix>
// scenario.par, line-ordered:
//   xv yv    vent cell (column, row)
//   a b c    threshold coefficients: T = a·L^b − c
//   p        MFD dispersal exponent (optional)
func main() {

	if len(os.Args) != 5 {
		log.Fatalf("usage: gravflow <grid.gdef> <dem.bil> <scenario.par> <out-prefix>")
	}
	gdefFP, demFP, parFP, outprfx := os.Args[1], os.Args[2], os.Args[3], os.Args[4]

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nrun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// load
	gd, err := grid.ReadGDEF(gdefFP, true)
	if err != nil {
		log.Fatalf("%v", err)
	}
	var g grid.Real
	g.NewGD32(demFP, gd)
	d, err := dem.NewFromGrid(gd, g.A)
	if err != nil {
		log.Fatalf("%v", err)
	}
	xv, yv, par := loadPAR(parFP)
	tt.Print("load complete")

	uiprogress.Start()
	bar := uiprogress.AddBar(3).AppendCompleted().PrependElapsed()

	dom := gravflow.NewDomain(d, par) // fill + route
	bar.Incr()
	res, err := dom.Evaluate(xv, yv)
	bar.Incr()
	if err != nil {
		uiprogress.Stop()
		log.Fatalf("%v", err)
	}
	if err := res.WriteBils(gd, outprfx); err != nil {
		uiprogress.Stop()
		log.Fatalf("%v", err)
	}
	bar.Incr()
	uiprogress.Stop()

	nflw := 0
	for _, v := range res.FlowMap {
		nflw += int(v)
	}
	fmt.Printf("\n %s: %d of %d cells flow\n", outprfx, nflw, len(res.FlowMap))
}

func loadPAR(fp string) (xv, yv int, par gravflow.Params) {
	a, rerr := mmio.ReadTextLines(fp)
	if rerr != nil {
		log.Fatalf(" *** Fatal error: loadPAR: failed to read '%s': %v", fp, rerr)
	}
	stErr := make([]string, 0)
	errfunc := func(v string, err error) {
		stErr = append(stErr, fmt.Sprintf("     failed to read '%v': %v", v, err))
	}
	if len(a) < 2 {
		log.Fatalf(" *** Fatal error: loadPAR: %s requires 2 lines (vent; thresholds)", fp)
	}

	var err error
	vnt := strings.Fields(a[0])
	if len(vnt) != 2 {
		log.Fatalf(" *** Fatal error: loadPAR: vent line needs 'xv yv'")
	}
	if xv, err = strconv.Atoi(vnt[0]); err != nil {
		errfunc("XV", err)
	}
	if yv, err = strconv.Atoi(vnt[1]); err != nil {
		errfunc("YV", err)
	}

	abc := strings.Fields(a[1])
	if len(abc) != 3 {
		log.Fatalf(" *** Fatal error: loadPAR: threshold line needs 'a b c'")
	}
	if par.A, err = strconv.ParseFloat(abc[0], 64); err != nil {
		errfunc("A", err)
	}
	if par.B, err = strconv.ParseFloat(abc[1], 64); err != nil {
		errfunc("B", err)
	}
	if par.C, err = strconv.ParseFloat(abc[2], 64); err != nil {
		errfunc("C", err)
	}

	if len(a) > 2 && len(strings.TrimSpace(a[2])) > 0 {
		if par.P, err = strconv.ParseFloat(strings.TrimSpace(a[2]), 64); err != nil {
			errfunc("P", err)
		}
	}

	if len(stErr) > 0 {
		fmt.Println(" *** Fatal error(s): loadPAR ***")
		for _, v := range stErr {
			fmt.Println(v)
		}
		log.Fatalf(" ***")
	}
	return
}
