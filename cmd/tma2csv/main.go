// tma2csv converts a pathologists' scoring workbook (.xls or .xlsx) into the
// canonical spot-table CSV on stdout. The sheet holding the data is found by
// its header row, so title rows and annotations above the table are ignored,
// and every row passes the same schema validation as a CSV load.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gocarina/gocsv"

	penisp53 "github.com/alcideschaux/Penis-p53"
)

func main() {
	var workbook string

	flag.StringVar(&workbook, "workbook", "", "The scoring workbook (.xls or .xlsx)")
	flag.Parse()

	if workbook == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	dataset, err := penisp53.ReadWorkbook(workbook)
	if err != nil {
		log.Fatalln(err)
	}

	spots := make([]*penisp53.Spot, 0, len(dataset.Spots))
	for i := range dataset.Spots {
		spots = append(spots, &dataset.Spots[i])
	}

	if err := gocsv.Marshal(&spots, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
