package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ngrash/go-utc/instant"
	"github.com/ngrash/go-utc/julian"
	"github.com/ngrash/go-utc/utc"
)

var (
	dateFlag  = flag.String("date", "", `Calendar date to convert, e.g. "2017-12-25T01:02:14"`)
	secsFlag  = flag.Uint64("secs", 0, "Elapsed seconds since 1900-01-01T00:00:00 UTC to convert")
	nanosFlag = flag.Uint("nanos", 0, "Nanosecond part of -secs")
	pastFlag  = flag.Bool("past", false, "Interpret -secs as elapsed time before the epoch")
)

func main() {
	flag.Parse()

	var secsSet bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "secs" {
			secsSet = true
		}
	})

	switch {
	case *dateFlag != "" && secsSet:
		fmt.Println("only one of -date and -secs may be given")
		os.Exit(1)
	case *dateFlag != "":
		t, err := utc.Parse(*dateFlag)
		if err != nil {
			fmt.Println("parsing date:", err)
			os.Exit(1)
		}
		printTime(t)
	case secsSet:
		era := instant.Present
		if *pastFlag {
			era = instant.Past
		}
		printTime(utc.FromInstant(instant.New(*secsFlag, uint32(*nanosFlag), era)))
	default:
		fmt.Println("Usage: utcconv -date <date> | -secs <seconds> [-nanos <nanos>] [-past]")
		os.Exit(1)
	}
}

func printTime(t utc.Time) {
	i := t.AsInstant()
	mjd := julian.FromInstant(i)
	fmt.Println("utc     =", t)
	fmt.Printf("instant = %d.%09ds (%s)\n", i.Seconds(), i.Nanos(), i.Era())
	fmt.Println("mjd     =", mjd.Days)
	fmt.Println("jd      =", mjd.JulianDays())
}
