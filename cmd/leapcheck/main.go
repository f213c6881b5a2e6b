package main

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/ngrash/go-utc/instant"
	"github.com/ngrash/go-utc/leapdata"
	"github.com/ngrash/go-utc/leapdist"
	"github.com/ngrash/go-utc/utc"
)

// unixToNTP is the number of seconds between the NTP epoch (1900-01-01)
// and the Unix epoch (1970-01-01), counted without leap seconds.
const unixToNTP = 2208988800

var (
	urlFlag  string
	fileFlag string
)

var rootCmd = &cobra.Command{
	Use:   "leapcheck",
	Short: "Audit the compiled-in leap second table against the published list",
	Long: `leapcheck downloads (or reads) a leap-seconds.list file, validates it and
compares its records against the leap second table compiled into this module.

A mismatch means the compiled-in table is out of date and needs a manual
update; leapcheck then exits with a non-zero status.`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&urlFlag, "url", leapdist.DefaultURL, "Location of the leap-seconds.list file")
	rootCmd.Flags().StringVar(&fileFlag, "file", "", "Read the list from a local file instead of downloading it")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var (
		list *leapdata.File
		err  error
	)
	if fileFlag != "" {
		f, err := os.Open(fileFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		parsed, err := leapdata.Parse(f)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", fileFlag, err)
		}
		list = &parsed
	} else {
		client := &leapdist.Client{URL: urlFlag}
		list, _, err = client.Latest(cmd.Context(), "")
		if err != nil {
			return fmt.Errorf("downloading %s: %w", urlFlag, err)
		}
	}

	if err := leapdata.Validate(*list); err != nil {
		return fmt.Errorf("invalid leap second list: %w", err)
	}

	january, july, err := leapdata.InsertionYears(*list)
	if err != nil {
		return err
	}

	expiry := utc.FromInstant(instant.New(list.Expires, 0, instant.Present))
	now := uint64(time.Now().Unix() + unixToNTP)
	if now >= list.Expires {
		fmt.Println("warning: the list expired on", expiry)
	} else {
		fmt.Println("list expires on", expiry)
	}

	wantJanuary, wantJuly := utc.LeapSecondYears()
	ok := true
	ok = report("january", january, wantJanuary) && ok
	ok = report("july", july, wantJuly) && ok
	if !ok {
		return fmt.Errorf("compiled-in table does not match %d published records", len(list.Entries))
	}

	fmt.Printf("compiled-in table matches all %d published records\n", len(list.Entries))
	return nil
}

func report(name string, published, compiled []int) bool {
	if slices.Equal(published, compiled) {
		return true
	}
	fmt.Printf("%s years differ:\n", name)
	fmt.Println("  published   =", published)
	fmt.Println("  compiled-in =", compiled)
	return false
}
