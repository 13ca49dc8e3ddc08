package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/entityresolve"
	"github.com/suparena/entityresolve/bbid"
	"github.com/suparena/entityresolve/models"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: bbresolve [flags] <command> [args]

Commands:
  check <bbid>   validate a BBID (exit status 0 when valid)
  new            mint a fresh BBID
  kinds          list the entity and import kinds

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag || *vFlag {
		info := entityresolve.GetVersionInfo()
		fmt.Printf("bbresolve version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch args[0] {
	case "check":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "check requires exactly one BBID argument")
			os.Exit(2)
		}
		if !bbid.IsValid(args[1]) {
			fmt.Printf("%s: invalid\n", args[1])
			os.Exit(1)
		}
		fmt.Printf("%s: valid\n", args[1])

	case "new":
		fmt.Println(bbid.New())

	case "kinds":
		fmt.Println("Entity kinds:")
		for _, t := range models.EntityTypes() {
			fmt.Printf("  %s\n", t)
		}
		fmt.Println("Import kinds:")
		for _, t := range models.ImportTypes() {
			fmt.Printf("  %s (%s)\n", t, t.Kind())
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		usage()
		os.Exit(2)
	}
}
