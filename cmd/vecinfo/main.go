// Command vecinfo parses two vectors and prints the result of every
// component-wise operation their kind allows.
//
// Usage:
//
//	vecinfo [flags] A B
//
// A and B are component lists separated by -sep. The arity is taken from
// A; B must have the same number of components.
//
// Examples:
//
//	vecinfo 1,2,3 4,5,6
//	vecinfo -kind int32 7,-8 3,2
//	vecinfo -kind uint32 -verb %#x 255,16 15,4
//	vecinfo -kind bool true,false,true false,false,true
//	vecinfo -locale de -verb %g 1.5,2.25 0.5,4
//	vecinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"

	"github.com/cwbudde/algo-glm/kind"
	"github.com/cwbudde/algo-glm/vec"
)

func main() {
	kindName := flag.String("kind", "float64", "component kind (bool, int32, uint32, int64, uint64, float32, float64)")
	sep := flag.String("sep", ",", "component separator in A and B")
	verb := flag.String("verb", "", "fmt verb for result components, e.g. %.3f")
	locale := flag.String("locale", "", "BCP 47 locale for result components, e.g. de or fr-CH")
	list := flag.Bool("list", false, "print which operation families each kind allows")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags] A B\n\n")
		fmt.Fprintf(os.Stderr, "Prints component-wise operations on two vectors of 2 to 4 components.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo 1,2,3 4,5,6\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -kind int32 7,-8 3,2\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -kind bool true,false false,false\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -list\n")
	}
	flag.Parse()

	if *list {
		if err := printFamilies(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	k, err := kind.ParseKind(*kindName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	var opts []vec.FormatOption
	if *verb != "" {
		opts = append(opts, vec.WithVerb(*verb))
	}
	if *locale != "" {
		tag, err := language.Parse(*locale)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: locale %q: %v\n", *locale, err)
			os.Exit(2)
		}
		opts = append(opts, vec.WithLocale(tag))
	}

	rows, err := report(k, args[0], args[1], *sep, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := printRows(os.Stdout, k, rows); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func printFamilies(w io.Writer) error {
	families := []kind.Family{kind.Arithmetic, kind.Ordering, kind.Bitwise, kind.Shift, kind.Transcendental, kind.Geometric}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"Kind", "Bits"}
	for _, f := range families {
		header = append(header, f.String())
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}
	for _, k := range kind.Kinds() {
		cells := []string{k.String(), fmt.Sprint(k.Bits())}
		for _, f := range families {
			mark := "-"
			if k.Allows(f) {
				mark = "yes"
			}
			cells = append(cells, mark)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func printRows(w io.Writer, k kind.Kind, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Operation (%s)\tResult\n", k); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---------\t------\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.op, r.result); err != nil {
			return err
		}
	}
	return tw.Flush()
}
