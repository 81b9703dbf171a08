package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/Joellate/Sparse-Matrix/model"
	"github.com/Joellate/Sparse-Matrix/sstable"
)

var (
	operation = flag.String("op", "", "operation: add, subtract or multiply (prompted if empty)")
	firstFile = flag.String("a", "", "first input matrix file (prompted if empty)")
	otherFile = flag.String("b", "", "second input matrix file (prompted if empty)")
	output    = flag.String("out", "", "output matrix file (prompted if empty)")
)

type options struct {
	op     string
	a      string
	b      string
	output string
}

var errInvalidChoice = errors.New("invalid choice")

func main() {
	flag.Parse()
	defer log.Flush()

	opts := options{op: *operation, a: *firstFile, b: *otherFile, output: *output}
	if err := run(os.Stdin, os.Stdout, opts); err != nil {
		log.Errorf("%v", err)
		if errors.Is(err, errInvalidChoice) {
			fmt.Println("Invalid choice. Please enter 1, 2, or 3.")
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		log.Flush()
		os.Exit(1)
	}
}

// run asks for whatever opts leaves empty, applies the operation
// and saves the result
func run(in io.Reader, out io.Writer, opts options) error {
	reader := bufio.NewReader(in)
	prompt := func(msg string) (string, error) {
		fmt.Fprint(out, msg)
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", errors.Wrap(err, "read input")
		}
		return strings.TrimSpace(line), nil
	}

	if opts.op == "" {
		fmt.Fprintln(out, "Sparse Matrix Operations")
		fmt.Fprintln(out, "Select operation:")
		for _, op := range model.Operators() {
			fmt.Fprintf(out, "%s. %s\n", op.Choice, op.Title)
		}
		choice, err := prompt("Enter choice (1/2/3): ")
		if err != nil {
			return err
		}
		opts.op = choice
	}
	op, err := model.GetOperator(opts.op)
	if err != nil {
		log.V(1).Infof("%v", err)
		return errInvalidChoice
	}

	if opts.a == "" {
		if opts.a, err = prompt("Enter path for first matrix file: "); err != nil {
			return err
		}
	}
	if opts.b == "" {
		if opts.b, err = prompt("Enter path for second matrix file: "); err != nil {
			return err
		}
	}

	a, err := load(opts.a)
	if err != nil {
		return err
	}
	b, err := load(opts.b)
	if err != nil {
		return err
	}

	result, err := op.Apply(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s completed successfully.\n", op.Title)

	if opts.output == "" {
		if opts.output, err = prompt("Enter path for output file: "); err != nil {
			return err
		}
	}
	if err := result.Serialize(opts.output); err != nil {
		return err
	}
	r, c := result.Shape()
	log.Infof("saved %dx%d matrix with %d nonzeros to %s", r, c, result.Nnz(), opts.output)
	fmt.Fprintf(out, "Result saved to %s\n", opts.output)
	return nil
}

func load(fn string) (*sstable.SparseMatrix, error) {
	m, err := sstable.Deserialize(fn)
	if err != nil {
		return nil, err
	}
	r, c := m.Shape()
	log.Infof("loaded %dx%d matrix with %d nonzeros from %s", r, c, m.Nnz(), fn)
	return m, nil
}
