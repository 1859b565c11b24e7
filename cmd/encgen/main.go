// Command encgen regenerates the compiled WHATWG encoding-index tables.
//
// Usage:
//
//	encgen [-o outdir] [filter]
//
// Every registered index whose name contains the filter substring is
// fetched, compiled and emitted as Go source into <outdir>/<group>/,
// together with the data license. Per-index failures are reported and do
// not stop the run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/encindex"
	"github.com/npillmayer/encindex/emit"
	"github.com/npillmayer/encindex/whatwg"
)

func main() {
	outdir := flag.String("o", ".", "output directory")
	flag.Parse()
	filter := flag.Arg(0)

	ctx := context.Background()
	failed := false
	for _, idx := range whatwg.Filter(filter) {
		fmt.Fprintf(os.Stderr, "generating index %s... ", idx.Name)
		size, err := generate(ctx, idx, *outdir)
		if err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "failed: %v\n", err)
			continue
		}
		fmt.Fprintf(os.Stderr, "%d bytes.\n", size)
	}
	if failed {
		os.Exit(1)
	}
}

func generate(ctx context.Context, idx whatwg.Index, outdir string) (int, error) {
	body, err := whatwg.Fetch(ctx, idx.Name)
	if err != nil {
		return 0, err
	}
	defer body.Close()
	reader := whatwg.NewEntryReader(body)

	var table encindex.Table
	if table, err = idx.Compile(reader); err != nil {
		return 0, err
	}

	dir := filepath.Join(outdir, idx.Group)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	f, err := os.Create(filepath.Join(dir, emit.PackageName(idx.Name)+".go"))
	if err != nil {
		return 0, err
	}
	if err = emit.Index(f, idx.Name, reader.Comments(), table); err != nil {
		f.Close()
		return 0, err
	}
	if err = f.Close(); err != nil {
		return 0, err
	}
	if err = emit.WriteLicenseFile(dir); err != nil {
		return 0, err
	}
	return table.ByteSize(), nil
}
